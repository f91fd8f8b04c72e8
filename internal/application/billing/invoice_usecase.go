package billing

import (
	"time"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	domainbilling "github.com/autotech/taller-api/internal/domain/billing"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas: emisión manual, emisión desde un
// presupuesto aceptado y generación del PDF imprimible.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	estimates repository.EstimateRepository
	clients   repository.ClientRepository
	pdf       InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	repo repository.InvoiceRepository,
	estimates repository.EstimateRepository,
	clients repository.ClientRepository,
	pdf InvoicePDFGenerator,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, estimates: estimates, clients: clients, pdf: pdf}
}

// Create emite una factura. Si EstimateID viene informado, el presupuesto
// debe estar ACEPTADO y sus líneas y porcentajes pisan los del pedido.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if _, err := uc.clients.GetByID(in.ClientID); err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		ClientID:        in.ClientID,
		RepairOrderID:   in.RepairOrderID,
		EstimateID:      in.EstimateID,
		Status:          entity.InvoicePendiente,
		DiscountPercent: in.DiscountPercent,
		TaxPercent:      in.TaxPercent,
		IssuedAt:        time.Now(),
		DueDate:         in.DueDate,
		Notes:           in.Notes,
	}

	if in.EstimateID != nil {
		estimate, err := uc.estimates.GetByID(*in.EstimateID)
		if err != nil {
			return nil, err
		}
		if estimate.Status != entity.EstimateAceptado {
			return nil, domain.NewBusinessError("solo un presupuesto aceptado puede facturarse")
		}
		if estimate.RepairOrderID != nil {
			invoice.RepairOrderID = estimate.RepairOrderID
		}
		invoice.DiscountPercent = estimate.DiscountPercent
		invoice.TaxPercent = estimate.TaxPercent
		for _, it := range estimate.Items {
			invoice.Items = append(invoice.Items, entity.InvoiceItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				IsService:   it.IsService,
			})
		}
	} else {
		if len(in.Items) == 0 {
			return nil, domain.NewBusinessError("la factura requiere al menos una línea")
		}
		for _, it := range in.Items {
			if it.Quantity < 1 {
				return nil, domain.NewBusinessError("la cantidad de cada línea debe ser al menos 1")
			}
			if it.UnitPrice.IsNegative() {
				return nil, domain.NewBusinessError("el precio unitario no puede ser negativo")
			}
			invoice.Items = append(invoice.Items, entity.InvoiceItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				IsService:   it.IsService,
			})
		}
	}
	if invoice.DiscountPercent.IsNegative() || invoice.TaxPercent.IsNegative() {
		return nil, domain.NewBusinessError("descuento e impuesto no pueden ser negativos")
	}

	subtotal := invoice.Subtotal
	for _, it := range invoice.Items {
		subtotal = subtotal.Add(it.Subtotal())
	}
	totals := domainbilling.ComputeTotal(subtotal, invoice.DiscountPercent, invoice.TaxPercent)
	invoice.Subtotal = totals.Subtotal
	invoice.DiscountAmount = totals.DiscountAmount
	invoice.TaxAmount = totals.TaxAmount
	invoice.Total = totals.Total

	number, err := uc.repo.NextNumber()
	if err != nil {
		return nil, err
	}
	invoice.Number = number

	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(invoice.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInvoiceResponse(created)
	return &resp, nil
}

// GetByID obtiene una factura con su estado de cobro.
func (uc *InvoiceUseCase) GetByID(id int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInvoiceResponse(invoice)
	return &resp, nil
}

// GetByRepairOrder obtiene la factura ligada a una orden de trabajo.
func (uc *InvoiceUseCase) GetByRepairOrder(repairOrderID int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByRepairOrder(repairOrderID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInvoiceResponse(invoice)
	return &resp, nil
}

// List lista facturas con filtros y paginación.
func (uc *InvoiceUseCase) List(filter repository.InvoiceFilter, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	filter.Limit = page.Size
	filter.Offset = page.Offset()
	invoices, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewInvoiceResponses(invoices), total, page)
	return &out, nil
}

// Delete elimina una factura. Una factura ligada a una orden de trabajo o ya
// pagada no puede eliminarse.
func (uc *InvoiceUseCase) Delete(id int64) error {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if !invoice.CanDelete() {
		return domain.NewBusinessError("una factura pagada o ligada a una orden de trabajo no puede eliminarse")
	}
	return uc.repo.Delete(id)
}

// GeneratePDF genera el PDF imprimible de la factura.
func (uc *InvoiceUseCase) GeneratePDF(id int64) ([]byte, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(invoice)
}
