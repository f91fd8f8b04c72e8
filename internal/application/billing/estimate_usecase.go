package billing

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	domainbilling "github.com/autotech/taller-api/internal/domain/billing"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// EstimateUseCase casos de uso de presupuestos. Solo los presupuestos en
// estado PENDIENTE admiten edición, aprobación o rechazo.
type EstimateUseCase struct {
	repo        repository.EstimateRepository
	clients     repository.ClientRepository
	vehicles    repository.VehicleRepository
	orders      repository.RepairOrderRepository
	inspections repository.InspectionRepository
}

// NewEstimateUseCase construye el caso de uso.
func NewEstimateUseCase(
	repo repository.EstimateRepository,
	clients repository.ClientRepository,
	vehicles repository.VehicleRepository,
	orders repository.RepairOrderRepository,
	inspections repository.InspectionRepository,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, clients: clients, vehicles: vehicles, orders: orders, inspections: inspections}
}

func toEstimateItems(items []dto.BillingItemDTO) ([]entity.EstimateItem, error) {
	if len(items) == 0 {
		return nil, domain.NewBusinessError("el presupuesto requiere al menos una línea")
	}
	out := make([]entity.EstimateItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, domain.NewBusinessError("la cantidad de cada línea debe ser al menos 1")
		}
		if it.UnitPrice.IsNegative() {
			return nil, domain.NewBusinessError("el precio unitario no puede ser negativo")
		}
		out = append(out, entity.EstimateItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			IsService:   it.IsService,
		})
	}
	return out, nil
}

// Create emite un presupuesto PENDIENTE para un cliente y su vehículo. La
// orden de trabajo es opcional; cuando viene y tiene inspección registrada,
// los puntos con problemas quedan ligados.
func (uc *EstimateUseCase) Create(in dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
	if _, err := uc.clients.GetByID(in.ClientID); err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicles.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.ClientID != in.ClientID {
		return nil, domain.NewBusinessError("el vehículo no pertenece al cliente seleccionado")
	}
	if in.RepairOrderID != nil {
		if _, err := uc.orders.GetByID(*in.RepairOrderID); err != nil {
			return nil, err
		}
		existing, err := uc.repo.GetByRepairOrder(*in.RepairOrderID)
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, domain.NewBusinessError("la orden ya tiene un presupuesto emitido")
		}
	}
	items, err := toEstimateItems(in.Items)
	if err != nil {
		return nil, err
	}
	if in.DiscountPercent.IsNegative() || in.TaxPercent.IsNegative() {
		return nil, domain.NewBusinessError("descuento e impuesto no pueden ser negativos")
	}
	estimate := &entity.Estimate{
		ClientID:        in.ClientID,
		VehicleID:       in.VehicleID,
		RepairOrderID:   in.RepairOrderID,
		Status:          entity.EstimatePendiente,
		Items:           items,
		DiscountPercent: in.DiscountPercent,
		TaxPercent:      in.TaxPercent,
		Observations:    in.Observations,
		ReportedIssues:  in.ReportedIssues,
	}
	if in.RepairOrderID != nil {
		inspection, err := uc.inspections.GetByRepairOrder(*in.RepairOrderID)
		if err == nil && inspection != nil {
			estimate.InspectionID = &inspection.ID
		}
	}
	if err := uc.repo.Create(estimate); err != nil {
		return nil, err
	}
	resp := dto.NewEstimateResponse(estimate)
	return &resp, nil
}

// GetByID obtiene un presupuesto con su desglose calculado.
func (uc *EstimateUseCase) GetByID(id int64) (*dto.EstimateResponse, error) {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEstimateResponse(estimate)
	return &resp, nil
}

// GetByRepairOrder obtiene el presupuesto de una orden.
func (uc *EstimateUseCase) GetByRepairOrder(repairOrderID int64) (*dto.EstimateResponse, error) {
	estimate, err := uc.repo.GetByRepairOrder(repairOrderID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEstimateResponse(estimate)
	return &resp, nil
}

// List lista presupuestos con filtro por estado y paginación.
func (uc *EstimateUseCase) List(filter repository.EstimateFilter, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	filter.Limit = page.Size
	filter.Offset = page.Offset()
	estimates, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewEstimateResponses(estimates), total, page)
	return &out, nil
}

// Update edita un presupuesto PENDIENTE.
func (uc *EstimateUseCase) Update(id int64, in dto.UpdateEstimateRequest) (*dto.EstimateResponse, error) {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !estimate.IsEditable() {
		return nil, domain.NewBusinessError("solo un presupuesto pendiente puede modificarse")
	}
	if in.Items != nil {
		items, err := toEstimateItems(in.Items)
		if err != nil {
			return nil, err
		}
		estimate.Items = items
		if err := uc.repo.ReplaceItems(estimate.ID, items); err != nil {
			return nil, err
		}
	}
	if in.DiscountPercent != nil {
		if in.DiscountPercent.IsNegative() {
			return nil, domain.NewBusinessError("descuento e impuesto no pueden ser negativos")
		}
		estimate.DiscountPercent = *in.DiscountPercent
	}
	if in.TaxPercent != nil {
		if in.TaxPercent.IsNegative() {
			return nil, domain.NewBusinessError("descuento e impuesto no pueden ser negativos")
		}
		estimate.TaxPercent = *in.TaxPercent
	}
	if in.Observations != nil {
		estimate.Observations = *in.Observations
	}
	if in.ReportedIssues != nil {
		estimate.ReportedIssues = *in.ReportedIssues
	}
	if err := uc.repo.Update(estimate); err != nil {
		return nil, err
	}
	resp := dto.NewEstimateResponse(estimate)
	return &resp, nil
}

// Approve marca el presupuesto como ACEPTADO. Solo desde PENDIENTE.
func (uc *EstimateUseCase) Approve(id int64) (*dto.EstimateResponse, error) {
	return uc.transition(id, entity.EstimateAceptado)
}

// Reject marca el presupuesto como RECHAZADO. Solo desde PENDIENTE.
func (uc *EstimateUseCase) Reject(id int64) (*dto.EstimateResponse, error) {
	return uc.transition(id, entity.EstimateRechazado)
}

func (uc *EstimateUseCase) transition(id int64, status string) (*dto.EstimateResponse, error) {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if estimate.Status != entity.EstimatePendiente {
		return nil, domain.NewBusinessError("solo un presupuesto pendiente puede aprobarse o rechazarse")
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	estimate.Status = status
	resp := dto.NewEstimateResponse(estimate)
	return &resp, nil
}

// InvoiceData arma los datos de facturación desde un presupuesto. Solo un
// presupuesto ACEPTADO puede convertirse en factura.
func (uc *EstimateUseCase) InvoiceData(id int64) (*dto.EstimateInvoiceDataResponse, error) {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if estimate.Status != entity.EstimateAceptado {
		return nil, domain.NewBusinessError("solo un presupuesto aceptado puede facturarse")
	}
	items := make([]dto.BillingItemDTO, 0, len(estimate.Items))
	for _, it := range estimate.Items {
		items = append(items, dto.BillingItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			IsService:   it.IsService,
		})
	}
	totals := domainbilling.ComputeTotal(estimate.Subtotal(), estimate.DiscountPercent, estimate.TaxPercent)
	return &dto.EstimateInvoiceDataResponse{
		ClientID:        estimate.ClientID,
		RepairOrderID:   estimate.RepairOrderID,
		EstimateID:      estimate.ID,
		Items:           items,
		DiscountPercent: estimate.DiscountPercent,
		TaxPercent:      estimate.TaxPercent,
		Total:           totals.Total,
	}, nil
}

// Totals desglose monetario del presupuesto sin persistir cambios.
func (uc *EstimateUseCase) Totals(id int64) (*domainbilling.Totals, error) {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	totals := domainbilling.ComputeTotal(estimate.Subtotal(), estimate.DiscountPercent, estimate.TaxPercent)
	return &totals, nil
}

// Delete elimina un presupuesto PENDIENTE o RECHAZADO; uno aceptado queda
// como respaldo de la factura.
func (uc *EstimateUseCase) Delete(id int64) error {
	estimate, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if estimate.Status == entity.EstimateAceptado {
		return domain.NewBusinessError("un presupuesto aceptado no puede eliminarse")
	}
	return uc.repo.Delete(id)
}
