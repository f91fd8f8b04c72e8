package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func optionalDate(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// Create POST /api/invoices
// Factura desde presupuesto aceptado (estimateId) o manual (items sueltos).
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, invoice)
}

// List GET /api/invoices?search=&status=&clientId=&from=&to=&page=0&size=12
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	filter := repository.InvoiceFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		ClientID: optionalID(c, "clientId"),
		From:     optionalDate(c, "from"),
		To:       optionalDate(c, "to"),
	}
	result, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	invoice, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, invoice)
}

// GetByRepairOrder GET /api/repair-orders/:id/invoice
func (h *InvoiceHandler) GetByRepairOrder(c *fiber.Ctx) error {
	repairOrderID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	invoice, err := h.uc.GetByRepairOrder(repairOrderID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, invoice)
}

// Delete DELETE /api/invoices/:id
// No se eliminan facturas ligadas a una orden de trabajo ni ya pagadas.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "factura eliminada")
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	pdf, err := h.uc.GeneratePDF(id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=factura-%d.pdf", id))
	return c.Send(pdf)
}
