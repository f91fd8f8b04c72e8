package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// EstimateHandler maneja las peticiones HTTP de presupuestos.
type EstimateHandler struct {
	uc *billing.EstimateUseCase
}

// NewEstimateHandler construye el handler.
func NewEstimateHandler(uc *billing.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{uc: uc}
}

// Create POST /api/estimates
func (h *EstimateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	estimate, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, estimate)
}

// List GET /api/estimates?status=&clientName=&plate=&repairOrderId=&page=0&size=12
func (h *EstimateHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	filter := repository.EstimateFilter{
		Status:        c.Query("status"),
		ClientName:    c.Query("clientName"),
		Plate:         c.Query("plate"),
		RepairOrderID: optionalID(c, "repairOrderId"),
	}
	result, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// GetByID GET /api/estimates/:id
func (h *EstimateHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	estimate, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, estimate)
}

// GetByRepairOrder GET /api/repair-orders/:id/estimate
func (h *EstimateHandler) GetByRepairOrder(c *fiber.Ctx) error {
	repairOrderID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	estimate, err := h.uc.GetByRepairOrder(repairOrderID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, estimate)
}

// Update PUT /api/estimates/:id
// Solo los presupuestos pendientes son editables.
func (h *EstimateHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateEstimateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	estimate, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, estimate)
}

// Approve POST /api/estimates/:id/approve
func (h *EstimateHandler) Approve(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	estimate, err := h.uc.Approve(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, estimate)
}

// Reject POST /api/estimates/:id/reject
func (h *EstimateHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	estimate, err := h.uc.Reject(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, estimate)
}

// InvoiceData GET /api/estimates/:id/invoice-data
// Datos de facturación precargados; exige presupuesto aceptado.
func (h *EstimateHandler) InvoiceData(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	data, err := h.uc.InvoiceData(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, data)
}

// Delete DELETE /api/estimates/:id
func (h *EstimateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "presupuesto eliminado")
}
