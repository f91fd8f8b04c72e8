package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/workshop"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// RepairOrderHandler maneja las peticiones HTTP de órdenes de trabajo.
type RepairOrderHandler struct {
	uc *workshop.RepairOrderUseCase
}

// NewRepairOrderHandler construye el handler.
func NewRepairOrderHandler(uc *workshop.RepairOrderUseCase) *RepairOrderHandler {
	return &RepairOrderHandler{uc: uc}
}

// Create POST /api/repair-orders
func (h *RepairOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRepairOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, order)
}

// List GET /api/repair-orders?search=&status=&clientId=&vehicleId=&employeeId=&tagId=&page=0&size=12
func (h *RepairOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	filter := repository.RepairOrderFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		ClientID:   optionalID(c, "clientId"),
		VehicleID:  optionalID(c, "vehicleId"),
		EmployeeID: optionalID(c, "employeeId"),
		TagID:      optionalID(c, "tagId"),
	}
	result, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// Board GET /api/repair-orders/board
// Tablero Kanban: todas las columnas de estado, incluso vacías.
func (h *RepairOrderHandler) Board(c *fiber.Ctx) error {
	board, err := h.uc.Board()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, board)
}

// GetByID GET /api/repair-orders/:id
func (h *RepairOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	order, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, order)
}

// Update PUT /api/repair-orders/:id
func (h *RepairOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateRepairOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, order)
}

// UpdateStatus PATCH /api/repair-orders/:id/status
func (h *RepairOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateRepairOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	order, err := h.uc.UpdateStatus(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, order)
}

// Delete DELETE /api/repair-orders/:id
func (h *RepairOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "orden de trabajo eliminada")
}
