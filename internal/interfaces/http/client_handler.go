package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, client)
}

// List GET /api/clients?search=&type=&page=0&size=12
func (h *ClientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	result, err := h.uc.List(c.Query("search"), c.Query("type"), page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	client, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	client, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, client)
}

// Upgrade PATCH /api/clients/:id/upgrade
// Promueve un cliente temporal a registrado.
func (h *ClientHandler) Upgrade(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpgradeClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	client, err := h.uc.Upgrade(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "cliente eliminado")
}
