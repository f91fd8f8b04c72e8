package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/usecase"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// EmployeeHandler maneja las peticiones HTTP de empleados y roles.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	employee, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, employee)
}

// List GET /api/employees?search=&status=&roleId=&page=0&size=12
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	filter := repository.EmployeeFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		RoleID: optionalID(c, "roleId"),
	}
	result, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// GetByID GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	employee, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, employee)
}

// Update PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	employee, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, employee)
}

// Delete DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "empleado eliminado")
}

// ListRoles GET /api/roles
func (h *EmployeeHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, roles)
}
