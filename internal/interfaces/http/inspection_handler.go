package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/workshop"
)

// InspectionHandler maneja inspecciones de ingreso, plantillas y problemas frecuentes.
type InspectionHandler struct {
	uc *workshop.InspectionUseCase
}

// NewInspectionHandler construye el handler.
func NewInspectionHandler(uc *workshop.InspectionUseCase) *InspectionHandler {
	return &InspectionHandler{uc: uc}
}

// Create POST /api/inspections
func (h *InspectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInspectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	inspection, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, inspection)
}

// GetByRepairOrder GET /api/repair-orders/:id/inspection
func (h *InspectionHandler) GetByRepairOrder(c *fiber.Ctx) error {
	repairOrderID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	inspection, err := h.uc.GetByRepairOrder(repairOrderID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, inspection)
}

// Update PUT /api/inspections/:id
func (h *InspectionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateInspectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	inspection, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, inspection)
}

// Delete DELETE /api/inspections/:id
func (h *InspectionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "inspección eliminada")
}

// CreateTemplate POST /api/inspection-templates
func (h *InspectionHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.CreateInspectionTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	template, err := h.uc.CreateTemplate(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, template)
}

// ListTemplates GET /api/inspection-templates
func (h *InspectionHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.uc.ListTemplates()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, templates)
}

// GetTemplate GET /api/inspection-templates/:id
func (h *InspectionHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	template, err := h.uc.GetTemplate(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, template)
}

// UpdateTemplate PUT /api/inspection-templates/:id
func (h *InspectionHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateInspectionTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	template, err := h.uc.UpdateTemplate(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, template)
}

// DuplicateTemplate POST /api/inspection-templates/:id/duplicate
func (h *InspectionHandler) DuplicateTemplate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	template, err := h.uc.DuplicateTemplate(id)
	if err != nil {
		return fail(c, err)
	}
	return created(c, template)
}

// DeleteTemplate DELETE /api/inspection-templates/:id
func (h *InspectionHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteTemplate(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "plantilla eliminada")
}

// ListCommonProblems GET /api/common-problems
func (h *InspectionHandler) ListCommonProblems(c *fiber.Ctx) error {
	problems, err := h.uc.ListCommonProblems()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, problems)
}

// CreateCommonProblem POST /api/common-problems
func (h *InspectionHandler) CreateCommonProblem(c *fiber.Ctx) error {
	var in struct {
		Description string `json:"description"`
		Category    string `json:"category"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	problem, err := h.uc.CreateCommonProblem(in.Description, in.Category)
	if err != nil {
		return fail(c, err)
	}
	return created(c, problem)
}

// DeleteCommonProblem DELETE /api/common-problems/:id
func (h *InspectionHandler) DeleteCommonProblem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteCommonProblem(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "problema frecuente eliminado")
}
