package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/usecase"
)

// CatalogHandler maneja productos, servicios, trabajos predefinidos y etiquetas.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProduct POST /api/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	product, err := h.uc.CreateProduct(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, product)
}

// ListProducts GET /api/products?search=&page=0&size=12
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	result, err := h.uc.ListProducts(c.Query("search"), page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// UpdateProduct PUT /api/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	product, err := h.uc.UpdateProduct(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, product)
}

// DeleteProduct DELETE /api/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "producto eliminado")
}

// ── Servicios ─────────────────────────────────────────────────────────────────

// CreateService POST /api/services
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateCatalogServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	service, err := h.uc.CreateService(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, service)
}

// ListServices GET /api/services?search=&page=0&size=12
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	result, err := h.uc.ListServices(c.Query("search"), page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// UpdateService PUT /api/services/:id
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateCatalogServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	service, err := h.uc.UpdateService(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, service)
}

// DeleteService DELETE /api/services/:id
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteService(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "servicio eliminado")
}

// ── Trabajos predefinidos ─────────────────────────────────────────────────────

// CreateCannedJob POST /api/canned-jobs
func (h *CatalogHandler) CreateCannedJob(c *fiber.Ctx) error {
	var in dto.CreateCannedJobRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	job, err := h.uc.CreateCannedJob(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, job)
}

// GetCannedJob GET /api/canned-jobs/:id
func (h *CatalogHandler) GetCannedJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	job, err := h.uc.GetCannedJob(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, job)
}

// ListCannedJobs GET /api/canned-jobs?search=&page=0&size=12
func (h *CatalogHandler) ListCannedJobs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	result, err := h.uc.ListCannedJobs(c.Query("search"), page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// DeleteCannedJob DELETE /api/canned-jobs/:id
func (h *CatalogHandler) DeleteCannedJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteCannedJob(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "trabajo predefinido eliminado")
}

// ── Etiquetas ─────────────────────────────────────────────────────────────────

// ListTags GET /api/tags
func (h *CatalogHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.uc.ListTags()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, tags)
}

// CreateTag POST /api/tags
func (h *CatalogHandler) CreateTag(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	tag, err := h.uc.CreateTag(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, tag)
}

// DeleteTag DELETE /api/tags/:id
func (h *CatalogHandler) DeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteTag(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "etiqueta eliminada")
}
