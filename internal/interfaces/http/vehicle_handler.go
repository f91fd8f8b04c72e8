package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/usecase"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// VehicleHandler maneja las peticiones HTTP de vehículos, marcas y tipos.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// optionalID lee un parámetro de query numérico opcional.
func optionalID(c *fiber.Ctx, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// Create POST /api/vehicles
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	vehicle, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, vehicle)
}

// List GET /api/vehicles?search=&clientId=&brandId=&page=0&size=12
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "paginación inválida")
	}
	filter := repository.VehicleFilter{
		Search:   c.Query("search"),
		ClientID: optionalID(c, "clientId"),
		BrandID:  optionalID(c, "brandId"),
	}
	result, err := h.uc.List(filter, page)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// GetByID GET /api/vehicles/:id
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	vehicle, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vehicle)
}

// Update PUT /api/vehicles/:id
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	vehicle, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vehicle)
}

// Delete DELETE /api/vehicles/:id
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "vehículo eliminado")
}

// WorkHistory GET /api/vehicles/:id/work-history
func (h *VehicleHandler) WorkHistory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	history, err := h.uc.WorkHistory(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, history)
}

// ListByClient GET /api/clients/:id/vehicles
func (h *VehicleHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	vehicles, err := h.uc.ListByClient(clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, vehicles)
}

// ListBrands GET /api/brands
func (h *VehicleHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.uc.ListBrands()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, brands)
}

// CreateBrand POST /api/brands
func (h *VehicleHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	brand, err := h.uc.CreateBrand(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, brand)
}

// DeleteBrand DELETE /api/brands/:id
func (h *VehicleHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.DeleteBrand(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "marca eliminada")
}

// ListVehicleTypes GET /api/vehicle-types
func (h *VehicleHandler) ListVehicleTypes(c *fiber.Ctx) error {
	types, err := h.uc.ListVehicleTypes()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, types)
}
