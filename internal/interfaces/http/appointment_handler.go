package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/application/workshop"
)

// AppointmentHandler maneja las peticiones HTTP del calendario de citas.
type AppointmentHandler struct {
	uc *workshop.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *workshop.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// parseRefDate lee ?date=YYYY-MM-DD; sin parámetro usa la fecha actual.
func parseRefDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	ref, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return ref, nil
}

// Create POST /api/appointments
// Admite alta rápida de cliente temporal y vehículo desde el calendario.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	appointment, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, appointment)
}

// List GET /api/appointments?view=week&date=2025-03-10
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return badRequest(c, "fecha inválida, formato esperado YYYY-MM-DD")
	}
	view := c.Query("view", "week")
	appointments, err := h.uc.ListByView(view, ref)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointments)
}

// Range GET /api/appointments/range?start=2025-03-10&end=2025-03-17&employeeId=3
// Devuelve las citas que pisan el rango semiabierto [start, end).
func (h *AppointmentHandler) Range(c *fiber.Ctx) error {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		return badRequest(c, "inicio inválido, formato esperado YYYY-MM-DD")
	}
	end, err := time.ParseInLocation("2006-01-02", c.Query("end"), time.Local)
	if err != nil {
		return badRequest(c, "fin inválido, formato esperado YYYY-MM-DD")
	}
	appointments, err := h.uc.ListRange(start, end, optionalID(c, "employeeId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointments)
}

// GetByID GET /api/appointments/:id
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	appointment, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointment)
}

// ListByClient GET /api/clients/:id/appointments
func (h *AppointmentHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	appointments, err := h.uc.ListByClient(clientID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointments)
}

// Update PUT /api/appointments/:id
// Reprograma la cita: solo inicio y fin.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.RescheduleAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	appointment, err := h.uc.Reschedule(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointment)
}

// ClientArrived PATCH /api/appointments/:id/client-arrived?arrived=true
func (h *AppointmentHandler) ClientArrived(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	appointment, err := h.uc.MarkClientArrived(id, c.QueryBool("arrived", true))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointment)
}

// VehicleArrived PATCH /api/appointments/:id/vehicle-arrived?arrived=true
func (h *AppointmentHandler) VehicleArrived(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	appointment, err := h.uc.MarkVehicleArrived(id, c.QueryBool("arrived", true))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointment)
}

// VehiclePickedUp PATCH /api/appointments/:id/vehicle-picked-up?arrived=true
func (h *AppointmentHandler) VehiclePickedUp(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	appointment, err := h.uc.MarkVehiclePickedUp(id, c.QueryBool("arrived", true))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, appointment)
}

// Delete DELETE /api/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "cita eliminada")
}

// GetCalendarConfig GET /api/calendar/config
func (h *AppointmentHandler) GetCalendarConfig(c *fiber.Ctx) error {
	cfg, err := h.uc.GetCalendarConfig()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, cfg)
}

// SaveCalendarConfig PUT /api/calendar/config
func (h *AppointmentHandler) SaveCalendarConfig(c *fiber.Ctx) error {
	var in dto.SaveCalendarConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	cfg, err := h.uc.SaveCalendarConfig(in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, cfg)
}
