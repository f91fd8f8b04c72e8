package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/analytics"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/schedule"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler maneja el panel de control, reportes y exportaciones.
type DashboardHandler struct {
	uc     *analytics.DashboardUseCase
	export *analytics.ExportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, export *analytics.ExportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, export: export}
}

// resolveRange arma el rango a partir de ?view=day|week|month y ?date=.
func (h *DashboardHandler) resolveRange(c *fiber.Ctx) (schedule.Range, error) {
	ref, err := parseRefDate(c)
	if err != nil {
		return schedule.Range{}, domain.ErrInvalidInput
	}
	return h.uc.ResolveRange(c.Query("view", "month"), ref)
}

// Summary GET /api/dashboard/summary?view=month&date=2025-03-01
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	r, err := h.resolveRange(c)
	if err != nil {
		return fail(c, err)
	}
	summary, err := h.uc.SummaryDTO(r)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, summary)
}

// Financial GET /api/dashboard/financiero?view=month&date=2025-03-01
func (h *DashboardHandler) Financial(c *fiber.Ctx) error {
	r, err := h.resolveRange(c)
	if err != nil {
		return fail(c, err)
	}
	report, err := h.uc.FinancialDTO(r)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, report)
}

// Productivity GET /api/dashboard/productividad?view=month&date=2025-03-01
func (h *DashboardHandler) Productivity(c *fiber.Ctx) error {
	r, err := h.resolveRange(c)
	if err != nil {
		return fail(c, err)
	}
	report, err := h.uc.ProductivityDTO(r)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, report)
}

type dashboardConfigBody struct {
	StaleThresholdDays int `json:"staleThresholdDays"`
}

// GetConfig GET /api/dashboard/config
func (h *DashboardHandler) GetConfig(c *fiber.Ctx) error {
	cfg, err := h.uc.GetConfig()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, dashboardConfigBody{StaleThresholdDays: cfg.StaleThresholdDays})
}

// SaveConfig PUT /api/dashboard/config
func (h *DashboardHandler) SaveConfig(c *fiber.Ctx) error {
	var in dashboardConfigBody
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	cfg := &entity.DashboardConfig{StaleThresholdDays: in.StaleThresholdDays}
	if err := h.uc.SaveConfig(cfg); err != nil {
		return fail(c, err)
	}
	return ok(c, dashboardConfigBody{StaleThresholdDays: cfg.StaleThresholdDays})
}

func sendXLSX(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(data)
}

// ExportClients GET /api/exports/clients
func (h *DashboardHandler) ExportClients(c *fiber.Ctx) error {
	data, err := h.export.Clients()
	if err != nil {
		return fail(c, err)
	}
	return sendXLSX(c, "clientes.xlsx", data)
}

// ExportEmployees GET /api/exports/employees
func (h *DashboardHandler) ExportEmployees(c *fiber.Ctx) error {
	data, err := h.export.Employees()
	if err != nil {
		return fail(c, err)
	}
	return sendXLSX(c, "empleados.xlsx", data)
}

// ExportFinancial GET /api/exports/financiero?view=month&date=2025-03-01
func (h *DashboardHandler) ExportFinancial(c *fiber.Ctx) error {
	r, err := h.resolveRange(c)
	if err != nil {
		return fail(c, err)
	}
	data, err := h.export.Financial(r)
	if err != nil {
		return fail(c, err)
	}
	return sendXLSX(c, "financiero.xlsx", data)
}

// ExportProductivity GET /api/exports/productividad?view=month&date=2025-03-01
func (h *DashboardHandler) ExportProductivity(c *fiber.Ctx) error {
	r, err := h.resolveRange(c)
	if err != nil {
		return fail(c, err)
	}
	data, err := h.export.Productivity(r)
	if err != nil {
		return fail(c, err)
	}
	return sendXLSX(c, "productividad.xlsx", data)
}
