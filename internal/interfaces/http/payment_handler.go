package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
)

// PaymentHandler maneja las peticiones HTTP de pagos y su auditoría.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	payment, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, payment)
}

// ListByInvoice GET /api/invoices/:id/payments
// Devuelve los pagos junto con el resumen de cobranza de la factura.
func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	invoiceID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	payments, summary, err := h.uc.ListByInvoice(invoiceID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"payments": payments,
		"summary":  summary,
	})
}

// Update PUT /api/payments/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	payment, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, payment)
}

// Delete DELETE /api/payments/:id?performedBy=
// Si la factura quedaba saldada vuelve a estado pendiente.
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var performedBy *int64
	if v := c.Query("performedBy"); v != "" {
		employeeID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || employeeID <= 0 {
			return fail(c, domain.ErrInvalidInput)
		}
		performedBy = &employeeID
	}
	if err := h.uc.Delete(id, performedBy); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "pago eliminado")
}

// AuditTrail GET /api/invoices/:id/payments/audit
func (h *PaymentHandler) AuditTrail(c *fiber.Ctx) error {
	invoiceID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	trail, err := h.uc.AuditTrail(invoiceID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, trail)
}
