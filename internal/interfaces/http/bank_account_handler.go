package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autotech/taller-api/internal/application/billing"
	"github.com/autotech/taller-api/internal/application/dto"
)

// BankAccountHandler maneja cuentas bancarias y el catálogo de bancos.
type BankAccountHandler struct {
	uc *billing.BankAccountUseCase
}

// NewBankAccountHandler construye el handler.
func NewBankAccountHandler(uc *billing.BankAccountUseCase) *BankAccountHandler {
	return &BankAccountHandler{uc: uc}
}

// Create POST /api/bank-accounts
func (h *BankAccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	account, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, account)
}

// List GET /api/bank-accounts?active=true
func (h *BankAccountHandler) List(c *fiber.Ctx) error {
	onlyActive := c.QueryBool("active", false)
	accounts, err := h.uc.List(onlyActive)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, accounts)
}

// SetActive PATCH /api/bank-accounts/:id/active
func (h *BankAccountHandler) SetActive(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in struct {
		Active bool `json:"active"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	account, err := h.uc.SetActive(id, in.Active)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, account)
}

// Delete DELETE /api/bank-accounts/:id
func (h *BankAccountHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return okMessage(c, "cuenta bancaria eliminada")
}

// ListBanks GET /api/banks
func (h *BankAccountHandler) ListBanks(c *fiber.Ctx) error {
	banks, err := h.uc.ListBanks()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, banks)
}
