package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago.
const (
	PaymentEfectivo       = "EFECTIVO"
	PaymentCuentaBancaria = "CUENTA_BANCARIA"
)

// IsValidPaymentType valida el medio de pago.
func IsValidPaymentType(t string) bool {
	switch t {
	case PaymentEfectivo, PaymentCuentaBancaria:
		return true
	}
	return false
}

// RequiresBankAccount indica si el medio de pago exige cuenta bancaria destino.
func RequiresBankAccount(t string) bool {
	return t == PaymentCuentaBancaria
}

// Payment pago aplicado a una factura. Un pago nunca puede exceder el saldo
// pendiente de la factura.
type Payment struct {
	ID                     int64
	InvoiceID              int64
	Amount                 decimal.Decimal
	PayerName              string
	PaymentType            string
	BankAccountID          *int64
	RegisteredByEmployeeID *int64
	PaidAt                 time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Invoice              *Invoice
	BankAccount          *BankAccount
	RegisteredByEmployee *Employee
}

// Acciones registradas en la auditoría de pagos.
const (
	PaymentAuditCreated  = "CREATED"
	PaymentAuditModified = "MODIFIED"
	PaymentAuditDeleted  = "DELETED"
)

// PaymentAuditLog registro inmutable de cada operación sobre un pago, con
// instantáneas JSON del estado anterior y posterior y el empleado que la
// ejecutó.
type PaymentAuditLog struct {
	ID                    int64
	PaymentID             int64
	InvoiceID             int64
	Action                string
	SnapshotPrev          []byte
	SnapshotNext          []byte
	PerformedByEmployeeID *int64
	CreatedAt             time.Time
}
