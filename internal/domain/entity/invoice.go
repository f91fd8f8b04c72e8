package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoicePendiente = "PENDIENTE"
	InvoicePagada    = "PAGADA"
)

// IsValidInvoiceStatus valida el estado de una factura.
func IsValidInvoiceStatus(s string) bool {
	return s == InvoicePendiente || s == InvoicePagada
}

// InvoiceItem línea de factura.
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	IsService   bool
}

// Subtotal cantidad por precio unitario de la línea.
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Invoice factura emitida a un cliente, opcionalmente ligada a una orden de
// trabajo. Una factura ligada a una orden, o ya pagada, no puede eliminarse.
type Invoice struct {
	ID              int64
	Number          string
	ClientID        int64
	RepairOrderID   *int64
	EstimateID      *int64
	Status          string
	Items           []InvoiceItem
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxPercent      decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	PaidAmount      decimal.Decimal
	IssuedAt        time.Time
	DueDate         *time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Client      *Client
	RepairOrder *RepairOrder
}

// Remaining saldo pendiente de pago.
func (v Invoice) Remaining() decimal.Decimal {
	return v.Total.Sub(v.PaidAmount)
}

// CanDelete indica si la factura puede eliminarse: nunca si está ligada a una
// orden de trabajo ni si ya fue pagada.
func (v Invoice) CanDelete() bool {
	return v.RepairOrderID == nil && v.Status != InvoicePagada
}
