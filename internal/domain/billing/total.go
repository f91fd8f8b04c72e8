// Package billing concentra la aritmética monetaria de presupuestos,
// facturas y pagos. Todos los montos usan decimal con redondeo a dos
// decimales (mitad hacia arriba) en cada paso intermedio.
package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// round2 redondea a dos decimales, mitad hacia arriba.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Totals desglose monetario de un presupuesto o factura.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotal aplica descuento porcentual sobre el subtotal y luego impuesto
// porcentual sobre el resultado, redondeando cada monto a dos decimales antes
// del siguiente paso.
func ComputeTotal(subtotal, discountPercent, taxPercent decimal.Decimal) Totals {
	discount := round2(subtotal.Mul(discountPercent).Div(hundred))
	afterDiscount := subtotal.Sub(discount)
	tax := round2(afterDiscount.Mul(taxPercent).Div(hundred))
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          afterDiscount.Add(tax),
	}
}

// PaymentSummary estado de cobro de una factura dado su total y lo pagado.
type PaymentSummary struct {
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
	Settled   bool
}

// Summarize calcula el saldo pendiente; una factura queda saldada cuando lo
// pagado alcanza el total.
func Summarize(total, paid decimal.Decimal) PaymentSummary {
	remaining := total.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return PaymentSummary{
		Total:     total,
		Paid:      paid,
		Remaining: remaining,
		Settled:   paid.GreaterThanOrEqual(total),
	}
}

// FitsRemaining valida que un monto de pago no exceda el saldo pendiente.
func FitsRemaining(amount, total, paid decimal.Decimal) bool {
	return amount.LessThanOrEqual(total.Sub(paid))
}
