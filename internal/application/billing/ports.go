// Package billing contiene los casos de uso de facturación del taller:
// presupuestos, facturas, pagos y cuentas bancarias.
package billing

import (
	"context"

	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios de facturación y cobranza.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
		auditRepo repository.PaymentAuditRepository,
	) error) error
}

// InvoicePDFGenerator genera el PDF imprimible de una factura.
type InvoicePDFGenerator interface {
	Generate(invoice *entity.Invoice) ([]byte, error)
}
