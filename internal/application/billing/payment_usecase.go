package billing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	domainbilling "github.com/autotech/taller-api/internal/domain/billing"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// PaymentUseCase casos de uso de pagos. Cada operación deja una entrada de
// auditoría con instantáneas del pago, y recalcula el estado de la factura.
// Las escrituras (pago + auditoría + estado de la factura) corren dentro de
// una misma transacción vía BillingTxRunner.
type PaymentUseCase struct {
	tx       BillingTxRunner
	repo     repository.PaymentRepository
	invoices repository.InvoiceRepository
	audit    repository.PaymentAuditRepository
	accounts repository.BankAccountRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	tx BillingTxRunner,
	repo repository.PaymentRepository,
	invoices repository.InvoiceRepository,
	audit repository.PaymentAuditRepository,
	accounts repository.BankAccountRepository,
) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, repo: repo, invoices: invoices, audit: audit, accounts: accounts}
}

func (uc *PaymentUseCase) validateBankAccount(paymentType string, bankAccountID *int64) error {
	if !entity.IsValidPaymentType(paymentType) {
		return domain.NewBusinessError("medio de pago inválido: " + paymentType)
	}
	if entity.RequiresBankAccount(paymentType) {
		if bankAccountID == nil {
			return domain.NewBusinessError("el pago por cuenta bancaria requiere la cuenta destino")
		}
		if _, err := uc.accounts.GetByID(*bankAccountID); err != nil {
			return err
		}
	}
	return nil
}

// refreshInvoiceStatus recalcula lo pagado y alterna PENDIENTE/PAGADA.
func refreshInvoiceStatus(invoices repository.InvoiceRepository, payments repository.PaymentRepository, invoiceID int64) error {
	invoice, err := invoices.GetByID(invoiceID)
	if err != nil {
		return err
	}
	paid, err := payments.SumByInvoice(invoiceID)
	if err != nil {
		return err
	}
	summary := domainbilling.Summarize(invoice.Total, paid)
	status := entity.InvoicePendiente
	if summary.Settled {
		status = entity.InvoicePagada
	}
	return invoices.UpdateStatus(invoiceID, status, paid)
}

func appendAudit(audit repository.PaymentAuditRepository, payment *entity.Payment, action string, prev *entity.Payment, performedBy *int64) error {
	var prevSnap, nextSnap []byte
	if prev != nil {
		prevSnap, _ = json.Marshal(dto.NewPaymentResponse(prev))
	}
	if action != entity.PaymentAuditDeleted {
		nextSnap, _ = json.Marshal(dto.NewPaymentResponse(payment))
	}
	return audit.Append(&entity.PaymentAuditLog{
		PaymentID:             payment.ID,
		InvoiceID:             payment.InvoiceID,
		Action:                action,
		SnapshotPrev:          prevSnap,
		SnapshotNext:          nextSnap,
		PerformedByEmployeeID: performedBy,
	})
}

// Create registra un pago sobre una factura. El monto debe ser positivo y no
// puede exceder el saldo pendiente.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	invoice, err := uc.invoices.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewBusinessError("el monto del pago debe ser positivo")
	}
	if !domainbilling.FitsRemaining(in.Amount, invoice.Total, invoice.PaidAmount) {
		return nil, domain.NewBusinessError("el pago excede el saldo pendiente de la factura")
	}
	if err := uc.validateBankAccount(in.PaymentType, in.BankAccountID); err != nil {
		return nil, err
	}
	paidAt := time.Now()
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}
	payment := &entity.Payment{
		InvoiceID:              in.InvoiceID,
		Amount:                 in.Amount,
		PayerName:              in.PayerName,
		PaymentType:            in.PaymentType,
		BankAccountID:          in.BankAccountID,
		RegisteredByEmployeeID: in.RegisteredByEmployeeID,
		PaidAt:                 paidAt,
	}
	err = uc.tx.RunBilling(context.Background(), func(
		invoices repository.InvoiceRepository,
		payments repository.PaymentRepository,
		audit repository.PaymentAuditRepository,
	) error {
		if err := payments.Create(payment); err != nil {
			return err
		}
		if err := appendAudit(audit, payment, entity.PaymentAuditCreated, nil, in.RegisteredByEmployeeID); err != nil {
			return err
		}
		return refreshInvoiceStatus(invoices, payments, in.InvoiceID)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

// ListByInvoice lista los pagos de una factura con su resumen de cobro.
func (uc *PaymentUseCase) ListByInvoice(invoiceID int64) ([]dto.PaymentResponse, *domainbilling.PaymentSummary, error) {
	invoice, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := uc.repo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, nil, err
	}
	summary := domainbilling.Summarize(invoice.Total, invoice.PaidAmount)
	return dto.NewPaymentResponses(payments), &summary, nil
}

// Update corrige un pago. El nuevo monto debe seguir cabiendo en el total de
// la factura descontando el resto de los pagos.
func (uc *PaymentUseCase) Update(id int64, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	prev := *payment
	invoice, err := uc.invoices.GetByID(payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.NewBusinessError("el monto del pago debe ser positivo")
		}
		othersPaid := invoice.PaidAmount.Sub(payment.Amount)
		if !domainbilling.FitsRemaining(*in.Amount, invoice.Total, othersPaid) {
			return nil, domain.NewBusinessError("el pago excede el saldo pendiente de la factura")
		}
		payment.Amount = *in.Amount
	}
	if in.PaymentType != nil {
		payment.PaymentType = *in.PaymentType
	}
	if in.BankAccountID != nil {
		payment.BankAccountID = in.BankAccountID
	}
	if err := uc.validateBankAccount(payment.PaymentType, payment.BankAccountID); err != nil {
		return nil, err
	}
	if in.PayerName != nil {
		payment.PayerName = *in.PayerName
	}
	if in.RegisteredByEmployeeID != nil {
		payment.RegisteredByEmployeeID = in.RegisteredByEmployeeID
	}
	if in.PaidAt != nil {
		payment.PaidAt = *in.PaidAt
	}
	err = uc.tx.RunBilling(context.Background(), func(
		invoices repository.InvoiceRepository,
		payments repository.PaymentRepository,
		audit repository.PaymentAuditRepository,
	) error {
		if err := payments.Update(payment); err != nil {
			return err
		}
		if err := appendAudit(audit, payment, entity.PaymentAuditModified, &prev, in.RegisteredByEmployeeID); err != nil {
			return err
		}
		return refreshInvoiceStatus(invoices, payments, payment.InvoiceID)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

// Delete anula un pago y recalcula el estado de la factura. performedBy
// identifica al empleado que ejecuta la baja en la auditoría.
func (uc *PaymentUseCase) Delete(id int64, performedBy *int64) error {
	payment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	prev := *payment
	return uc.tx.RunBilling(context.Background(), func(
		invoices repository.InvoiceRepository,
		payments repository.PaymentRepository,
		audit repository.PaymentAuditRepository,
	) error {
		if err := payments.Delete(id); err != nil {
			return err
		}
		if err := appendAudit(audit, payment, entity.PaymentAuditDeleted, &prev, performedBy); err != nil {
			return err
		}
		return refreshInvoiceStatus(invoices, payments, payment.InvoiceID)
	})
}

// AuditTrail historial de auditoría de los pagos de una factura.
func (uc *PaymentUseCase) AuditTrail(invoiceID int64) ([]*entity.PaymentAuditLog, error) {
	if _, err := uc.invoices.GetByID(invoiceID); err != nil {
		return nil, err
	}
	return uc.audit.ListByInvoice(invoiceID)
}
