package billing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

type fakePaymentRepo struct {
	repository.PaymentRepository
	payments map[int64]*entity.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[int64]*entity.Payment{}}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	f.nextID++
	p.ID = f.nextID
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) Update(p *entity.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) Delete(id int64) error {
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentRepo) SumByInvoice(invoiceID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range f.payments {
		if p.InvoiceID == invoiceID {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

type fakeInvoiceRepo struct {
	repository.InvoiceRepository
	invoices map[int64]*entity.Invoice
}

func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	v, ok := f.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(id int64, status string, paid decimal.Decimal) error {
	f.invoices[id].Status = status
	f.invoices[id].PaidAmount = paid
	return nil
}

type fakeAuditRepo struct {
	repository.PaymentAuditRepository
	entries []*entity.PaymentAuditLog
}

func (f *fakeAuditRepo) Append(log *entity.PaymentAuditLog) error {
	f.entries = append(f.entries, log)
	return nil
}

type fakeAccountRepo struct {
	repository.BankAccountRepository
	accounts map[int64]*entity.BankAccount
}

func (f *fakeAccountRepo) GetByID(id int64) (*entity.BankAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// fakeTxRunner ejecuta el callback directamente con los mismos fakes, sin
// transacción real.
type fakeTxRunner struct {
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	audit    repository.PaymentAuditRepository
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	auditRepo repository.PaymentAuditRepository,
) error) error {
	return fn(f.invoices, f.payments, f.audit)
}

func newPaymentUC(t *testing.T) (*PaymentUseCase, *fakeInvoiceRepo, *fakeAuditRepo) {
	t.Helper()
	invoices := &fakeInvoiceRepo{invoices: map[int64]*entity.Invoice{
		1: {ID: 1, Status: entity.InvoicePendiente, Total: decimal.NewFromInt(1000), PaidAmount: decimal.Zero},
	}}
	audit := &fakeAuditRepo{}
	accounts := &fakeAccountRepo{accounts: map[int64]*entity.BankAccount{
		5: {ID: 5, Active: true},
	}}
	payments := newFakePaymentRepo()
	tx := &fakeTxRunner{invoices: invoices, payments: payments, audit: audit}
	uc := NewPaymentUseCase(tx, payments, invoices, audit, accounts)
	return uc, invoices, audit
}

func TestPaymentCreateMarksInvoicePaid(t *testing.T) {
	uc, invoices, audit := newPaymentUC(t)

	_, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromInt(400),
		PaymentType: entity.PaymentEfectivo,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePendiente, invoices.invoices[1].Status)
	assert.True(t, decimal.NewFromInt(400).Equal(invoices.invoices[1].PaidAmount))

	employeeID := int64(7)
	_, err = uc.Create(dto.CreatePaymentRequest{
		InvoiceID:              1,
		Amount:                 decimal.NewFromInt(600),
		PayerName:              "Laura Gómez",
		PaymentType:            entity.PaymentEfectivo,
		RegisteredByEmployeeID: &employeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePagada, invoices.invoices[1].Status)

	require.Len(t, audit.entries, 2)
	assert.Equal(t, entity.PaymentAuditCreated, audit.entries[0].Action)
	assert.NotEmpty(t, audit.entries[0].SnapshotNext)
	assert.Empty(t, audit.entries[0].SnapshotPrev)
	require.NotNil(t, audit.entries[1].PerformedByEmployeeID)
	assert.Equal(t, employeeID, *audit.entries[1].PerformedByEmployeeID)
}

func TestPaymentCreateRejectsOverpayment(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	_, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromFloat(1000.01),
		PaymentType: entity.PaymentEfectivo,
	})
	assert.True(t, domain.IsBusiness(err))
}

func TestPaymentCreateRejectsNonPositiveAmount(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	_, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.Zero,
		PaymentType: entity.PaymentEfectivo,
	})
	assert.True(t, domain.IsBusiness(err))
}

func TestPaymentBankAccountRequired(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	_, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromInt(100),
		PaymentType: entity.PaymentCuentaBancaria,
	})
	assert.True(t, domain.IsBusiness(err))

	accountID := int64(5)
	_, err = uc.Create(dto.CreatePaymentRequest{
		InvoiceID:     1,
		Amount:        decimal.NewFromInt(100),
		PaymentType:   entity.PaymentCuentaBancaria,
		BankAccountID: &accountID,
	})
	assert.NoError(t, err)
}

func TestPaymentDeleteReopensInvoice(t *testing.T) {
	uc, invoices, audit := newPaymentUC(t)

	created, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromInt(1000),
		PaymentType: entity.PaymentEfectivo,
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoicePagada, invoices.invoices[1].Status)

	deletedBy := int64(3)
	require.NoError(t, uc.Delete(created.ID, &deletedBy))
	assert.Equal(t, entity.InvoicePendiente, invoices.invoices[1].Status)
	assert.True(t, invoices.invoices[1].PaidAmount.IsZero())

	last := audit.entries[len(audit.entries)-1]
	assert.Equal(t, entity.PaymentAuditDeleted, last.Action)
	assert.NotEmpty(t, last.SnapshotPrev)
	assert.Empty(t, last.SnapshotNext)
	require.NotNil(t, last.PerformedByEmployeeID)
	assert.Equal(t, deletedBy, *last.PerformedByEmployeeID)
}

func TestPaymentCreateRejectsUnknownType(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	for _, tipo := range []string{"TARJETA_CREDITO", "TARJETA_DEBITO", "TRANSFERENCIA", "CHEQUE"} {
		_, err := uc.Create(dto.CreatePaymentRequest{
			InvoiceID:   1,
			Amount:      decimal.NewFromInt(100),
			PaymentType: tipo,
		})
		assert.True(t, domain.IsBusiness(err), "medio de pago %s debe rechazarse", tipo)
	}
}

func TestPaymentUpdateAuditsModification(t *testing.T) {
	uc, _, audit := newPaymentUC(t)

	created, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromInt(400),
		PaymentType: entity.PaymentEfectivo,
	})
	require.NoError(t, err)

	newAmount := decimal.NewFromInt(500)
	editor := int64(9)
	updated, err := uc.Update(created.ID, dto.UpdatePaymentRequest{
		Amount:                 &newAmount,
		RegisteredByEmployeeID: &editor,
	})
	require.NoError(t, err)
	assert.True(t, newAmount.Equal(updated.Amount))

	last := audit.entries[len(audit.entries)-1]
	assert.Equal(t, entity.PaymentAuditModified, last.Action)
	assert.NotEmpty(t, last.SnapshotPrev)
	assert.NotEmpty(t, last.SnapshotNext)
	require.NotNil(t, last.PerformedByEmployeeID)
	assert.Equal(t, editor, *last.PerformedByEmployeeID)
}

func TestPaymentUpdateRevalidatesRemaining(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	created, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:   1,
		Amount:      decimal.NewFromInt(400),
		PaymentType: entity.PaymentEfectivo,
	})
	require.NoError(t, err)

	tooMuch := decimal.NewFromInt(1001)
	_, err = uc.Update(created.ID, dto.UpdatePaymentRequest{Amount: &tooMuch})
	assert.True(t, domain.IsBusiness(err))

	exact := decimal.NewFromInt(1000)
	updated, err := uc.Update(created.ID, dto.UpdatePaymentRequest{Amount: &exact})
	require.NoError(t, err)
	assert.True(t, exact.Equal(updated.Amount))
}
