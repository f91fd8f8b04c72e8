package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, invoice_id, amount, payer_name, payment_type, bank_account_id,
	registered_by_employee_id, paid_at, created_at, updated_at`

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.InvoiceID, &p.Amount, &p.PayerName, &p.PaymentType, &p.BankAccountID,
		&p.RegisteredByEmployeeID, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return &p, nil
}

// Create persiste un pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO payments (invoice_id, amount, payer_name, payment_type, bank_account_id, registered_by_employee_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		payment.InvoiceID, payment.Amount, payment.PayerName, payment.PaymentType,
		payment.BankAccountID, payment.RegisteredByEmployeeID, payment.PaidAt,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por su ID.
func (r *PaymentRepo) GetByID(id int64) (*entity.Payment, error) {
	return scanPayment(r.q.QueryRow(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

// ListByInvoice lista los pagos de una factura.
func (r *PaymentRepo) ListByInvoice(invoiceID int64) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+paymentColumns+` FROM payments WHERE invoice_id = $1 ORDER BY paid_at`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un pago existente.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE payments SET amount = $2, payer_name = $3, payment_type = $4,
			bank_account_id = $5, registered_by_employee_id = $6, paid_at = $7, updated_at = NOW()
		WHERE id = $1`,
		payment.ID, payment.Amount, payment.PayerName, payment.PaymentType,
		payment.BankAccountID, payment.RegisteredByEmployeeID, payment.PaidAt)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pago.
func (r *PaymentRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumByInvoice suma de pagos aplicados a una factura.
func (r *PaymentRepo) SumByInvoice(invoiceID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`,
		invoiceID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// SumCollectedBetween total cobrado en el rango.
func (r *PaymentRepo) SumCollectedBetween(from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE paid_at >= $1 AND paid_at < $2`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum collected: %w", err)
	}
	return total, nil
}

// SumByMethodBetween total cobrado por medio de pago en el rango.
func (r *PaymentRepo) SumByMethodBetween(from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT payment_type, COALESCE(SUM(amount), 0) FROM payments
		WHERE paid_at >= $1 AND paid_at < $2
		GROUP BY payment_type`, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum by method: %w", err)
	}
	defer rows.Close()
	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var method string
		var amount decimal.Decimal
		if err := rows.Scan(&method, &amount); err != nil {
			return nil, fmt.Errorf("scan method total: %w", err)
		}
		totals[method] = amount
	}
	return totals, rows.Err()
}

var _ repository.PaymentAuditRepository = (*PaymentAuditRepo)(nil)

// PaymentAuditRepo bitácora de pagos, solo inserción y lectura.
type PaymentAuditRepo struct {
	q Querier
}

// NewPaymentAuditRepository construye el adaptador de auditoría.
func NewPaymentAuditRepository(q Querier) *PaymentAuditRepo {
	return &PaymentAuditRepo{q: q}
}

// Append registra una entrada de auditoría.
func (r *PaymentAuditRepo) Append(log *entity.PaymentAuditLog) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO payment_audit_log (payment_id, invoice_id, action, snapshot_prev, snapshot_next, performed_by_employee_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		log.PaymentID, log.InvoiceID, log.Action, log.SnapshotPrev, log.SnapshotNext,
		log.PerformedByEmployeeID,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment audit: %w", err)
	}
	return nil
}

// ListByInvoice historial de auditoría de los pagos de una factura.
func (r *PaymentAuditRepo) ListByInvoice(invoiceID int64) ([]*entity.PaymentAuditLog, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, payment_id, invoice_id, action, snapshot_prev, snapshot_next,
			performed_by_employee_id, created_at
		FROM payment_audit_log WHERE invoice_id = $1 ORDER BY created_at DESC, id DESC`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list payment audit: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentAuditLog
	for rows.Next() {
		var l entity.PaymentAuditLog
		if err := rows.Scan(&l.ID, &l.PaymentID, &l.InvoiceID, &l.Action,
			&l.SnapshotPrev, &l.SnapshotNext, &l.PerformedByEmployeeID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment audit: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
