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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceSelect = `
	SELECT i.id, i.number, i.client_id, i.repair_order_id, i.estimate_id, i.status,
		i.subtotal, i.discount_percent, i.discount_amount, i.tax_percent, i.tax_amount,
		i.total, i.paid_amount, i.issued_at, i.due_date, i.notes, i.created_at, i.updated_at,
		c.first_name, c.last_name
	FROM invoices i
	JOIN clients c ON c.id = i.client_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var v entity.Invoice
	var client entity.Client
	err := row.Scan(
		&v.ID, &v.Number, &v.ClientID, &v.RepairOrderID, &v.EstimateID, &v.Status,
		&v.Subtotal, &v.DiscountPercent, &v.DiscountAmount, &v.TaxPercent, &v.TaxAmount,
		&v.Total, &v.PaidAmount, &v.IssuedAt, &v.DueDate, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
		&client.FirstName, &client.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	client.ID = v.ClientID
	v.Client = &client
	return &v, nil
}

func (r *InvoiceRepo) hydrateItems(invoice *entity.Invoice) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, description, quantity, unit_price, is_service
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoice.ID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InvoiceItem
		it.InvoiceID = invoice.ID
		if err := rows.Scan(&it.ID, &it.Description, &it.Quantity, &it.UnitPrice, &it.IsService); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		invoice.Items = append(invoice.Items, it)
	}
	return rows.Err()
}

// Create persiste una factura con sus líneas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO invoices (number, client_id, repair_order_id, estimate_id, status,
			subtotal, discount_percent, discount_amount, tax_percent, tax_amount,
			total, paid_amount, issued_at, due_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`,
		invoice.Number, invoice.ClientID, invoice.RepairOrderID, invoice.EstimateID,
		invoice.Status, invoice.Subtotal, invoice.DiscountPercent, invoice.DiscountAmount,
		invoice.TaxPercent, invoice.TaxAmount, invoice.Total, invoice.PaidAmount,
		invoice.IssuedAt, invoice.DueDate, invoice.Notes,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for i := range invoice.Items {
		it := &invoice.Items[i]
		it.InvoiceID = invoice.ID
		if err := r.q.QueryRow(ctx, `
			INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, is_service)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			invoice.ID, it.Description, it.Quantity, it.UnitPrice, it.IsService,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura con cliente y líneas.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	invoice, err := scanInvoice(r.q.QueryRow(context.Background(),
		invoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetByRepairOrder obtiene la factura ligada a una orden de trabajo.
func (r *InvoiceRepo) GetByRepairOrder(repairOrderID int64) (*entity.Invoice, error) {
	invoice, err := scanInvoice(r.q.QueryRow(context.Background(),
		invoiceSelect+` WHERE i.repair_order_id = $1`, repairOrderID))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *InvoiceRepo) collect(rows pgx.Rows) ([]*entity.Invoice, error) {
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		v, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		if err := r.hydrateItems(v); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// List lista facturas con filtros y paginación.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, int64, error) {
	where := ` WHERE ($1 = '' OR i.number ILIKE '%' || $1 || '%'
			OR c.first_name ILIKE '%' || $1 || '%'
			OR c.last_name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR i.status = $2)
		AND ($3::bigint IS NULL OR i.client_id = $3)
		AND ($4::timestamptz IS NULL OR i.issued_at >= $4)
		AND ($5::timestamptz IS NULL OR i.issued_at < $5)`

	args := []any{filter.Search, filter.Status, filter.ClientID, filter.From, filter.To}

	var total int64
	countQuery := `SELECT COUNT(*) FROM invoices i JOIN clients c ON c.id = i.client_id` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := invoiceSelect + where + ` ORDER BY i.issued_at DESC LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(context.Background(), query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	list, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListUnpaid lista todas las facturas pendientes de cobro.
func (r *InvoiceRepo) ListUnpaid() ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(),
		invoiceSelect+` WHERE i.status = $1 ORDER BY i.issued_at`, entity.InvoicePendiente)
	if err != nil {
		return nil, fmt.Errorf("list unpaid invoices: %w", err)
	}
	return r.collect(rows)
}

// Update actualiza la cabecera de una factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE invoices SET due_date = $2, notes = $3, updated_at = NOW()
		WHERE id = $1`, invoice.ID, invoice.DueDate, invoice.Notes)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia estado y monto pagado de una factura.
func (r *InvoiceRepo) UpdateStatus(id int64, status string, paidAmount decimal.Decimal) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE invoices SET status = $2, paid_amount = $3, updated_at = NOW()
		WHERE id = $1`, id, status, paidAmount)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextNumber genera el próximo número de factura (secuencia F-00000001).
func (r *InvoiceRepo) NextNumber() (string, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT nextval('invoice_number_seq')`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return fmt.Sprintf("F-%08d", n), nil
}

// Delete elimina una factura.
func (r *InvoiceRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete invoice: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumInvoicedBetween total facturado en el rango.
func (r *InvoiceRepo) SumInvoicedBetween(from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(total), 0) FROM invoices
		WHERE issued_at >= $1 AND issued_at < $2`, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum invoiced: %w", err)
	}
	return total, nil
}
