package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var _ repository.EstimateRepository = (*EstimateRepo)(nil)

const estimateSelect = `
	SELECT e.id, e.client_id, e.vehicle_id, e.repair_order_id, e.status,
		e.discount_percent, e.tax_percent, e.observations, e.reported_issues,
		e.inspection_id, e.created_at, e.updated_at,
		c.first_name, c.last_name, v.plate
	FROM estimates e
	JOIN clients c ON c.id = e.client_id
	JOIN vehicles v ON v.id = e.vehicle_id`

// EstimateRepo implementación de EstimateRepository (usable con pool o tx).
type EstimateRepo struct {
	q Querier
}

// NewEstimateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEstimateRepository(q Querier) *EstimateRepo {
	return &EstimateRepo{q: q}
}

func scanEstimate(row pgx.Row) (*entity.Estimate, error) {
	var e entity.Estimate
	var client entity.Client
	var vehicle entity.Vehicle
	err := row.Scan(
		&e.ID, &e.ClientID, &e.VehicleID, &e.RepairOrderID, &e.Status,
		&e.DiscountPercent, &e.TaxPercent, &e.Observations, &e.ReportedIssues,
		&e.InspectionID, &e.CreatedAt, &e.UpdatedAt,
		&client.FirstName, &client.LastName, &vehicle.Plate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan estimate: %w", err)
	}
	client.ID = e.ClientID
	vehicle.ID = e.VehicleID
	e.Client = &client
	e.Vehicle = &vehicle
	return &e, nil
}

func (r *EstimateRepo) hydrateItems(estimate *entity.Estimate) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, description, quantity, unit_price, is_service
		FROM estimate_items WHERE estimate_id = $1 ORDER BY id`, estimate.ID)
	if err != nil {
		return fmt.Errorf("list estimate items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.EstimateItem
		it.EstimateID = estimate.ID
		if err := rows.Scan(&it.ID, &it.Description, &it.Quantity, &it.UnitPrice, &it.IsService); err != nil {
			return fmt.Errorf("scan estimate item: %w", err)
		}
		estimate.Items = append(estimate.Items, it)
	}
	return rows.Err()
}

func (r *EstimateRepo) insertItems(estimateID int64, items []entity.EstimateItem) error {
	ctx := context.Background()
	for i := range items {
		it := &items[i]
		it.EstimateID = estimateID
		if err := r.q.QueryRow(ctx, `
			INSERT INTO estimate_items (estimate_id, description, quantity, unit_price, is_service)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			estimateID, it.Description, it.Quantity, it.UnitPrice, it.IsService,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert estimate item: %w", err)
		}
	}
	return nil
}

// Create persiste un presupuesto con sus líneas.
func (r *EstimateRepo) Create(estimate *entity.Estimate) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO estimates (client_id, vehicle_id, repair_order_id, status,
			discount_percent, tax_percent, observations, reported_issues, inspection_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		estimate.ClientID, estimate.VehicleID, estimate.RepairOrderID, estimate.Status,
		estimate.DiscountPercent, estimate.TaxPercent, estimate.Observations,
		estimate.ReportedIssues, estimate.InspectionID,
	).Scan(&estimate.ID, &estimate.CreatedAt, &estimate.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return r.insertItems(estimate.ID, estimate.Items)
}

// GetByID obtiene un presupuesto con sus líneas.
func (r *EstimateRepo) GetByID(id int64) (*entity.Estimate, error) {
	estimate, err := scanEstimate(r.q.QueryRow(context.Background(),
		estimateSelect+` WHERE e.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

// GetByRepairOrder obtiene el presupuesto ligado a una orden.
func (r *EstimateRepo) GetByRepairOrder(repairOrderID int64) (*entity.Estimate, error) {
	estimate, err := scanEstimate(r.q.QueryRow(context.Background(),
		estimateSelect+` WHERE e.repair_order_id = $1`, repairOrderID))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

// List lista presupuestos con filtros por estado, nombre del cliente y
// patente.
func (r *EstimateRepo) List(filter repository.EstimateFilter) ([]*entity.Estimate, int64, error) {
	where := ` WHERE ($1 = '' OR e.status = $1)
		AND ($2 = '' OR c.first_name || ' ' || c.last_name ILIKE '%' || $2 || '%')
		AND ($3 = '' OR v.plate ILIKE '%' || $3 || '%')
		AND ($4::bigint IS NULL OR e.repair_order_id = $4)`

	var total int64
	if err := r.q.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM estimates e
		JOIN clients c ON c.id = e.client_id
		JOIN vehicles v ON v.id = e.vehicle_id`+where,
		filter.Status, filter.ClientName, filter.Plate, filter.RepairOrderID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count estimates: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		estimateSelect+where+`
		ORDER BY e.created_at DESC LIMIT $5 OFFSET $6`,
		filter.Status, filter.ClientName, filter.Plate, filter.RepairOrderID,
		filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	var list []*entity.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, e := range list {
		if err := r.hydrateItems(e); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

// Update actualiza cabecera del presupuesto (las líneas van por ReplaceItems).
func (r *EstimateRepo) Update(estimate *entity.Estimate) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE estimates SET discount_percent = $2, tax_percent = $3, observations = $4,
			reported_issues = $5, repair_order_id = $6, updated_at = NOW()
		WHERE id = $1`,
		estimate.ID, estimate.DiscountPercent, estimate.TaxPercent,
		estimate.Observations, estimate.ReportedIssues, estimate.RepairOrderID)
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado del presupuesto.
func (r *EstimateRepo) UpdateStatus(id int64, status string) error {
	res, err := r.q.Exec(context.Background(),
		`UPDATE estimates SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estimate status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceItems reemplaza todas las líneas del presupuesto.
func (r *EstimateRepo) ReplaceItems(estimateID int64, items []entity.EstimateItem) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM estimate_items WHERE estimate_id = $1`, estimateID); err != nil {
		return fmt.Errorf("clear estimate items: %w", err)
	}
	return r.insertItems(estimateID, items)
}

// Delete elimina un presupuesto.
func (r *EstimateRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM estimates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete estimate: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus cantidad de presupuestos por estado emitidos en el rango.
func (r *EstimateRepo) CountByStatus(from, to time.Time) (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT status, COUNT(*) FROM estimates
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY status`, from, to)
	if err != nil {
		return nil, fmt.Errorf("count estimates by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan estimate count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// ListPendingOlderThan presupuestos PENDIENTE emitidos antes de la fecha de
// corte, para las alertas del panel.
func (r *EstimateRepo) ListPendingOlderThan(before time.Time) ([]*entity.Estimate, error) {
	rows, err := r.q.Query(context.Background(),
		estimateSelect+` WHERE e.status = $1 AND e.created_at < $2
		ORDER BY e.created_at ASC`, entity.EstimatePendiente, before)
	if err != nil {
		return nil, fmt.Errorf("list pending estimates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
