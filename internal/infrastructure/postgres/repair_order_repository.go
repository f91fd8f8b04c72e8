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

var _ repository.RepairOrderRepository = (*RepairOrderRepo)(nil)

const repairOrderSelect = `
	SELECT o.id, o.title, o.client_id, o.vehicle_id, o.appointment_id, o.reason,
		o.client_source, o.status, o.mechanic_notes, o.created_at, o.updated_at,
		c.first_name, c.last_name, v.plate
	FROM repair_orders o
	JOIN clients c ON c.id = o.client_id
	JOIN vehicles v ON v.id = o.vehicle_id`

// RepairOrderRepo implementación de RepairOrderRepository (usable con pool o tx).
type RepairOrderRepo struct {
	q Querier
}

// NewRepairOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRepairOrderRepository(q Querier) *RepairOrderRepo {
	return &RepairOrderRepo{q: q}
}

func scanRepairOrder(row pgx.Row) (*entity.RepairOrder, error) {
	var o entity.RepairOrder
	var client entity.Client
	var vehicle entity.Vehicle
	err := row.Scan(
		&o.ID, &o.Title, &o.ClientID, &o.VehicleID, &o.AppointmentID, &o.Reason,
		&o.ClientSource, &o.Status, &o.MechanicNotes, &o.CreatedAt, &o.UpdatedAt,
		&client.FirstName, &client.LastName, &vehicle.Plate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan repair order: %w", err)
	}
	client.ID = o.ClientID
	vehicle.ID = o.VehicleID
	o.Client = &client
	o.Vehicle = &vehicle
	return &o, nil
}

// hydrateAssignments carga empleados y etiquetas de las órdenes en dos consultas.
func (r *RepairOrderRepo) hydrateAssignments(orders []*entity.RepairOrder) error {
	if len(orders) == 0 {
		return nil
	}
	ctx := context.Background()
	byID := make(map[int64]*entity.RepairOrder, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT roe.repair_order_id, e.id, e.first_name, e.last_name, e.status
		FROM repair_order_employees roe
		JOIN employees e ON e.id = roe.employee_id
		WHERE roe.repair_order_id = ANY($1)
		ORDER BY e.last_name`, ids)
	if err != nil {
		return fmt.Errorf("hydrate order employees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID int64
		var e entity.Employee
		if err := rows.Scan(&orderID, &e.ID, &e.FirstName, &e.LastName, &e.Status); err != nil {
			return fmt.Errorf("scan order employee: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Employees = append(o.Employees, e)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	trows, err := r.q.Query(ctx, `
		SELECT rot.repair_order_id, t.id, t.name, t.color
		FROM repair_order_tags rot
		JOIN tags t ON t.id = rot.tag_id
		WHERE rot.repair_order_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("hydrate order tags: %w", err)
	}
	defer trows.Close()
	for trows.Next() {
		var orderID int64
		var t entity.Tag
		if err := trows.Scan(&orderID, &t.ID, &t.Name, &t.Color); err != nil {
			return fmt.Errorf("scan order tag: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Tags = append(o.Tags, t)
		}
	}
	return trows.Err()
}

// Create persiste una orden de trabajo.
func (r *RepairOrderRepo) Create(order *entity.RepairOrder) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO repair_orders (title, client_id, vehicle_id, appointment_id, reason,
			client_source, status, mechanic_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		order.Title, order.ClientID, order.VehicleID, order.AppointmentID, order.Reason,
		order.ClientSource, order.Status, order.MechanicNotes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert repair order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con referencias, empleados y etiquetas.
func (r *RepairOrderRepo) GetByID(id int64) (*entity.RepairOrder, error) {
	order, err := scanRepairOrder(r.q.QueryRow(context.Background(),
		repairOrderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateAssignments([]*entity.RepairOrder{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *RepairOrderRepo) collect(rows pgx.Rows) ([]*entity.RepairOrder, error) {
	defer rows.Close()
	var list []*entity.RepairOrder
	for rows.Next() {
		o, err := scanRepairOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.hydrateAssignments(list); err != nil {
		return nil, err
	}
	return list, nil
}

// List lista órdenes con filtros y paginación.
func (r *RepairOrderRepo) List(filter repository.RepairOrderFilter) ([]*entity.RepairOrder, int64, error) {
	where := ` WHERE ($1 = '' OR o.title ILIKE '%' || $1 || '%'
			OR o.reason ILIKE '%' || $1 || '%'
			OR v.plate ILIKE '%' || $1 || '%'
			OR c.last_name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR o.status = $2)
		AND ($3::bigint IS NULL OR o.client_id = $3)
		AND ($4::bigint IS NULL OR o.vehicle_id = $4)
		AND ($5::bigint IS NULL OR EXISTS (
			SELECT 1 FROM repair_order_employees roe
			WHERE roe.repair_order_id = o.id AND roe.employee_id = $5))
		AND ($6::bigint IS NULL OR EXISTS (
			SELECT 1 FROM repair_order_tags rot
			WHERE rot.repair_order_id = o.id AND rot.tag_id = $6))`

	args := []any{filter.Search, filter.Status, filter.ClientID, filter.VehicleID,
		filter.EmployeeID, filter.TagID}

	var total int64
	countQuery := `SELECT COUNT(*) FROM repair_orders o
		JOIN clients c ON c.id = o.client_id
		JOIN vehicles v ON v.id = o.vehicle_id` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count repair orders: %w", err)
	}

	query := repairOrderSelect + where + ` ORDER BY o.created_at DESC LIMIT $7 OFFSET $8`
	rows, err := r.q.Query(context.Background(), query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list repair orders: %w", err)
	}
	list, err := r.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByStatus todas las órdenes agrupadas por estado, para el tablero.
func (r *RepairOrderRepo) ListByStatus() (map[string][]*entity.RepairOrder, error) {
	rows, err := r.q.Query(context.Background(),
		repairOrderSelect+` ORDER BY o.updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list repair orders by status: %w", err)
	}
	list, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]*entity.RepairOrder)
	for _, o := range list {
		out[o.Status] = append(out[o.Status], o)
	}
	return out, nil
}

// ListByVehicle historial de órdenes de un vehículo, más reciente primero.
func (r *RepairOrderRepo) ListByVehicle(vehicleID int64) ([]*entity.RepairOrder, error) {
	rows, err := r.q.Query(context.Background(),
		repairOrderSelect+` WHERE o.vehicle_id = $1 ORDER BY o.created_at DESC`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list repair orders by vehicle: %w", err)
	}
	return r.collect(rows)
}

// ListStale órdenes no entregadas cuya última modificación es anterior a before.
func (r *RepairOrderRepo) ListStale(before time.Time) ([]*entity.RepairOrder, error) {
	rows, err := r.q.Query(context.Background(),
		repairOrderSelect+` WHERE o.status <> $1 AND o.updated_at < $2 ORDER BY o.updated_at ASC`,
		entity.StatusEntregado, before)
	if err != nil {
		return nil, fmt.Errorf("list stale repair orders: %w", err)
	}
	return r.collect(rows)
}

// Update actualiza los datos editables de una orden.
func (r *RepairOrderRepo) Update(order *entity.RepairOrder) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE repair_orders SET title = $2, reason = $3, client_source = $4,
			mechanic_notes = $5, updated_at = NOW()
		WHERE id = $1`,
		order.ID, order.Title, order.Reason, order.ClientSource, order.MechanicNotes)
	if err != nil {
		return fmt.Errorf("update repair order: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado de una orden.
func (r *RepairOrderRepo) UpdateStatus(id int64, status string) error {
	res, err := r.q.Exec(context.Background(),
		`UPDATE repair_orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update repair order status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetEmployees reemplaza la asignación de empleados de una orden.
func (r *RepairOrderRepo) SetEmployees(orderID int64, employeeIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM repair_order_employees WHERE repair_order_id = $1`, orderID); err != nil {
		return fmt.Errorf("clear order employees: %w", err)
	}
	for _, id := range employeeIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO repair_order_employees (repair_order_id, employee_id) VALUES ($1, $2)`,
			orderID, id); err != nil {
			return fmt.Errorf("insert order employee: %w", err)
		}
	}
	return nil
}

// SetTags reemplaza las etiquetas de una orden.
func (r *RepairOrderRepo) SetTags(orderID int64, tagIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM repair_order_tags WHERE repair_order_id = $1`, orderID); err != nil {
		return fmt.Errorf("clear order tags: %w", err)
	}
	for _, id := range tagIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO repair_order_tags (repair_order_id, tag_id) VALUES ($1, $2)`,
			orderID, id); err != nil {
			return fmt.Errorf("insert order tag: %w", err)
		}
	}
	return nil
}

// Delete elimina una orden de trabajo.
func (r *RepairOrderRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM repair_orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete repair order: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus cantidad de órdenes por estado creadas en el rango.
func (r *RepairOrderRepo) CountByStatus(from, to time.Time) (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT status, COUNT(*) FROM repair_orders
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY status`, from, to)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// CountDeliveredByEmployee órdenes entregadas en el rango, por empleado asignado.
func (r *RepairOrderRepo) CountDeliveredByEmployee(from, to time.Time) (map[int64]int64, error) {
	return r.countByEmployee(from, to, true)
}

// CountAssignedByEmployee órdenes creadas en el rango, por empleado asignado.
func (r *RepairOrderRepo) CountAssignedByEmployee(from, to time.Time) (map[int64]int64, error) {
	return r.countByEmployee(from, to, false)
}

func (r *RepairOrderRepo) countByEmployee(from, to time.Time, deliveredOnly bool) (map[int64]int64, error) {
	query := `
		SELECT roe.employee_id, COUNT(*)
		FROM repair_order_employees roe
		JOIN repair_orders o ON o.id = roe.repair_order_id
		WHERE o.created_at >= $1 AND o.created_at < $2`
	if deliveredOnly {
		query += ` AND o.status = '` + entity.StatusEntregado + `'`
	}
	query += ` GROUP BY roe.employee_id`

	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("count orders by employee: %w", err)
	}
	defer rows.Close()
	out := make(map[int64]int64)
	for rows.Next() {
		var employeeID, count int64
		if err := rows.Scan(&employeeID, &count); err != nil {
			return nil, fmt.Errorf("scan employee count: %w", err)
		}
		out[employeeID] = count
	}
	return out, rows.Err()
}
