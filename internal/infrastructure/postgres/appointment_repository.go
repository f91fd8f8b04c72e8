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

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentSelect = `
	SELECT a.id, a.title, a.client_id, a.vehicle_id, a.purpose, a.start_time, a.end_time,
		a.vehicle_delivery_method, a.vehicle_arrived_at, a.vehicle_picked_up_at, a.client_arrived,
		a.created_at, a.updated_at,
		COALESCE(c.first_name, ''), COALESCE(c.last_name, ''), COALESCE(v.plate, '')
	FROM appointments a
	LEFT JOIN clients c ON c.id = a.client_id
	LEFT JOIN vehicles v ON v.id = a.vehicle_id`

// AppointmentRepo implementación de AppointmentRepository (usable con pool o tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var client entity.Client
	var vehicle entity.Vehicle
	err := row.Scan(
		&a.ID, &a.Title, &a.ClientID, &a.VehicleID, &a.Purpose, &a.StartTime, &a.EndTime,
		&a.VehicleDeliveryMethod, &a.VehicleArrivedAt, &a.VehiclePickedUpAt, &a.ClientArrived,
		&a.CreatedAt, &a.UpdatedAt,
		&client.FirstName, &client.LastName, &vehicle.Plate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	if a.ClientID != nil {
		client.ID = *a.ClientID
		a.Client = &client
	}
	if a.VehicleID != nil {
		vehicle.ID = *a.VehicleID
		a.Vehicle = &vehicle
	}
	return &a, nil
}

// hydrateAssignments carga empleados y etiquetas de las citas en dos consultas.
func (r *AppointmentRepo) hydrateAssignments(appointments []*entity.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}
	ctx := context.Background()
	byID := make(map[int64]*entity.Appointment, len(appointments))
	ids := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rows, err := r.q.Query(ctx, `
		SELECT ae.appointment_id, e.id, e.first_name, e.last_name, e.status
		FROM appointment_employees ae
		JOIN employees e ON e.id = ae.employee_id
		WHERE ae.appointment_id = ANY($1)
		ORDER BY e.last_name`, ids)
	if err != nil {
		return fmt.Errorf("hydrate appointment employees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var appointmentID int64
		var e entity.Employee
		if err := rows.Scan(&appointmentID, &e.ID, &e.FirstName, &e.LastName, &e.Status); err != nil {
			return fmt.Errorf("scan appointment employee: %w", err)
		}
		if a, ok := byID[appointmentID]; ok {
			a.Employees = append(a.Employees, e)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	trows, err := r.q.Query(ctx, `
		SELECT atg.appointment_id, t.id, t.name, t.color
		FROM appointment_tags atg
		JOIN tags t ON t.id = atg.tag_id
		WHERE atg.appointment_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("hydrate appointment tags: %w", err)
	}
	defer trows.Close()
	for trows.Next() {
		var appointmentID int64
		var t entity.Tag
		if err := trows.Scan(&appointmentID, &t.ID, &t.Name, &t.Color); err != nil {
			return fmt.Errorf("scan appointment tag: %w", err)
		}
		if a, ok := byID[appointmentID]; ok {
			a.Tags = append(a.Tags, t)
		}
	}
	return trows.Err()
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO appointments (title, client_id, vehicle_id, purpose, start_time, end_time,
			vehicle_delivery_method, vehicle_arrived_at, vehicle_picked_up_at, client_arrived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		appointment.Title, appointment.ClientID, appointment.VehicleID, appointment.Purpose,
		appointment.StartTime, appointment.EndTime, appointment.VehicleDeliveryMethod,
		appointment.VehicleArrivedAt, appointment.VehiclePickedUpAt, appointment.ClientArrived,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita con cliente, vehículo y asignaciones.
func (r *AppointmentRepo) GetByID(id int64) (*entity.Appointment, error) {
	a, err := scanAppointment(r.q.QueryRow(context.Background(),
		appointmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateAssignments([]*entity.Appointment{a}); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepo) collect(rows pgx.Rows) ([]*entity.Appointment, error) {
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.hydrateAssignments(list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListOverlapping citas que pisan el rango semiabierto [from, to), ordenadas
// por hora de inicio. Con employeeID filtra por empleado asignado.
func (r *AppointmentRepo) ListOverlapping(from, to time.Time, employeeID *int64) ([]*entity.Appointment, error) {
	query := appointmentSelect + ` WHERE a.start_time < $2 AND a.end_time > $1`
	args := []any{from, to}
	if employeeID != nil {
		query += ` AND EXISTS (
			SELECT 1 FROM appointment_employees ae
			WHERE ae.appointment_id = a.id AND ae.employee_id = $3)`
		args = append(args, *employeeID)
	}
	rows, err := r.q.Query(context.Background(), query+` ORDER BY a.start_time`, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return r.collect(rows)
}

// ListByClient citas de un cliente, más reciente primero.
func (r *AppointmentRepo) ListByClient(clientID int64) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(),
		appointmentSelect+` WHERE a.client_id = $1 ORDER BY a.start_time DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by client: %w", err)
	}
	return r.collect(rows)
}

// Update actualiza una cita.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE appointments SET title = $2, purpose = $3, start_time = $4, end_time = $5,
			vehicle_delivery_method = $6, vehicle_arrived_at = $7, vehicle_picked_up_at = $8,
			client_arrived = $9, updated_at = NOW()
		WHERE id = $1`,
		appointment.ID, appointment.Title, appointment.Purpose,
		appointment.StartTime, appointment.EndTime, appointment.VehicleDeliveryMethod,
		appointment.VehicleArrivedAt, appointment.VehiclePickedUpAt, appointment.ClientArrived)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetEmployees reemplaza los empleados asignados a una cita.
func (r *AppointmentRepo) SetEmployees(appointmentID int64, employeeIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM appointment_employees WHERE appointment_id = $1`, appointmentID); err != nil {
		return fmt.Errorf("clear appointment employees: %w", err)
	}
	for _, id := range employeeIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO appointment_employees (appointment_id, employee_id) VALUES ($1, $2)`,
			appointmentID, id); err != nil {
			return fmt.Errorf("insert appointment employee: %w", err)
		}
	}
	return nil
}

// SetTags reemplaza las etiquetas de una cita.
func (r *AppointmentRepo) SetTags(appointmentID int64, tagIDs []int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM appointment_tags WHERE appointment_id = $1`, appointmentID); err != nil {
		return fmt.Errorf("clear appointment tags: %w", err)
	}
	for _, id := range tagIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO appointment_tags (appointment_id, tag_id) VALUES ($1, $2)`,
			appointmentID, id); err != nil {
			return fmt.Errorf("insert appointment tag: %w", err)
		}
	}
	return nil
}

// Delete cancela una cita.
func (r *AppointmentRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountBetween cantidad de citas que pisan el rango semiabierto [from, to).
func (r *AppointmentRepo) CountBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM appointments WHERE start_time < $2 AND end_time > $1`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return count, nil
}

var _ repository.CalendarConfigRepository = (*CalendarConfigRepo)(nil)

// CalendarConfigRepo configuración única del calendario (fila singleton).
type CalendarConfigRepo struct {
	q Querier
}

// NewCalendarConfigRepository construye el adaptador.
func NewCalendarConfigRepository(q Querier) *CalendarConfigRepo {
	return &CalendarConfigRepo{q: q}
}

// Get obtiene la configuración del calendario.
func (r *CalendarConfigRepo) Get() (*entity.CalendarConfig, error) {
	var cfg entity.CalendarConfig
	err := r.q.QueryRow(context.Background(), `
		SELECT id, default_duration_minutes, start_time, end_time, updated_at
		FROM calendar_config WHERE id = 1`).
		Scan(&cfg.ID, &cfg.DefaultAppointmentDurationMinutes, &cfg.StartTime, &cfg.EndTime,
			&cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get calendar config: %w", err)
	}
	return &cfg, nil
}

// Save guarda la configuración del calendario.
func (r *CalendarConfigRepo) Save(config *entity.CalendarConfig) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO calendar_config (id, default_duration_minutes, start_time, end_time)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET default_duration_minutes = $1, start_time = $2,
			end_time = $3, updated_at = NOW()`,
		config.DefaultAppointmentDurationMinutes, config.StartTime, config.EndTime)
	if err != nil {
		return fmt.Errorf("save calendar config: %w", err)
	}
	return nil
}
