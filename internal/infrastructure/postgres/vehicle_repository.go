package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleSelect = `
	SELECT v.id, v.client_id, v.plate, v.chassis_number, v.engine_number, v.brand_id,
		v.model, v.year, v.vehicle_type_id, v.observations, v.created_at, v.updated_at,
		c.first_name, c.last_name, COALESCE(b.name, '')
	FROM vehicles v
	JOIN clients c ON c.id = v.client_id
	LEFT JOIN brands b ON b.id = v.brand_id`

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	var client entity.Client
	var brandName string
	err := row.Scan(
		&v.ID, &v.ClientID, &v.Plate, &v.ChassisNumber, &v.EngineNumber, &v.BrandID,
		&v.Model, &v.Year, &v.VehicleTypeID, &v.Observations, &v.CreatedAt, &v.UpdatedAt,
		&client.FirstName, &client.LastName, &brandName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}
	client.ID = v.ClientID
	v.Client = &client
	if brandName != "" && v.BrandID != nil {
		v.Brand = &entity.Brand{ID: *v.BrandID, Name: brandName}
	}
	return &v, nil
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (client_id, plate, chassis_number, engine_number, brand_id,
			model, year, vehicle_type_id, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		vehicle.ClientID, vehicle.Plate, vehicle.ChassisNumber, vehicle.EngineNumber,
		vehicle.BrandID, vehicle.Model, vehicle.Year, vehicle.VehicleTypeID, vehicle.Observations,
	).Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo con cliente y marca hidratados.
func (r *VehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	return scanVehicle(r.q.QueryRow(context.Background(), vehicleSelect+` WHERE v.id = $1`, id))
}

// GetByPlate obtiene un vehículo por patente.
func (r *VehicleRepo) GetByPlate(plate string) (*entity.Vehicle, error) {
	return scanVehicle(r.q.QueryRow(context.Background(), vehicleSelect+` WHERE v.plate = $1`, plate))
}

// List lista vehículos con búsqueda por patente, modelo o cliente.
func (r *VehicleRepo) List(filter repository.VehicleFilter) ([]*entity.Vehicle, int64, error) {
	where := ` WHERE ($1 = '' OR v.plate ILIKE '%' || $1 || '%'
			OR v.model ILIKE '%' || $1 || '%'
			OR c.first_name ILIKE '%' || $1 || '%'
			OR c.last_name ILIKE '%' || $1 || '%')
		AND ($2::bigint IS NULL OR v.client_id = $2)
		AND ($3::bigint IS NULL OR v.brand_id = $3)`

	var total int64
	countQuery := `SELECT COUNT(*) FROM vehicles v JOIN clients c ON c.id = v.client_id` + where
	if err := r.q.QueryRow(context.Background(), countQuery,
		filter.Search, filter.ClientID, filter.BrandID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vehicles: %w", err)
	}

	query := vehicleSelect + where + ` ORDER BY v.plate LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.Search, filter.ClientID, filter.BrandID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// ListByClient lista los vehículos de un cliente.
func (r *VehicleRepo) ListByClient(clientID int64) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(context.Background(),
		vehicleSelect+` WHERE v.client_id = $1 ORDER BY v.plate`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles by client: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza un vehículo.
func (r *VehicleRepo) Update(vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET plate = $2, chassis_number = $3, engine_number = $4,
			brand_id = $5, model = $6, year = $7, vehicle_type_id = $8,
			observations = $9, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		vehicle.ID, vehicle.Plate, vehicle.ChassisNumber, vehicle.EngineNumber,
		vehicle.BrandID, vehicle.Model, vehicle.Year, vehicle.VehicleTypeID, vehicle.Observations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo.
func (r *VehicleRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo catálogo de marcas.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create agrega una marca.
func (r *BrandRepo) Create(brand *entity.Brand) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO brands (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		brand.Name).Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// List lista las marcas por nombre.
func (r *BrandRepo) List() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina una marca.
func (r *BrandRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.VehicleTypeRepository = (*VehicleTypeRepo)(nil)

// VehicleTypeRepo catálogo fijo de tipos de vehículos.
type VehicleTypeRepo struct {
	q Querier
}

// NewVehicleTypeRepository construye el adaptador.
func NewVehicleTypeRepository(q Querier) *VehicleTypeRepo {
	return &VehicleTypeRepo{q: q}
}

// List lista los tipos de vehículos.
func (r *VehicleTypeRepo) List() ([]*entity.VehicleType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM vehicle_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vehicle types: %w", err)
	}
	defer rows.Close()

	var list []*entity.VehicleType
	for rows.Next() {
		var t entity.VehicleType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan vehicle type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
