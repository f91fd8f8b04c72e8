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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, dni, email, phone, address,
	province, city, country, marital_status, children_count, entry_date, status,
	created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.DNI, &e.Email, &e.Phone, &e.Address,
		&e.Province, &e.City, &e.Country, &e.MaritalStatus, &e.ChildrenCount,
		&e.EntryDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return &e, nil
}

// hydrateRoles carga los roles de los empleados indicados en una sola consulta.
func (r *EmployeeRepo) hydrateRoles(employees []*entity.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Employee, len(employees))
	ids := make([]int64, 0, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT er.employee_id, ro.id, ro.name
		FROM employee_roles er
		JOIN roles ro ON ro.id = er.role_id
		WHERE er.employee_id = ANY($1)
		ORDER BY ro.name`, ids)
	if err != nil {
		return fmt.Errorf("hydrate roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var employeeID int64
		var role entity.Role
		if err := rows.Scan(&employeeID, &role.ID, &role.Name); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		if e, ok := byID[employeeID]; ok {
			e.Roles = append(e.Roles, role)
		}
	}
	return rows.Err()
}

func (r *EmployeeRepo) saveRoles(employeeID int64, roles []entity.Role) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM employee_roles WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("clear employee roles: %w", err)
	}
	for _, role := range roles {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO employee_roles (employee_id, role_id) VALUES ($1, $2)`,
			employeeID, role.ID); err != nil {
			return fmt.Errorf("insert employee role: %w", err)
		}
	}
	return nil
}

// Create persiste un empleado con sus roles.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, dni, email, phone, address,
			province, city, country, marital_status, children_count, entry_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		employee.FirstName, employee.LastName, employee.DNI, employee.Email, employee.Phone,
		employee.Address, employee.Province, employee.City, employee.Country,
		employee.MaritalStatus, employee.ChildrenCount, employee.EntryDate, employee.Status,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return r.saveRoles(employee.ID, employee.Roles)
}

// GetByID obtiene un empleado con sus roles.
func (r *EmployeeRepo) GetByID(id int64) (*entity.Employee, error) {
	employee, err := scanEmployee(r.q.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateRoles([]*entity.Employee{employee}); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetByIDs obtiene varios empleados por ID.
func (r *EmployeeRepo) GetByIDs(ids []int64) ([]*entity.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.hydrateRoles(list); err != nil {
		return nil, err
	}
	return list, nil
}

// List lista empleados con búsqueda, filtro por estado o rol y paginación.
func (r *EmployeeRepo) List(filter repository.EmployeeFilter) ([]*entity.Employee, int64, error) {
	where := ` WHERE ($1 = '' OR e.first_name ILIKE '%' || $1 || '%'
			OR e.last_name ILIKE '%' || $1 || '%'
			OR e.dni ILIKE '%' || $1 || '%')
		AND ($2 = '' OR e.status = $2)
		AND ($3::bigint IS NULL OR EXISTS (
			SELECT 1 FROM employee_roles er WHERE er.employee_id = e.id AND er.role_id = $3))`

	var total int64
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM employees e`+where,
		filter.Search, filter.Status, filter.RoleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := `SELECT ` + employeeColumnsPrefixed + ` FROM employees e` + where + `
		ORDER BY e.last_name, e.first_name LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.Search, filter.Status, filter.RoleID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.hydrateRoles(list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

const employeeColumnsPrefixed = `e.id, e.first_name, e.last_name, e.dni, e.email, e.phone,
	e.address, e.province, e.city, e.country, e.marital_status, e.children_count,
	e.entry_date, e.status, e.created_at, e.updated_at`

// Update actualiza un empleado y reemplaza sus roles.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, dni = $4, email = $5,
			phone = $6, address = $7, province = $8, city = $9, country = $10,
			marital_status = $11, children_count = $12, entry_date = $13, status = $14,
			updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.FirstName, employee.LastName, employee.DNI, employee.Email,
		employee.Phone, employee.Address, employee.Province, employee.City, employee.Country,
		employee.MaritalStatus, employee.ChildrenCount, employee.EntryDate, employee.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.saveRoles(employee.ID, employee.Roles)
}

// Delete elimina un empleado.
func (r *EmployeeRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo catálogo de roles.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// List lista los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// GetByIDs obtiene varios roles por ID.
func (r *RoleRepo) GetByIDs(ids []int64) ([]*entity.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM roles WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
