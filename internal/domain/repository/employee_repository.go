package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// EmployeeFilter criterios de búsqueda del listado de empleados.
type EmployeeFilter struct {
	Search string
	Status string
	RoleID *int64
	Limit  int
	Offset int
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id int64) (*entity.Employee, error)
	GetByIDs(ids []int64) ([]*entity.Employee, error)
	List(filter EmployeeFilter) ([]*entity.Employee, int64, error)
	Update(employee *entity.Employee) error
	Delete(id int64) error
}

// RoleRepository catálogo de roles de empleados.
type RoleRepository interface {
	List() ([]*entity.Role, error)
	GetByIDs(ids []int64) ([]*entity.Role, error)
}
