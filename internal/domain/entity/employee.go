package entity

import "time"

// Estados de empleado.
const (
	EmployeeStatusActivo   = "ACTIVO"
	EmployeeStatusInactivo = "INACTIVO"
)

// Role rol de un empleado dentro del taller (mecánico, administrativo, etc.).
type Role struct {
	ID   int64
	Name string
}

// Employee representa un empleado del taller.
type Employee struct {
	ID            int64
	FirstName     string
	LastName      string
	DNI           string
	Email         string
	Phone         string
	Address       string
	Province      string
	City          string
	Country       string
	MaritalStatus string
	ChildrenCount int
	EntryDate     *time.Time
	Status        string
	Roles         []Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName nombre y apellido.
func (e *Employee) FullName() string {
	if e == nil {
		return ""
	}
	return e.FirstName + " " + e.LastName
}

// IsValidEmployeeStatus valida la enumeración de estados de empleado.
func IsValidEmployeeStatus(s string) bool {
	return s == EmployeeStatusActivo || s == EmployeeStatusInactivo
}
