package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	FirstName     string     `json:"firstName" validate:"required,min=1,max=100"`
	LastName      string     `json:"lastName" validate:"required,min=1,max=100"`
	DNI           string     `json:"dni" validate:"required,max=20"`
	Email         string     `json:"email" validate:"omitempty,email"`
	Phone         string     `json:"phone" validate:"max=30"`
	Address       string     `json:"address"`
	Province      string     `json:"province"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	MaritalStatus string     `json:"maritalStatus"`
	ChildrenCount int        `json:"childrenCount" validate:"min=0"`
	EntryDate     *time.Time `json:"entryDate"`
	RoleIDs       []int64    `json:"roleIds"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	FirstName     *string    `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName      *string    `json:"lastName"`
	DNI           *string    `json:"dni"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone"`
	Address       *string    `json:"address"`
	Province      *string    `json:"province"`
	City          *string    `json:"city"`
	Country       *string    `json:"country"`
	MaritalStatus *string    `json:"maritalStatus"`
	ChildrenCount *int       `json:"childrenCount" validate:"omitempty,min=0"`
	EntryDate     *time.Time `json:"entryDate"`
	Status        *string    `json:"status"`
	RoleIDs       []int64    `json:"roleIds"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeResponse salida de un empleado con sus roles.
type EmployeeResponse struct {
	ID            int64          `json:"id"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	FullName      string         `json:"fullName"`
	DNI           string         `json:"dni"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Province      string         `json:"province,omitempty"`
	City          string         `json:"city,omitempty"`
	Country       string         `json:"country,omitempty"`
	MaritalStatus string         `json:"maritalStatus,omitempty"`
	ChildrenCount int            `json:"childrenCount"`
	EntryDate     *time.Time     `json:"entryDate,omitempty"`
	Status        string         `json:"status"`
	Roles         []RoleResponse `json:"roles"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// NewEmployeeResponse proyecta la entidad al DTO de salida.
func NewEmployeeResponse(e *entity.Employee) EmployeeResponse {
	roles := make([]RoleResponse, 0, len(e.Roles))
	for _, r := range e.Roles {
		roles = append(roles, RoleResponse{ID: r.ID, Name: r.Name})
	}
	return EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		DNI:           e.DNI,
		Email:         e.Email,
		Phone:         e.Phone,
		Address:       e.Address,
		Province:      e.Province,
		City:          e.City,
		Country:       e.Country,
		MaritalStatus: e.MaritalStatus,
		ChildrenCount: e.ChildrenCount,
		EntryDate:     e.EntryDate,
		Status:        e.Status,
		Roles:         roles,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// NewEmployeeResponses proyecta una lista de entidades.
func NewEmployeeResponses(employees []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
