package repository

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// RepairOrderFilter criterios de búsqueda del listado de órdenes de trabajo.
type RepairOrderFilter struct {
	Search     string
	Status     string
	ClientID   *int64
	VehicleID  *int64
	EmployeeID *int64
	TagID      *int64
	Limit      int
	Offset     int
}

// RepairOrderRepository define el puerto de persistencia para RepairOrder.
type RepairOrderRepository interface {
	Create(order *entity.RepairOrder) error
	GetByID(id int64) (*entity.RepairOrder, error)
	List(filter RepairOrderFilter) ([]*entity.RepairOrder, int64, error)
	ListByStatus() (map[string][]*entity.RepairOrder, error)
	ListByVehicle(vehicleID int64) ([]*entity.RepairOrder, error)
	Update(order *entity.RepairOrder) error
	UpdateStatus(id int64, status string) error
	SetEmployees(orderID int64, employeeIDs []int64) error
	SetTags(orderID int64, tagIDs []int64) error
	Delete(id int64) error
	ListStale(before time.Time) ([]*entity.RepairOrder, error)
	CountByStatus(from, to time.Time) (map[string]int64, error)
	CountDeliveredByEmployee(from, to time.Time) (map[int64]int64, error)
	CountAssignedByEmployee(from, to time.Time) (map[int64]int64, error)
}
