package repository

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// EstimateFilter criterios de búsqueda del listado de presupuestos.
type EstimateFilter struct {
	Status        string
	ClientName    string
	Plate         string
	RepairOrderID *int64
	Limit         int
	Offset        int
}

// EstimateRepository define el puerto de persistencia para Estimate.
type EstimateRepository interface {
	Create(estimate *entity.Estimate) error
	GetByID(id int64) (*entity.Estimate, error)
	GetByRepairOrder(repairOrderID int64) (*entity.Estimate, error)
	List(filter EstimateFilter) ([]*entity.Estimate, int64, error)
	Update(estimate *entity.Estimate) error
	UpdateStatus(id int64, status string) error
	ReplaceItems(estimateID int64, items []entity.EstimateItem) error
	Delete(id int64) error
	CountByStatus(from, to time.Time) (map[string]int64, error)
	ListPendingOlderThan(before time.Time) ([]*entity.Estimate, error)
}
