package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// DashboardConfigRepository preferencias de visualización del panel.
type DashboardConfigRepository interface {
	Get() (*entity.DashboardConfig, error)
	Save(config *entity.DashboardConfig) error
}
