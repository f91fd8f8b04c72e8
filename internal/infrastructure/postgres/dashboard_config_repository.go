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

var _ repository.DashboardConfigRepository = (*DashboardConfigRepo)(nil)

// DashboardConfigRepo configuración del panel (fila singleton).
type DashboardConfigRepo struct {
	q Querier
}

// NewDashboardConfigRepository construye el adaptador.
func NewDashboardConfigRepository(q Querier) *DashboardConfigRepo {
	return &DashboardConfigRepo{q: q}
}

// Get obtiene la configuración del panel.
func (r *DashboardConfigRepo) Get() (*entity.DashboardConfig, error) {
	var cfg entity.DashboardConfig
	err := r.q.QueryRow(context.Background(), `
		SELECT id, stale_threshold_days, updated_at
		FROM dashboard_config WHERE id = 1`).
		Scan(&cfg.ID, &cfg.StaleThresholdDays, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get dashboard config: %w", err)
	}
	return &cfg, nil
}

// Save guarda la configuración del panel.
func (r *DashboardConfigRepo) Save(config *entity.DashboardConfig) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO dashboard_config (id, stale_threshold_days)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET stale_threshold_days = $1, updated_at = NOW()`,
		config.StaleThresholdDays)
	if err != nil {
		return fmt.Errorf("save dashboard config: %w", err)
	}
	return nil
}
