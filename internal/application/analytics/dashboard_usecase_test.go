package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
	"github.com/autotech/taller-api/internal/domain/schedule"
)

// Fakes mínimos: embeben la interfaz y sobreescriben solo lo que el
// resumen consulta.

type fakeSummaryOrders struct {
	repository.RepairOrderRepository
	stale      []*entity.RepairOrder
	staleSince time.Time
}

func (f *fakeSummaryOrders) CountByStatus(from, to time.Time) (map[string]int64, error) {
	return map[string]int64{entity.StatusReparacion: 2, entity.StatusEntregado: 1}, nil
}

func (f *fakeSummaryOrders) ListStale(before time.Time) ([]*entity.RepairOrder, error) {
	f.staleSince = before
	return f.stale, nil
}

type fakeSummaryEstimates struct {
	repository.EstimateRepository
	pending []*entity.Estimate
}

func (f *fakeSummaryEstimates) CountByStatus(from, to time.Time) (map[string]int64, error) {
	return map[string]int64{entity.EstimatePendiente: 3}, nil
}

func (f *fakeSummaryEstimates) ListPendingOlderThan(before time.Time) ([]*entity.Estimate, error) {
	return f.pending, nil
}

type fakeSummaryInvoices struct {
	repository.InvoiceRepository
}

func (f *fakeSummaryInvoices) ListUnpaid() ([]*entity.Invoice, error) { return nil, nil }

type fakeSummaryPayments struct {
	repository.PaymentRepository
}

func (f *fakeSummaryPayments) SumCollectedBetween(from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeSummaryClients struct {
	repository.ClientRepository
}

func (f *fakeSummaryClients) CountCreatedBetween(from, to time.Time) (int64, error) {
	return 0, nil
}

type fakeSummaryAppointments struct {
	repository.AppointmentRepository
}

func (f *fakeSummaryAppointments) CountBetween(from, to time.Time) (int64, error) {
	return 0, nil
}

type fakeConfigRepo struct {
	repository.DashboardConfigRepository
	cfg   *entity.DashboardConfig
	saved *entity.DashboardConfig
}

func (f *fakeConfigRepo) Get() (*entity.DashboardConfig, error) {
	if f.cfg == nil {
		return nil, domain.ErrNotFound
	}
	return f.cfg, nil
}

func (f *fakeConfigRepo) Save(cfg *entity.DashboardConfig) error {
	f.saved = cfg
	return nil
}

func newDashboardFixture(cfg *entity.DashboardConfig) (*DashboardUseCase, *fakeSummaryOrders, *fakeSummaryEstimates, *fakeConfigRepo) {
	orders := &fakeSummaryOrders{}
	estimates := &fakeSummaryEstimates{}
	config := &fakeConfigRepo{cfg: cfg}
	uc := NewDashboardUseCase(
		orders,
		estimates,
		&fakeSummaryInvoices{},
		&fakeSummaryPayments{},
		&fakeSummaryClients{},
		&fakeSummaryAppointments{},
		nil,
		config,
	)
	return uc, orders, estimates, config
}

func TestSummaryIncludesStaleAlerts(t *testing.T) {
	uc, orders, estimates, _ := newDashboardFixture(&entity.DashboardConfig{ID: 1, StaleThresholdDays: 7})

	now := time.Now()
	orders.stale = []*entity.RepairOrder{{
		ID:        4,
		Title:     "Cambio de embrague",
		Status:    entity.StatusEsperandoRepuestos,
		UpdatedAt: now.AddDate(0, 0, -10),
		Client:    &entity.Client{FirstName: "Ana", LastName: "Ruiz"},
		Vehicle:   &entity.Vehicle{Plate: "AB123CD"},
	}}
	estimates.pending = []*entity.Estimate{{
		ID:        9,
		Status:    entity.EstimatePendiente,
		CreatedAt: now.AddDate(0, 0, -12),
		Items: []entity.EstimateItem{
			{Description: "Mano de obra", Quantity: 1, UnitPrice: decimal.NewFromInt(500), IsService: true},
		},
		Client:  &entity.Client{FirstName: "Ana", LastName: "Ruiz"},
		Vehicle: &entity.Vehicle{Plate: "AB123CD"},
	}}

	r, err := schedule.Resolve(schedule.ViewMonth, now)
	require.NoError(t, err)
	summary, err := uc.Summary(r)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.StaleThresholdDays)
	// El corte que recibe el repositorio es ahora menos el umbral.
	assert.WithinDuration(t, now.AddDate(0, 0, -7), orders.staleSince, time.Minute)

	require.Len(t, summary.StaleOrders, 1)
	assert.Equal(t, int64(4), summary.StaleOrders[0].OrderID)
	assert.Equal(t, "Ana Ruiz", summary.StaleOrders[0].ClientName)
	assert.Equal(t, "AB123CD", summary.StaleOrders[0].Plate)
	assert.Equal(t, 10, summary.StaleOrders[0].DaysStale)

	require.Len(t, summary.OldPendingEstimates, 1)
	assert.Equal(t, int64(9), summary.OldPendingEstimates[0].EstimateID)
	assert.Equal(t, 12, summary.OldPendingEstimates[0].DaysOld)
	assert.True(t, decimal.NewFromInt(500).Equal(summary.OldPendingEstimates[0].Total))
}

func TestSummaryDefaultsThresholdWithoutConfig(t *testing.T) {
	uc, orders, _, _ := newDashboardFixture(nil)

	now := time.Now()
	r, err := schedule.Resolve(schedule.ViewDay, now)
	require.NoError(t, err)
	summary, err := uc.Summary(r)
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultStaleThresholdDays, summary.StaleThresholdDays)
	assert.WithinDuration(t, now.AddDate(0, 0, -entity.DefaultStaleThresholdDays), orders.staleSince, time.Minute)
	assert.Empty(t, summary.StaleOrders)
	assert.Empty(t, summary.OldPendingEstimates)
}

func TestSaveConfigRejectsNonPositiveThreshold(t *testing.T) {
	uc, _, _, config := newDashboardFixture(nil)

	err := uc.SaveConfig(&entity.DashboardConfig{StaleThresholdDays: 0})
	assert.True(t, domain.IsBusiness(err))
	assert.Nil(t, config.saved)

	require.NoError(t, uc.SaveConfig(&entity.DashboardConfig{StaleThresholdDays: 3}))
	require.NotNil(t, config.saved)
	assert.Equal(t, 3, config.saved.StaleThresholdDays)
}
