// Package analytics arma los reportes del panel del taller: resumen
// operativo, reporte financiero y productividad por empleado.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	domainbilling "github.com/autotech/taller-api/internal/domain/billing"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
	"github.com/autotech/taller-api/internal/domain/schedule"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase agrega datos de varias fuentes para los reportes del panel.
type DashboardUseCase struct {
	orders       repository.RepairOrderRepository
	estimates    repository.EstimateRepository
	invoices     repository.InvoiceRepository
	payments     repository.PaymentRepository
	clients      repository.ClientRepository
	appointments repository.AppointmentRepository
	employees    repository.EmployeeRepository
	config       repository.DashboardConfigRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orders repository.RepairOrderRepository,
	estimates repository.EstimateRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	clients repository.ClientRepository,
	appointments repository.AppointmentRepository,
	employees repository.EmployeeRepository,
	config repository.DashboardConfigRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		orders:       orders,
		estimates:    estimates,
		invoices:     invoices,
		payments:     payments,
		clients:      clients,
		appointments: appointments,
		employees:    employees,
		config:       config,
	}
}

// ResolveRange interpreta la vista (day, week, month) alrededor de ref.
func (uc *DashboardUseCase) ResolveRange(view string, ref time.Time) (schedule.Range, error) {
	r, err := schedule.Resolve(view, ref)
	if err != nil {
		return schedule.Range{}, domain.NewBusinessError(err.Error())
	}
	return r, nil
}

// Summary resumen operativo del rango indicado.
func (uc *DashboardUseCase) Summary(r schedule.Range) (*entity.DashboardSummary, error) {
	byStatus, err := uc.orders.CountByStatus(r.From, r.To)
	if err != nil {
		return nil, err
	}
	var inProgress, delivered int64
	for status, count := range byStatus {
		if entity.IsTerminalRepairOrderStatus(status) {
			delivered += count
		} else {
			inProgress += count
		}
	}
	estimatesByStatus, err := uc.estimates.CountByStatus(r.From, r.To)
	if err != nil {
		return nil, err
	}
	unpaid, err := uc.invoices.ListUnpaid()
	if err != nil {
		return nil, err
	}
	revenue, err := uc.payments.SumCollectedBetween(r.From, r.To)
	if err != nil {
		return nil, err
	}
	newClients, err := uc.clients.CountCreatedBetween(r.From, r.To)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	today, err := schedule.Resolve(schedule.ViewDay, now)
	if err != nil {
		return nil, err
	}
	appointmentsToday, err := uc.appointments.CountBetween(today.From, today.To)
	if err != nil {
		return nil, err
	}
	thresholdDays := uc.staleThresholdDays()
	cutoff := now.AddDate(0, 0, -thresholdDays)
	staleOrders, err := uc.orders.ListStale(cutoff)
	if err != nil {
		return nil, err
	}
	oldPending, err := uc.estimates.ListPendingOlderThan(cutoff)
	if err != nil {
		return nil, err
	}
	return &entity.DashboardSummary{
		OrdersInProgress:    inProgress,
		OrdersDelivered:     delivered,
		AppointmentsToday:   appointmentsToday,
		PendingEstimates:    estimatesByStatus[entity.EstimatePendiente],
		UnpaidInvoices:      int64(len(unpaid)),
		RevenueInRange:      revenue,
		NewClientsInRange:   newClients,
		OrdersByStatus:      byStatus,
		StaleThresholdDays:  thresholdDays,
		StaleOrders:         staleOrderAlerts(staleOrders, now),
		OldPendingEstimates: pendingEstimateAlerts(oldPending, now),
	}, nil
}

// staleThresholdDays umbral configurado, o el valor por defecto si aún no
// hay configuración guardada.
func (uc *DashboardUseCase) staleThresholdDays() int {
	cfg, err := uc.config.Get()
	if err != nil || cfg.StaleThresholdDays < 1 {
		return entity.DefaultStaleThresholdDays
	}
	return cfg.StaleThresholdDays
}

func daysSince(t, now time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}

func staleOrderAlerts(orders []*entity.RepairOrder, now time.Time) []entity.StaleOrderAlert {
	alerts := make([]entity.StaleOrderAlert, 0, len(orders))
	for _, o := range orders {
		alert := entity.StaleOrderAlert{
			OrderID:   o.ID,
			Title:     o.Title,
			Status:    o.Status,
			DaysStale: daysSince(o.UpdatedAt, now),
		}
		if o.Client != nil {
			alert.ClientName = o.Client.FullName()
		}
		if o.Vehicle != nil {
			alert.Plate = o.Vehicle.Plate
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

func pendingEstimateAlerts(estimates []*entity.Estimate, now time.Time) []entity.PendingEstimateAlert {
	alerts := make([]entity.PendingEstimateAlert, 0, len(estimates))
	for _, e := range estimates {
		totals := domainbilling.ComputeTotal(e.Subtotal(), e.DiscountPercent, e.TaxPercent)
		alert := entity.PendingEstimateAlert{
			EstimateID: e.ID,
			Total:      totals.Total,
			DaysOld:    daysSince(e.CreatedAt, now),
		}
		if e.Client != nil {
			alert.ClientName = e.Client.FullName()
		}
		if e.Vehicle != nil {
			alert.Plate = e.Vehicle.Plate
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

// debtBuckets clasifica las facturas impagas por antigüedad desde su emisión.
func debtBuckets(unpaid []*entity.Invoice, now time.Time) []entity.DebtAgingBucket {
	buckets := []entity.DebtAgingBucket{
		{Label: "0-30", Amount: decimal.Zero},
		{Label: "31-60", Amount: decimal.Zero},
		{Label: "61-90", Amount: decimal.Zero},
		{Label: "90+", Amount: decimal.Zero},
	}
	for _, inv := range unpaid {
		days := int(now.Sub(inv.IssuedAt).Hours() / 24)
		idx := 3
		switch {
		case days <= 30:
			idx = 0
		case days <= 60:
			idx = 1
		case days <= 90:
			idx = 2
		}
		buckets[idx].Count++
		buckets[idx].Amount = buckets[idx].Amount.Add(inv.Remaining())
	}
	return buckets
}

// Financial reporte financiero: facturado, cobrado, deuda por antigüedad y
// tasa de conversión de presupuestos.
func (uc *DashboardUseCase) Financial(r schedule.Range) (*entity.FinancialReport, error) {
	invoiced, err := uc.invoices.SumInvoicedBetween(r.From, r.To)
	if err != nil {
		return nil, err
	}
	collected, err := uc.payments.SumCollectedBetween(r.From, r.To)
	if err != nil {
		return nil, err
	}
	unpaid, err := uc.invoices.ListUnpaid()
	if err != nil {
		return nil, err
	}
	outstanding := decimal.Zero
	for _, inv := range unpaid {
		outstanding = outstanding.Add(inv.Remaining())
	}
	estimatesByStatus, err := uc.estimates.CountByStatus(r.From, r.To)
	if err != nil {
		return nil, err
	}
	var issued int64
	for _, count := range estimatesByStatus {
		issued += count
	}
	accepted := estimatesByStatus[entity.EstimateAceptado]
	conversion := decimal.Zero
	if issued > 0 {
		conversion = decimal.NewFromInt(accepted).Mul(hundred).
			Div(decimal.NewFromInt(issued)).Round(2)
	}
	byMethod, err := uc.payments.SumByMethodBetween(r.From, r.To)
	if err != nil {
		return nil, err
	}
	return &entity.FinancialReport{
		From:              r.From,
		To:                r.To,
		Invoiced:          invoiced,
		Collected:         collected,
		Outstanding:       outstanding,
		DebtAging:         debtBuckets(unpaid, time.Now()),
		EstimatesIssued:   issued,
		EstimatesAccepted: accepted,
		ConversionRate:    conversion,
		RevenueByMethod:   byMethod,
	}, nil
}

// Productivity reporte de productividad por empleado activo.
func (uc *DashboardUseCase) Productivity(r schedule.Range) (*entity.ProductivityReport, error) {
	assigned, err := uc.orders.CountAssignedByEmployee(r.From, r.To)
	if err != nil {
		return nil, err
	}
	delivered, err := uc.orders.CountDeliveredByEmployee(r.From, r.To)
	if err != nil {
		return nil, err
	}
	employees, _, err := uc.employees.List(repository.EmployeeFilter{
		Status: entity.EmployeeStatusActivo,
		Limit:  1000,
	})
	if err != nil {
		return nil, err
	}
	var totalDelivered int64
	for _, count := range delivered {
		totalDelivered += count
	}
	report := &entity.ProductivityReport{From: r.From, To: r.To}
	for _, e := range employees {
		share := decimal.Zero
		if totalDelivered > 0 {
			share = decimal.NewFromInt(delivered[e.ID]).Mul(hundred).
				Div(decimal.NewFromInt(totalDelivered)).Round(2)
		}
		report.Employees = append(report.Employees, entity.EmployeeProductivity{
			EmployeeID:      e.ID,
			EmployeeName:    e.FullName(),
			OrdersAssigned:  assigned[e.ID],
			OrdersDelivered: delivered[e.ID],
			RevenueShare:    share,
		})
	}
	return report, nil
}

// SummaryDTO proyección del resumen para la capa HTTP.
func (uc *DashboardUseCase) SummaryDTO(r schedule.Range) (*dto.DashboardSummaryResponse, error) {
	summary, err := uc.Summary(r)
	if err != nil {
		return nil, err
	}
	resp := dto.NewDashboardSummaryResponse(summary)
	return &resp, nil
}

// FinancialDTO proyección del reporte financiero para la capa HTTP.
func (uc *DashboardUseCase) FinancialDTO(r schedule.Range) (*dto.FinancialReportResponse, error) {
	report, err := uc.Financial(r)
	if err != nil {
		return nil, err
	}
	resp := dto.NewFinancialReportResponse(report)
	return &resp, nil
}

// ProductivityDTO proyección del reporte de productividad para la capa HTTP.
func (uc *DashboardUseCase) ProductivityDTO(r schedule.Range) (*dto.ProductivityReportResponse, error) {
	report, err := uc.Productivity(r)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProductivityReportResponse(report)
	return &resp, nil
}

// GetConfig configuración del panel; si no hay fila guardada devuelve el
// umbral por defecto.
func (uc *DashboardUseCase) GetConfig() (*entity.DashboardConfig, error) {
	cfg, err := uc.config.Get()
	if err == domain.ErrNotFound {
		return &entity.DashboardConfig{StaleThresholdDays: entity.DefaultStaleThresholdDays}, nil
	}
	return cfg, err
}

// SaveConfig guarda la configuración del panel.
func (uc *DashboardUseCase) SaveConfig(cfg *entity.DashboardConfig) error {
	if cfg.StaleThresholdDays < 1 {
		return domain.NewBusinessError("el umbral de alerta debe ser de al menos un día")
	}
	return uc.config.Save(cfg)
}
