package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// StaleOrderAlertDTO orden estancada más días que el umbral configurado.
type StaleOrderAlertDTO struct {
	OrderID    int64  `json:"orderId"`
	Title      string `json:"title"`
	ClientName string `json:"clientName"`
	Plate      string `json:"plate"`
	Status     string `json:"status"`
	DaysStale  int    `json:"daysStale"`
}

// PendingEstimateAlertDTO presupuesto sin respuesta más días que el umbral.
type PendingEstimateAlertDTO struct {
	EstimateID int64           `json:"estimateId"`
	ClientName string          `json:"clientName"`
	Plate      string          `json:"plate"`
	Total      decimal.Decimal `json:"total"`
	DaysOld    int             `json:"daysOld"`
}

// DashboardSummaryResponse resumen operativo del panel.
type DashboardSummaryResponse struct {
	OrdersInProgress    int64                     `json:"ordersInProgress"`
	OrdersDelivered     int64                     `json:"ordersDelivered"`
	AppointmentsToday   int64                     `json:"appointmentsToday"`
	PendingEstimates    int64                     `json:"pendingEstimates"`
	UnpaidInvoices      int64                     `json:"unpaidInvoices"`
	RevenueInRange      decimal.Decimal           `json:"revenueInRange"`
	NewClientsInRange   int64                     `json:"newClientsInRange"`
	OrdersByStatus      map[string]int64          `json:"ordersByStatus"`
	StaleThresholdDays  int                       `json:"staleThresholdDays"`
	StaleOrders         []StaleOrderAlertDTO      `json:"staleOrders"`
	OldPendingEstimates []PendingEstimateAlertDTO `json:"oldPendingEstimates"`
}

// NewDashboardSummaryResponse proyecta el resumen de dominio.
func NewDashboardSummaryResponse(s *entity.DashboardSummary) DashboardSummaryResponse {
	stale := make([]StaleOrderAlertDTO, 0, len(s.StaleOrders))
	for _, a := range s.StaleOrders {
		stale = append(stale, StaleOrderAlertDTO{
			OrderID:    a.OrderID,
			Title:      a.Title,
			ClientName: a.ClientName,
			Plate:      a.Plate,
			Status:     a.Status,
			DaysStale:  a.DaysStale,
		})
	}
	pending := make([]PendingEstimateAlertDTO, 0, len(s.OldPendingEstimates))
	for _, a := range s.OldPendingEstimates {
		pending = append(pending, PendingEstimateAlertDTO{
			EstimateID: a.EstimateID,
			ClientName: a.ClientName,
			Plate:      a.Plate,
			Total:      a.Total,
			DaysOld:    a.DaysOld,
		})
	}
	return DashboardSummaryResponse{
		OrdersInProgress:    s.OrdersInProgress,
		OrdersDelivered:     s.OrdersDelivered,
		AppointmentsToday:   s.AppointmentsToday,
		PendingEstimates:    s.PendingEstimates,
		UnpaidInvoices:      s.UnpaidInvoices,
		RevenueInRange:      s.RevenueInRange,
		NewClientsInRange:   s.NewClientsInRange,
		OrdersByStatus:      s.OrdersByStatus,
		StaleThresholdDays:  s.StaleThresholdDays,
		StaleOrders:         stale,
		OldPendingEstimates: pending,
	}
}

// DebtAgingBucketDTO tramo de antigüedad de deuda.
type DebtAgingBucketDTO struct {
	Label  string          `json:"label"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialReportResponse reporte financiero del rango solicitado.
type FinancialReportResponse struct {
	From              time.Time                  `json:"from"`
	To                time.Time                  `json:"to"`
	Invoiced          decimal.Decimal            `json:"invoiced"`
	Collected         decimal.Decimal            `json:"collected"`
	Outstanding       decimal.Decimal            `json:"outstanding"`
	DebtAging         []DebtAgingBucketDTO       `json:"debtAging"`
	EstimatesIssued   int64                      `json:"estimatesIssued"`
	EstimatesAccepted int64                      `json:"estimatesAccepted"`
	ConversionRate    decimal.Decimal            `json:"conversionRate"`
	RevenueByMethod   map[string]decimal.Decimal `json:"revenueByMethod"`
}

// NewFinancialReportResponse proyecta el reporte de dominio.
func NewFinancialReportResponse(r *entity.FinancialReport) FinancialReportResponse {
	buckets := make([]DebtAgingBucketDTO, 0, len(r.DebtAging))
	for _, b := range r.DebtAging {
		buckets = append(buckets, DebtAgingBucketDTO{Label: b.Label, Count: b.Count, Amount: b.Amount})
	}
	return FinancialReportResponse{
		From:              r.From,
		To:                r.To,
		Invoiced:          r.Invoiced,
		Collected:         r.Collected,
		Outstanding:       r.Outstanding,
		DebtAging:         buckets,
		EstimatesIssued:   r.EstimatesIssued,
		EstimatesAccepted: r.EstimatesAccepted,
		ConversionRate:    r.ConversionRate,
		RevenueByMethod:   r.RevenueByMethod,
	}
}

// EmployeeProductivityDTO productividad de un empleado.
type EmployeeProductivityDTO struct {
	EmployeeID      int64           `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	OrdersAssigned  int64           `json:"ordersAssigned"`
	OrdersDelivered int64           `json:"ordersDelivered"`
	RevenueShare    decimal.Decimal `json:"revenueShare"`
}

// ProductivityReportResponse reporte de productividad por empleado.
type ProductivityReportResponse struct {
	From      time.Time                 `json:"from"`
	To        time.Time                 `json:"to"`
	Employees []EmployeeProductivityDTO `json:"employees"`
}

// NewProductivityReportResponse proyecta el reporte de dominio.
func NewProductivityReportResponse(r *entity.ProductivityReport) ProductivityReportResponse {
	employees := make([]EmployeeProductivityDTO, 0, len(r.Employees))
	for _, e := range r.Employees {
		employees = append(employees, EmployeeProductivityDTO{
			EmployeeID:      e.EmployeeID,
			EmployeeName:    e.EmployeeName,
			OrdersAssigned:  e.OrdersAssigned,
			OrdersDelivered: e.OrdersDelivered,
			RevenueShare:    e.RevenueShare,
		})
	}
	return ProductivityReportResponse{From: r.From, To: r.To, Employees: employees}
}
