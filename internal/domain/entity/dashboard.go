package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaleOrderAlert orden sin avance hace más días que el umbral configurado.
type StaleOrderAlert struct {
	OrderID    int64
	Title      string
	ClientName string
	Plate      string
	Status     string
	DaysStale  int
}

// PendingEstimateAlert presupuesto pendiente de respuesta hace más días
// que el umbral configurado.
type PendingEstimateAlert struct {
	EstimateID int64
	ClientName string
	Plate      string
	Total      decimal.Decimal
	DaysOld    int
}

// DashboardSummary resumen operativo del taller para un rango de fechas.
type DashboardSummary struct {
	OrdersInProgress    int64
	OrdersDelivered     int64
	AppointmentsToday   int64
	PendingEstimates    int64
	UnpaidInvoices      int64
	RevenueInRange      decimal.Decimal
	NewClientsInRange   int64
	OrdersByStatus      map[string]int64
	StaleThresholdDays  int
	StaleOrders         []StaleOrderAlert
	OldPendingEstimates []PendingEstimateAlert
}

// DebtAgingBucket tramo de antigüedad de deuda de facturas impagas.
type DebtAgingBucket struct {
	Label  string // "0-30", "31-60", "61-90", "90+"
	Count  int64
	Amount decimal.Decimal
}

// FinancialReport reporte financiero del taller para un rango de fechas.
type FinancialReport struct {
	From              time.Time
	To                time.Time
	Invoiced          decimal.Decimal
	Collected         decimal.Decimal
	Outstanding       decimal.Decimal
	DebtAging         []DebtAgingBucket
	EstimatesIssued   int64
	EstimatesAccepted int64
	ConversionRate    decimal.Decimal // aceptados / emitidos, porcentaje
	RevenueByMethod   map[string]decimal.Decimal
}

// EmployeeProductivity productividad de un empleado en un rango de fechas.
type EmployeeProductivity struct {
	EmployeeID      int64
	EmployeeName    string
	OrdersAssigned  int64
	OrdersDelivered int64
	RevenueShare    decimal.Decimal
}

// ProductivityReport reporte de productividad por empleado.
type ProductivityReport struct {
	From      time.Time
	To        time.Time
	Employees []EmployeeProductivity
}

// DefaultStaleThresholdDays umbral de alerta cuando no hay configuración guardada.
const DefaultStaleThresholdDays = 5

// DashboardConfig configuración del panel: umbral en días para marcar
// órdenes estancadas y presupuestos sin respuesta.
type DashboardConfig struct {
	ID                 int64
	StaleThresholdDays int
	UpdatedAt          time.Time
}
