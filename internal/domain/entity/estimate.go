package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un presupuesto.
const (
	EstimatePendiente = "PENDIENTE"
	EstimateAceptado  = "ACEPTADO"
	EstimateRechazado = "RECHAZADO"
)

// IsValidEstimateStatus valida el estado de un presupuesto.
func IsValidEstimateStatus(s string) bool {
	switch s {
	case EstimatePendiente, EstimateAceptado, EstimateRechazado:
		return true
	}
	return false
}

// EstimateItem línea de un presupuesto (servicio o repuesto).
type EstimateItem struct {
	ID          int64
	EstimateID  int64
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	IsService   bool
}

// Subtotal cantidad por precio unitario de la línea.
func (i EstimateItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Estimate presupuesto emitido para un cliente y su vehículo, opcionalmente
// ligado a una orden de trabajo. Solo un presupuesto en estado PENDIENTE
// admite edición, aprobación o rechazo; la carga de datos de facturación
// exige estado ACEPTADO.
type Estimate struct {
	ID              int64
	ClientID        int64
	VehicleID       int64
	RepairOrderID   *int64
	Status          string
	Items           []EstimateItem
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
	Observations    string
	ReportedIssues  string
	InspectionID    *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Client      *Client
	Vehicle     *Vehicle
	RepairOrder *RepairOrder
}

// Subtotal suma de las líneas antes de descuento e impuesto.
func (e Estimate) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// IsEditable indica si el presupuesto admite modificaciones.
func (e Estimate) IsEditable() bool {
	return e.Status == EstimatePendiente
}
