package entity

import "time"

// Resultados posibles de un punto de inspección.
const (
	InspectionOK       = "OK"
	InspectionRevisar  = "REVISAR"
	InspectionProblema = "PROBLEMA"
	InspectionNoAplica = "NO_APLICA"
)

// IsValidInspectionItemStatus valida el resultado de un punto de inspección.
func IsValidInspectionItemStatus(s string) bool {
	switch s {
	case InspectionOK, InspectionRevisar, InspectionProblema, InspectionNoAplica:
		return true
	}
	return false
}

// InspectionTemplateItem punto de una plantilla de inspección.
type InspectionTemplateItem struct {
	ID         int64
	TemplateID int64
	Name       string
	Category   string
	Position   int
}

// InspectionTemplate plantilla de inspección por tipo de vehículo.
type InspectionTemplate struct {
	ID            int64
	Name          string
	VehicleTypeID *int64
	Items         []InspectionTemplateItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InspectionItem resultado de un punto durante una inspección concreta.
type InspectionItem struct {
	ID           int64
	InspectionID int64
	Name         string
	Category     string
	Status       string
	Notes        string
}

// Inspection inspección de ingreso realizada sobre una orden de trabajo. Los
// puntos con resultado REVISAR o PROBLEMA alimentan los problemas detectados
// del presupuesto.
type Inspection struct {
	ID            int64
	RepairOrderID int64
	TemplateID    *int64
	EmployeeID    *int64
	Items         []InspectionItem
	Observations  string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Employee *Employee
}

// IssueItems puntos de la inspección que requieren atención.
func (i Inspection) IssueItems() []InspectionItem {
	var out []InspectionItem
	for _, it := range i.Items {
		if it.Status == InspectionRevisar || it.Status == InspectionProblema {
			out = append(out, it)
		}
	}
	return out
}

// CommonProblem problema frecuente reutilizable al redactar presupuestos.
type CommonProblem struct {
	ID          int64
	Description string
	Category    string
}
