package entity

import (
	"fmt"
	"time"
)

// Estados del ciclo de vida de una orden de trabajo. El orden de la lista
// es el orden fijo de columnas del tablero Kanban.
const (
	StatusIngresoVehiculo         = "INGRESO_VEHICULO"
	StatusEsperandoAprobacion     = "ESPERANDO_APROBACION_PRESUPUESTO"
	StatusEsperandoRepuestos      = "ESPERANDO_REPUESTOS"
	StatusReparacion              = "REPARACION"
	StatusPruebas                 = "PRUEBAS"
	StatusListoParaEntregar       = "LISTO_PARA_ENTREGAR"
	StatusEntregado               = "ENTREGADO"
)

// AllRepairOrderStatuses enumeración completa en orden de tablero.
var AllRepairOrderStatuses = []string{
	StatusIngresoVehiculo,
	StatusEsperandoAprobacion,
	StatusEsperandoRepuestos,
	StatusReparacion,
	StatusPruebas,
	StatusListoParaEntregar,
	StatusEntregado,
}

// IsValidRepairOrderStatus valida que s pertenezca a la enumeración.
func IsValidRepairOrderStatus(s string) bool {
	for _, st := range AllRepairOrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// CanSetRepairOrderStatus valida un cambio de estado solicitado desde el tablero.
// Los dos estados iniciales nunca son destino válido de una actualización; el
// resto se acepta desde cualquier estado actual (se permiten saltos y retrocesos,
// la secuencia la gobierna el taller, no el sistema).
func CanSetRepairOrderStatus(newStatus string) error {
	if !IsValidRepairOrderStatus(newStatus) {
		return fmt.Errorf("estado de orden desconocido: %q", newStatus)
	}
	if newStatus == StatusIngresoVehiculo || newStatus == StatusEsperandoAprobacion {
		return fmt.Errorf(
			"no se puede cambiar al estado '%s': los estados 'Ingresó vehículo' y 'Esperando aprobación presupuesto' son estados iniciales",
			newStatus)
	}
	return nil
}

// IsTerminalRepairOrderStatus indica si el estado es final (ENTREGADO).
func IsTerminalRepairOrderStatus(s string) bool {
	return s == StatusEntregado
}

// RepairOrder orden de trabajo que sigue a un vehículo por el ciclo del taller.
type RepairOrder struct {
	ID            int64
	Title         string
	ClientID      int64
	VehicleID     int64
	AppointmentID *int64
	Reason        string
	ClientSource  string
	Status        string
	MechanicNotes string
	Employees     []Employee
	Tags          []Tag
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Referencias hidratadas por la capa de persistencia.
	Client  *Client
	Vehicle *Vehicle
}

// AutoTitle título generado al crear la orden: OT-<id> <apellido> - <patente>.
func AutoTitle(id int64, clientLastName, plate string) string {
	return fmt.Sprintf("OT-%d %s - %s", id, clientLastName, plate)
}

// WorkHistoryEntry entrada del historial de trabajos de un vehículo.
type WorkHistoryEntry struct {
	RepairOrderID    int64
	RepairOrderTitle string
	Reason           string
	CreatedAt        time.Time
}
