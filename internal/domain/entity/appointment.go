package entity

import "time"

// Métodos de entrega del vehículo al taller.
const (
	DeliveryPropio  = "PROPIO"
	DeliveryGrua    = "GRUA"
	DeliveryTercero = "TERCERO"
)

// IsValidDeliveryMethod valida el método de entrega del vehículo.
func IsValidDeliveryMethod(m string) bool {
	switch m {
	case DeliveryPropio, DeliveryGrua, DeliveryTercero:
		return true
	}
	return false
}

// Appointment cita del calendario del taller: un intervalo semiabierto
// [StartTime, EndTime) con cliente y vehículo opcionales.
type Appointment struct {
	ID                    int64
	Title                 string
	ClientID              *int64
	VehicleID             *int64
	Purpose               string
	StartTime             time.Time
	EndTime               time.Time
	VehicleDeliveryMethod string
	VehicleArrivedAt      *time.Time
	VehiclePickedUpAt     *time.Time
	ClientArrived         bool
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Client    *Client
	Vehicle   *Vehicle
	Employees []Employee
	Tags      []Tag
}

// Overlaps indica si la cita pisa el rango semiabierto [from, to).
func (a *Appointment) Overlaps(from, to time.Time) bool {
	return a.StartTime.Before(to) && a.EndTime.After(from)
}

// DefaultAppointmentDurationMinutes duración de cita cuando no hay
// configuración guardada ni hora de fin indicada.
const DefaultAppointmentDurationMinutes = 60

// CalendarConfig configuración del calendario de citas (fila singleton).
// StartTime y EndTime acotan la jornada visible en formato HH:MM.
type CalendarConfig struct {
	ID                                int64
	DefaultAppointmentDurationMinutes int
	StartTime                         *string
	EndTime                           *string
	UpdatedAt                         time.Time
}
