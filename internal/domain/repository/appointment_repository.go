package repository

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id int64) (*entity.Appointment, error)
	// ListOverlapping devuelve las citas que pisan el rango semiabierto
	// [from, to): start_time < to AND end_time > from. Con employeeID
	// filtra por empleado asignado.
	ListOverlapping(from, to time.Time, employeeID *int64) ([]*entity.Appointment, error)
	ListByClient(clientID int64) ([]*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	SetEmployees(appointmentID int64, employeeIDs []int64) error
	SetTags(appointmentID int64, tagIDs []int64) error
	Delete(id int64) error
	CountBetween(from, to time.Time) (int64, error)
}

// CalendarConfigRepository configuración del calendario del taller.
type CalendarConfigRepository interface {
	Get() (*entity.CalendarConfig, error)
	Save(config *entity.CalendarConfig) error
}
