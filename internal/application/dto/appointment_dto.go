package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateAppointmentRequest entrada para agendar una cita. Cliente y vehículo
// son opcionales; QuickClient crea un cliente temporal con los datos mínimos.
// Sin EndTime la cita dura la duración configurada del calendario.
type CreateAppointmentRequest struct {
	Title                 string               `json:"title" validate:"required"`
	ClientID              *int64               `json:"clientId"`
	QuickClient           *QuickClientRequest  `json:"quickClient"`
	VehicleID             *int64               `json:"vehicleId"`
	QuickVehicle          *QuickVehicleRequest `json:"quickVehicle"`
	Purpose               string               `json:"purpose"`
	StartTime             time.Time            `json:"startTime" validate:"required"`
	EndTime               time.Time            `json:"endTime"`
	VehicleDeliveryMethod string               `json:"vehicleDeliveryMethod" validate:"required"`
	EmployeeIDs           []int64              `json:"employeeIds"`
	TagIDs                []int64              `json:"tagIds"`
}

// QuickClientRequest alta rápida de cliente temporal desde el calendario.
type QuickClientRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// QuickVehicleRequest alta rápida de vehículo desde el calendario.
type QuickVehicleRequest struct {
	Plate string `json:"plate" validate:"required"`
	Model string `json:"model"`
}

// RescheduleAppointmentRequest entrada para mover una cita de intervalo.
type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID                    int64              `json:"id"`
	Title                 string             `json:"title"`
	ClientID              *int64             `json:"clientId,omitempty"`
	ClientName            string             `json:"clientName,omitempty"`
	VehicleID             *int64             `json:"vehicleId,omitempty"`
	VehiclePlate          string             `json:"vehiclePlate,omitempty"`
	Purpose               string             `json:"purpose"`
	StartTime             time.Time          `json:"startTime"`
	EndTime               time.Time          `json:"endTime"`
	VehicleDeliveryMethod string             `json:"vehicleDeliveryMethod"`
	VehicleArrivedAt      *time.Time         `json:"vehicleArrivedAt,omitempty"`
	VehiclePickedUpAt     *time.Time         `json:"vehiclePickedUpAt,omitempty"`
	ClientArrived         bool               `json:"clientArrived"`
	Employees             []EmployeeResponse `json:"employees"`
	Tags                  []TagResponse      `json:"tags"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}

// NewAppointmentResponse proyecta la entidad al DTO de salida.
func NewAppointmentResponse(a *entity.Appointment) AppointmentResponse {
	employees := make([]EmployeeResponse, 0, len(a.Employees))
	for i := range a.Employees {
		employees = append(employees, NewEmployeeResponse(&a.Employees[i]))
	}
	tags := make([]TagResponse, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	resp := AppointmentResponse{
		ID:                    a.ID,
		Title:                 a.Title,
		ClientID:              a.ClientID,
		VehicleID:             a.VehicleID,
		Purpose:               a.Purpose,
		StartTime:             a.StartTime,
		EndTime:               a.EndTime,
		VehicleDeliveryMethod: a.VehicleDeliveryMethod,
		VehicleArrivedAt:      a.VehicleArrivedAt,
		VehiclePickedUpAt:     a.VehiclePickedUpAt,
		ClientArrived:         a.ClientArrived,
		Employees:             employees,
		Tags:                  tags,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
	if a.Client != nil {
		resp.ClientName = a.Client.FullName()
	}
	if a.Vehicle != nil {
		resp.VehiclePlate = a.Vehicle.Plate
	}
	return resp
}

// NewAppointmentResponses proyecta una lista de entidades.
func NewAppointmentResponses(appointments []*entity.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, NewAppointmentResponse(a))
	}
	return out
}

// CalendarConfigResponse configuración del calendario.
type CalendarConfigResponse struct {
	DefaultAppointmentDurationMinutes int     `json:"defaultAppointmentDurationMinutes"`
	StartTime                         *string `json:"startTime,omitempty"`
	EndTime                           *string `json:"endTime,omitempty"`
}

// SaveCalendarConfigRequest entrada para guardar la configuración del calendario.
type SaveCalendarConfigRequest struct {
	DefaultAppointmentDurationMinutes int     `json:"defaultAppointmentDurationMinutes" validate:"min=1"`
	StartTime                         *string `json:"startTime"`
	EndTime                           *string `json:"endTime"`
}
