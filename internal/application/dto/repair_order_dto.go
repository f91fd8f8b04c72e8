package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateRepairOrderRequest entrada para crear una orden de trabajo. El título
// se genera automáticamente a partir del cliente y la patente.
type CreateRepairOrderRequest struct {
	ClientID      int64   `json:"clientId" validate:"required"`
	VehicleID     int64   `json:"vehicleId" validate:"required"`
	AppointmentID *int64  `json:"appointmentId"`
	Reason        string  `json:"reason" validate:"required"`
	ClientSource  string  `json:"clientSource"`
	EmployeeIDs   []int64 `json:"employeeIds"`
	TagIDs        []int64 `json:"tagIds"`
}

// UpdateRepairOrderRequest entrada para actualizar una orden de trabajo.
type UpdateRepairOrderRequest struct {
	Title         *string `json:"title"`
	Reason        *string `json:"reason"`
	ClientSource  *string `json:"clientSource"`
	MechanicNotes *string `json:"mechanicNotes"`
	EmployeeIDs   []int64 `json:"employeeIds"`
	TagIDs        []int64 `json:"tagIds"`
}

// UpdateRepairOrderStatusRequest cambio de estado desde el tablero Kanban.
type UpdateRepairOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RepairOrderResponse salida de una orden de trabajo.
type RepairOrderResponse struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	ClientID      int64              `json:"clientId"`
	ClientName    string             `json:"clientName,omitempty"`
	VehicleID     int64              `json:"vehicleId"`
	VehiclePlate  string             `json:"vehiclePlate,omitempty"`
	AppointmentID *int64             `json:"appointmentId,omitempty"`
	Reason        string             `json:"reason"`
	ClientSource  string             `json:"clientSource,omitempty"`
	Status        string             `json:"status"`
	MechanicNotes string             `json:"mechanicNotes,omitempty"`
	Employees     []EmployeeResponse `json:"employees"`
	Tags          []TagResponse      `json:"tags"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// NewRepairOrderResponse proyecta la entidad al DTO de salida.
func NewRepairOrderResponse(o *entity.RepairOrder) RepairOrderResponse {
	employees := make([]EmployeeResponse, 0, len(o.Employees))
	for i := range o.Employees {
		employees = append(employees, NewEmployeeResponse(&o.Employees[i]))
	}
	tags := make([]TagResponse, 0, len(o.Tags))
	for _, t := range o.Tags {
		tags = append(tags, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	resp := RepairOrderResponse{
		ID:            o.ID,
		Title:         o.Title,
		ClientID:      o.ClientID,
		ClientName:    o.Client.FullName(),
		VehicleID:     o.VehicleID,
		AppointmentID: o.AppointmentID,
		Reason:        o.Reason,
		ClientSource:  o.ClientSource,
		Status:        o.Status,
		MechanicNotes: o.MechanicNotes,
		Employees:     employees,
		Tags:          tags,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Vehicle != nil {
		resp.VehiclePlate = o.Vehicle.Plate
	}
	return resp
}

// NewRepairOrderResponses proyecta una lista de entidades.
func NewRepairOrderResponses(orders []*entity.RepairOrder) []RepairOrderResponse {
	out := make([]RepairOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewRepairOrderResponse(o))
	}
	return out
}

// KanbanColumn columna del tablero con sus órdenes.
type KanbanColumn struct {
	Status string                `json:"status"`
	Orders []RepairOrderResponse `json:"orders"`
}

// KanbanBoardResponse tablero completo, columnas en orden fijo.
type KanbanBoardResponse struct {
	Columns []KanbanColumn `json:"columns"`
}

// NewKanbanBoardResponse arma el tablero: una columna por estado, en el orden
// de la enumeración, incluidas las vacías.
func NewKanbanBoardResponse(byStatus map[string][]*entity.RepairOrder) KanbanBoardResponse {
	columns := make([]KanbanColumn, 0, len(entity.AllRepairOrderStatuses))
	for _, status := range entity.AllRepairOrderStatuses {
		columns = append(columns, KanbanColumn{
			Status: status,
			Orders: NewRepairOrderResponses(byStatus[status]),
		})
	}
	return KanbanBoardResponse{Columns: columns}
}
