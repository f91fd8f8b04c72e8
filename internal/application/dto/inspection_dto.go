package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// InspectionItemDTO resultado de un punto de inspección.
type InspectionItemDTO struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Status   string `json:"status" validate:"required"`
	Notes    string `json:"notes"`
}

// CreateInspectionRequest entrada para registrar una inspección de ingreso.
type CreateInspectionRequest struct {
	RepairOrderID int64               `json:"repairOrderId" validate:"required"`
	TemplateID    *int64              `json:"templateId"`
	EmployeeID    *int64              `json:"employeeId"`
	Items         []InspectionItemDTO `json:"items" validate:"required,min=1"`
	Observations  string              `json:"observations"`
}

// UpdateInspectionRequest entrada para corregir una inspección.
type UpdateInspectionRequest struct {
	Items        []InspectionItemDTO `json:"items"`
	Observations *string             `json:"observations"`
}

// InspectionResponse salida de una inspección.
type InspectionResponse struct {
	ID            int64               `json:"id"`
	RepairOrderID int64               `json:"repairOrderId"`
	TemplateID    *int64              `json:"templateId,omitempty"`
	EmployeeID    *int64              `json:"employeeId,omitempty"`
	EmployeeName  string              `json:"employeeName,omitempty"`
	Items         []InspectionItemDTO `json:"items"`
	Issues        []InspectionItemDTO `json:"issues"`
	Observations  string              `json:"observations,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewInspectionResponse proyecta la entidad separando los puntos con problemas.
func NewInspectionResponse(i *entity.Inspection) InspectionResponse {
	toDTO := func(items []entity.InspectionItem) []InspectionItemDTO {
		out := make([]InspectionItemDTO, 0, len(items))
		for _, it := range items {
			out = append(out, InspectionItemDTO{
				Name:     it.Name,
				Category: it.Category,
				Status:   it.Status,
				Notes:    it.Notes,
			})
		}
		return out
	}
	return InspectionResponse{
		ID:            i.ID,
		RepairOrderID: i.RepairOrderID,
		TemplateID:    i.TemplateID,
		EmployeeID:    i.EmployeeID,
		EmployeeName:  i.Employee.FullName(),
		Items:         toDTO(i.Items),
		Issues:        toDTO(i.IssueItems()),
		Observations:  i.Observations,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// TemplateItemDTO punto de una plantilla de inspección.
type TemplateItemDTO struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Position int    `json:"position"`
}

// CreateInspectionTemplateRequest entrada para crear una plantilla.
type CreateInspectionTemplateRequest struct {
	Name          string            `json:"name" validate:"required"`
	VehicleTypeID *int64            `json:"vehicleTypeId"`
	Items         []TemplateItemDTO `json:"items" validate:"required,min=1"`
}

// UpdateInspectionTemplateRequest entrada para editar una plantilla.
type UpdateInspectionTemplateRequest struct {
	Name          *string           `json:"name"`
	VehicleTypeID *int64            `json:"vehicleTypeId"`
	Items         []TemplateItemDTO `json:"items"`
}

// InspectionTemplateResponse salida de una plantilla de inspección.
type InspectionTemplateResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	VehicleTypeID *int64            `json:"vehicleTypeId,omitempty"`
	Items         []TemplateItemDTO `json:"items"`
}

// NewInspectionTemplateResponse proyecta la entidad al DTO de salida.
func NewInspectionTemplateResponse(t *entity.InspectionTemplate) InspectionTemplateResponse {
	items := make([]TemplateItemDTO, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TemplateItemDTO{Name: it.Name, Category: it.Category, Position: it.Position})
	}
	return InspectionTemplateResponse{
		ID:            t.ID,
		Name:          t.Name,
		VehicleTypeID: t.VehicleTypeID,
		Items:         items,
	}
}
