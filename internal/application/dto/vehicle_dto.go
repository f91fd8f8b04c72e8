package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateVehicleRequest entrada para crear un vehículo.
type CreateVehicleRequest struct {
	ClientID      int64  `json:"clientId" validate:"required"`
	Plate         string `json:"plate" validate:"required,min=1,max=20"`
	ChassisNumber string `json:"chassisNumber" validate:"max=50"`
	EngineNumber  string `json:"engineNumber" validate:"max=50"`
	BrandID       *int64 `json:"brandId"`
	Model         string `json:"model" validate:"max=100"`
	Year          *int   `json:"year" validate:"omitempty,min=1900,max=2100"`
	VehicleTypeID *int64 `json:"vehicleTypeId"`
	Observations  string `json:"observations"`
}

// UpdateVehicleRequest entrada para actualizar un vehículo.
type UpdateVehicleRequest struct {
	Plate         *string `json:"plate" validate:"omitempty,min=1,max=20"`
	ChassisNumber *string `json:"chassisNumber"`
	EngineNumber  *string `json:"engineNumber"`
	BrandID       *int64  `json:"brandId"`
	Model         *string `json:"model"`
	Year          *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	VehicleTypeID *int64  `json:"vehicleTypeId"`
	Observations  *string `json:"observations"`
}

// VehicleResponse salida de un vehículo con su cliente y marca hidratados.
type VehicleResponse struct {
	ID            int64     `json:"id"`
	ClientID      int64     `json:"clientId"`
	ClientName    string    `json:"clientName,omitempty"`
	Plate         string    `json:"plate"`
	ChassisNumber string    `json:"chassisNumber,omitempty"`
	EngineNumber  string    `json:"engineNumber,omitempty"`
	BrandID       *int64    `json:"brandId,omitempty"`
	BrandName     string    `json:"brandName,omitempty"`
	Model         string    `json:"model,omitempty"`
	Year          *int      `json:"year,omitempty"`
	VehicleTypeID *int64    `json:"vehicleTypeId,omitempty"`
	Observations  string    `json:"observations,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewVehicleResponse proyecta la entidad al DTO de salida.
func NewVehicleResponse(v *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		ClientID:      v.ClientID,
		ClientName:    v.Client.FullName(),
		Plate:         v.Plate,
		ChassisNumber: v.ChassisNumber,
		EngineNumber:  v.EngineNumber,
		BrandID:       v.BrandID,
		BrandName:     v.BrandName(),
		Model:         v.Model,
		Year:          v.Year,
		VehicleTypeID: v.VehicleTypeID,
		Observations:  v.Observations,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// NewVehicleResponses proyecta una lista de entidades.
func NewVehicleResponses(vehicles []*entity.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, NewVehicleResponse(v))
	}
	return out
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// VehicleTypeResponse salida de un tipo de vehículo.
type VehicleTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WorkHistoryResponse entrada del historial de trabajos de un vehículo.
type WorkHistoryResponse struct {
	RepairOrderID    int64     `json:"repairOrderId"`
	RepairOrderTitle string    `json:"repairOrderTitle"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"createdAt"`
}
