package entity

import "time"

// Brand marca de vehículo (catálogo administrable).
type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleType tipo de vehículo (catálogo fijo, sembrado por migración).
type VehicleType struct {
	ID   int64
	Name string
}

// Vehicle representa un vehículo asociado a un cliente.
type Vehicle struct {
	ID            int64
	ClientID      int64
	Plate         string
	ChassisNumber string
	EngineNumber  string
	BrandID       *int64
	Model         string
	Year          *int
	VehicleTypeID *int64
	Observations  string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Referencias hidratadas por la capa de persistencia para listados y detalle.
	Client *Client
	Brand  *Brand
}

// BrandName nombre de la marca si está hidratada.
func (v *Vehicle) BrandName() string {
	if v.Brand == nil {
		return ""
	}
	return v.Brand.Name
}
