package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// VehicleFilter criterios de búsqueda del listado de vehículos.
type VehicleFilter struct {
	Search   string
	ClientID *int64
	BrandID  *int64
	Limit    int
	Offset   int
}

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id int64) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	List(filter VehicleFilter) ([]*entity.Vehicle, int64, error)
	ListByClient(clientID int64) ([]*entity.Vehicle, error)
	Update(vehicle *entity.Vehicle) error
	Delete(id int64) error
}

// BrandRepository catálogo de marcas de vehículos.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	List() ([]*entity.Brand, error)
	Delete(id int64) error
}

// VehicleTypeRepository catálogo de tipos de vehículos.
type VehicleTypeRepository interface {
	List() ([]*entity.VehicleType, error)
}
