package usecase

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// VehicleUseCase casos de uso CRUD para vehículos, catálogo de marcas y
// historial de trabajos.
type VehicleUseCase struct {
	repo       repository.VehicleRepository
	clients    repository.ClientRepository
	brands     repository.BrandRepository
	types      repository.VehicleTypeRepository
	orders     repository.RepairOrderRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	repo repository.VehicleRepository,
	clients repository.ClientRepository,
	brands repository.BrandRepository,
	types repository.VehicleTypeRepository,
	orders repository.RepairOrderRepository,
) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, clients: clients, brands: brands, types: types, orders: orders}
}

// Create crea un vehículo asociado a un cliente existente. La patente es única.
func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if _, err := uc.clients.GetByID(in.ClientID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByPlate(in.Plate)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	vehicle := &entity.Vehicle{
		ClientID:      in.ClientID,
		Plate:         in.Plate,
		ChassisNumber: in.ChassisNumber,
		EngineNumber:  in.EngineNumber,
		BrandID:       in.BrandID,
		Model:         in.Model,
		Year:          in.Year,
		VehicleTypeID: in.VehicleTypeID,
		Observations:  in.Observations,
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(vehicle.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(created)
	return &resp, nil
}

// GetByID obtiene un vehículo por ID con cliente y marca hidratados.
func (uc *VehicleUseCase) GetByID(id int64) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(vehicle)
	return &resp, nil
}

// List lista vehículos con búsqueda y paginación.
func (uc *VehicleUseCase) List(filter repository.VehicleFilter, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	filter.Limit = page.Size
	filter.Offset = page.Offset()
	vehicles, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewVehicleResponses(vehicles), total, page)
	return &out, nil
}

// ListByClient lista los vehículos de un cliente.
func (uc *VehicleUseCase) ListByClient(clientID int64) ([]dto.VehicleResponse, error) {
	vehicles, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return dto.NewVehicleResponses(vehicles), nil
}

// Update actualiza un vehículo.
func (uc *VehicleUseCase) Update(id int64, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Plate != nil && *in.Plate != vehicle.Plate {
		existing, err := uc.repo.GetByPlate(*in.Plate)
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		vehicle.Plate = *in.Plate
	}
	if in.ChassisNumber != nil {
		vehicle.ChassisNumber = *in.ChassisNumber
	}
	if in.EngineNumber != nil {
		vehicle.EngineNumber = *in.EngineNumber
	}
	if in.BrandID != nil {
		vehicle.BrandID = in.BrandID
	}
	if in.Model != nil {
		vehicle.Model = *in.Model
	}
	if in.Year != nil {
		vehicle.Year = in.Year
	}
	if in.VehicleTypeID != nil {
		vehicle.VehicleTypeID = in.VehicleTypeID
	}
	if in.Observations != nil {
		vehicle.Observations = *in.Observations
	}
	if err := uc.repo.Update(vehicle); err != nil {
		return nil, err
	}
	resp := dto.NewVehicleResponse(vehicle)
	return &resp, nil
}

// Delete elimina un vehículo.
func (uc *VehicleUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// WorkHistory historial de órdenes de trabajo del vehículo, más reciente primero.
func (uc *VehicleUseCase) WorkHistory(id int64) ([]dto.WorkHistoryResponse, error) {
	if _, err := uc.repo.GetByID(id); err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListByVehicle(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkHistoryResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.WorkHistoryResponse{
			RepairOrderID:    o.ID,
			RepairOrderTitle: o.Title,
			Reason:           o.Reason,
			CreatedAt:        o.CreatedAt,
		})
	}
	return out, nil
}

// ListBrands catálogo de marcas.
func (uc *VehicleUseCase) ListBrands() ([]dto.BrandResponse, error) {
	brands, err := uc.brands.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

// CreateBrand agrega una marca al catálogo.
func (uc *VehicleUseCase) CreateBrand(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	brand := &entity.Brand{Name: in.Name}
	if err := uc.brands.Create(brand); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: brand.ID, Name: brand.Name}, nil
}

// DeleteBrand elimina una marca del catálogo.
func (uc *VehicleUseCase) DeleteBrand(id int64) error {
	return uc.brands.Delete(id)
}

// ListVehicleTypes catálogo de tipos de vehículos.
func (uc *VehicleUseCase) ListVehicleTypes() ([]dto.VehicleTypeResponse, error) {
	types, err := uc.types.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.VehicleTypeResponse{ID: t.ID, Name: t.Name})
	}
	return out, nil
}
