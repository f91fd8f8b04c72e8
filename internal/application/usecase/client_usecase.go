package usecase

import (
	"time"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes, incluida la promoción de
// clientes temporales a registrados.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Los tipos PERSONAL y EMPRESA exigen datos completos.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !entity.IsValidClientType(in.ClientType) {
		return nil, domain.NewBusinessError("tipo de cliente inválido: " + in.ClientType)
	}
	if entity.RequiresFullData(in.ClientType) {
		if in.DNI == "" || in.LastName == "" {
			return nil, domain.NewBusinessError("los clientes registrados requieren apellido y documento")
		}
		existing, err := uc.repo.GetByDNI(in.DNI)
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	client := &entity.Client{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DNI:            in.DNI,
		CommercialName: in.CommercialName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		Province:       in.Province,
		Country:        in.Country,
		ClientType:     in.ClientType,
		EntryDate:      &now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(client)
	return &resp, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(client)
	return &resp, nil
}

// List lista clientes con búsqueda y paginación.
func (uc *ClientUseCase) List(search, clientType string, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	clients, total, err := uc.repo.List(repository.ClientFilter{
		Search:     search,
		ClientType: clientType,
		Limit:      page.Size,
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewClientResponses(clients), total, page)
	return &out, nil
}

// Update actualiza un cliente. Cambiar un TEMPORAL a PERSONAL o EMPRESA exige
// completar los datos obligatorios; el camino inverso no está permitido.
func (uc *ClientUseCase) Update(id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.DNI != nil {
		client.DNI = *in.DNI
	}
	if in.CommercialName != nil {
		client.CommercialName = *in.CommercialName
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.Province != nil {
		client.Province = *in.Province
	}
	if in.Country != nil {
		client.Country = *in.Country
	}
	if in.ClientType != nil && *in.ClientType != client.ClientType {
		if !entity.IsValidClientType(*in.ClientType) {
			return nil, domain.NewBusinessError("tipo de cliente inválido: " + *in.ClientType)
		}
		if *in.ClientType == entity.ClientTypeTemporal {
			return nil, domain.NewBusinessError("un cliente registrado no puede volver a ser temporal")
		}
		client.ClientType = *in.ClientType
	}
	if entity.RequiresFullData(client.ClientType) && (client.DNI == "" || client.LastName == "") {
		return nil, domain.NewBusinessError("los clientes registrados requieren apellido y documento")
	}
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(client)
	return &resp, nil
}

// Upgrade promueve un cliente TEMPORAL a PERSONAL o EMPRESA con sus datos
// completos. El documento no puede pertenecer a otro cliente.
func (uc *ClientUseCase) Upgrade(id int64, in dto.UpgradeClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client.ClientType != entity.ClientTypeTemporal {
		return nil, domain.NewBusinessError("solo un cliente temporal puede promoverse")
	}
	if !entity.RequiresFullData(in.ClientType) {
		return nil, domain.NewBusinessError("tipo de cliente destino inválido: " + in.ClientType)
	}
	if in.DNI == "" || in.LastName == "" {
		return nil, domain.NewBusinessError("los clientes registrados requieren apellido y documento")
	}
	existing, err := uc.repo.GetByDNI(in.DNI)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}

	client.ClientType = in.ClientType
	client.LastName = in.LastName
	client.DNI = in.DNI
	client.CommercialName = in.CommercialName
	if in.Email != "" {
		client.Email = in.Email
	}
	client.Address = in.Address
	client.Province = in.Province
	client.Country = in.Country

	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	resp := dto.NewClientResponse(client)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
