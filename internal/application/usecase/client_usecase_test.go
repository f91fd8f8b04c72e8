package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

type fakeClientRepo struct {
	repository.ClientRepository
	clients map[int64]*entity.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*entity.Client{}}
}

func (f *fakeClientRepo) Create(c *entity.Client) error {
	f.nextID++
	c.ID = f.nextID
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) GetByDNI(dni string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.DNI == dni && dni != "" {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClientRepo) Update(c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}

func TestClientCreateTemporalWithMinimalData(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{
		FirstName:  "Juan",
		ClientType: entity.ClientTypeTemporal,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientTypeTemporal, resp.ClientType)
	assert.NotNil(t, resp.EntryDate)
}

func TestClientCreateRegisteredRequiresFullData(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	_, err := uc.Create(dto.CreateClientRequest{
		FirstName:  "Juan",
		ClientType: entity.ClientTypePersonal,
	})
	assert.True(t, domain.IsBusiness(err))

	_, err = uc.Create(dto.CreateClientRequest{
		FirstName:  "Juan",
		LastName:   "López",
		DNI:        "30123456",
		ClientType: entity.ClientTypePersonal,
	})
	assert.NoError(t, err)
}

func TestClientCreateRejectsDuplicateDNI(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	_, err := uc.Create(dto.CreateClientRequest{
		FirstName: "Juan", LastName: "López", DNI: "30123456",
		ClientType: entity.ClientTypePersonal,
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateClientRequest{
		FirstName: "Otro", LastName: "López", DNI: "30123456",
		ClientType: entity.ClientTypeEmpresa,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClientUpgradeTemporalToRegistered(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	created, err := uc.Create(dto.CreateClientRequest{
		FirstName:  "Juan",
		ClientType: entity.ClientTypeTemporal,
	})
	require.NoError(t, err)

	// Promoción sin completar datos: rechazada.
	personal := entity.ClientTypePersonal
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{ClientType: &personal})
	assert.True(t, domain.IsBusiness(err))

	lastName := "López"
	dni := "30123456"
	upgraded, err := uc.Update(created.ID, dto.UpdateClientRequest{
		ClientType: &personal,
		LastName:   &lastName,
		DNI:        &dni,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientTypePersonal, upgraded.ClientType)
}

func TestClientUpgradeEndpointRules(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	registered, err := uc.Create(dto.CreateClientRequest{
		FirstName: "Ana", LastName: "Paz", DNI: "28999888",
		ClientType: entity.ClientTypePersonal,
	})
	require.NoError(t, err)

	temporal, err := uc.Create(dto.CreateClientRequest{
		FirstName:  "Juan",
		ClientType: entity.ClientTypeTemporal,
	})
	require.NoError(t, err)

	// Solo un cliente temporal puede promoverse.
	_, err = uc.Upgrade(registered.ID, dto.UpgradeClientRequest{
		ClientType: entity.ClientTypeEmpresa, LastName: "Paz", DNI: "28999888",
	})
	assert.True(t, domain.IsBusiness(err))

	// El documento no puede pertenecer a otro cliente.
	_, err = uc.Upgrade(temporal.ID, dto.UpgradeClientRequest{
		ClientType: entity.ClientTypePersonal, LastName: "López", DNI: "28999888",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	upgraded, err := uc.Upgrade(temporal.ID, dto.UpgradeClientRequest{
		ClientType: entity.ClientTypePersonal,
		LastName:   "López",
		DNI:        "30123456",
		Address:    "Av. Rivadavia 1234",
		Province:   "Buenos Aires",
		Country:    "Argentina",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ClientTypePersonal, upgraded.ClientType)
	assert.Equal(t, "Juan López", upgraded.FullName)
}

func TestClientDowngradeToTemporalRejected(t *testing.T) {
	uc := NewClientUseCase(newFakeClientRepo())

	created, err := uc.Create(dto.CreateClientRequest{
		FirstName: "Juan", LastName: "López", DNI: "30123456",
		ClientType: entity.ClientTypePersonal,
	})
	require.NoError(t, err)

	temporal := entity.ClientTypeTemporal
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{ClientType: &temporal})
	assert.True(t, domain.IsBusiness(err))
}
