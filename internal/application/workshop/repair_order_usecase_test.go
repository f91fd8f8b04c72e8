package workshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

type fakeRepairOrderRepo struct {
	repository.RepairOrderRepository
	orders    map[int64]*entity.RepairOrder
	nextID    int64
	employees map[int64][]int64
	tags      map[int64][]int64
}

func newFakeRepairOrderRepo() *fakeRepairOrderRepo {
	return &fakeRepairOrderRepo{
		orders:    map[int64]*entity.RepairOrder{},
		employees: map[int64][]int64{},
		tags:      map[int64][]int64{},
	}
}

func (f *fakeRepairOrderRepo) Create(o *entity.RepairOrder) error {
	f.nextID++
	o.ID = f.nextID
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepairOrderRepo) GetByID(id int64) (*entity.RepairOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (f *fakeRepairOrderRepo) Update(o *entity.RepairOrder) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeRepairOrderRepo) UpdateStatus(id int64, status string) error {
	f.orders[id].Status = status
	return nil
}

func (f *fakeRepairOrderRepo) SetEmployees(orderID int64, ids []int64) error {
	f.employees[orderID] = ids
	return nil
}

func (f *fakeRepairOrderRepo) SetTags(orderID int64, ids []int64) error {
	f.tags[orderID] = ids
	return nil
}

func (f *fakeRepairOrderRepo) ListByStatus() (map[string][]*entity.RepairOrder, error) {
	out := map[string][]*entity.RepairOrder{}
	for _, o := range f.orders {
		out[o.Status] = append(out[o.Status], o)
	}
	return out, nil
}

type fakeClientRepo struct {
	repository.ClientRepository
	clients map[int64]*entity.Client
}

func (f *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

type fakeVehicleRepo struct {
	repository.VehicleRepository
	vehicles map[int64]*entity.Vehicle
}

func (f *fakeVehicleRepo) GetByID(id int64) (*entity.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
	employees map[int64]*entity.Employee
}

func (f *fakeEmployeeRepo) GetByIDs(ids []int64) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, id := range ids {
		if e, ok := f.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTagRepo struct {
	repository.TagRepository
	tags map[int64]*entity.Tag
}

func (f *fakeTagRepo) GetByIDs(ids []int64) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, id := range ids {
		if tg, ok := f.tags[id]; ok {
			out = append(out, tg)
		}
	}
	return out, nil
}

func newRepairOrderUC(t *testing.T) (*RepairOrderUseCase, *fakeRepairOrderRepo) {
	t.Helper()
	repo := newFakeRepairOrderRepo()
	clients := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, FirstName: "Ana", LastName: "Pérez", ClientType: entity.ClientTypePersonal},
	}}
	vehicles := &fakeVehicleRepo{vehicles: map[int64]*entity.Vehicle{
		2: {ID: 2, ClientID: 1, Plate: "ABCD12"},
		3: {ID: 3, ClientID: 99, Plate: "ZZZZ99"},
	}}
	employees := &fakeEmployeeRepo{employees: map[int64]*entity.Employee{
		7: {ID: 7, FirstName: "Luis", LastName: "Gómez"},
	}}
	tags := &fakeTagRepo{tags: map[int64]*entity.Tag{4: {ID: 4, Name: "urgente"}}}
	return NewRepairOrderUseCase(repo, clients, vehicles, employees, tags), repo
}

func TestRepairOrderCreateGeneratesTitle(t *testing.T) {
	uc, repo := newRepairOrderUC(t)

	resp, err := uc.Create(dto.CreateRepairOrderRequest{
		ClientID:  1,
		VehicleID: 2,
		Reason:    "ruido en frenos",
	})
	require.NoError(t, err)
	assert.Equal(t, "OT-1 Pérez - ABCD12", resp.Title)
	assert.Equal(t, entity.StatusIngresoVehiculo, resp.Status)
	assert.Equal(t, "OT-1 Pérez - ABCD12", repo.orders[resp.ID].Title)
}

func TestRepairOrderCreateRejectsForeignVehicle(t *testing.T) {
	uc, _ := newRepairOrderUC(t)

	_, err := uc.Create(dto.CreateRepairOrderRequest{
		ClientID:  1,
		VehicleID: 3,
		Reason:    "x",
	})
	assert.True(t, domain.IsBusiness(err))
}

func TestRepairOrderCreateAssignsEmployeesAndTags(t *testing.T) {
	uc, repo := newRepairOrderUC(t)

	resp, err := uc.Create(dto.CreateRepairOrderRequest{
		ClientID:    1,
		VehicleID:   2,
		Reason:      "service completo",
		EmployeeIDs: []int64{7},
		TagIDs:      []int64{4},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.employees[resp.ID])
	assert.Equal(t, []int64{4}, repo.tags[resp.ID])

	_, err = uc.Create(dto.CreateRepairOrderRequest{
		ClientID:    1,
		VehicleID:   2,
		Reason:      "x",
		EmployeeIDs: []int64{7, 999},
	})
	assert.True(t, domain.IsBusiness(err), "empleado inexistente")
}

func TestRepairOrderUpdateStatusGuard(t *testing.T) {
	uc, _ := newRepairOrderUC(t)

	created, err := uc.Create(dto.CreateRepairOrderRequest{ClientID: 1, VehicleID: 2, Reason: "x"})
	require.NoError(t, err)

	moved, err := uc.UpdateStatus(created.ID, dto.UpdateRepairOrderStatusRequest{Status: entity.StatusReparacion})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReparacion, moved.Status)

	// Los estados iniciales no son destino válido.
	_, err = uc.UpdateStatus(created.ID, dto.UpdateRepairOrderStatusRequest{Status: entity.StatusIngresoVehiculo})
	assert.True(t, domain.IsBusiness(err))
	_, err = uc.UpdateStatus(created.ID, dto.UpdateRepairOrderStatusRequest{Status: entity.StatusEsperandoAprobacion})
	assert.True(t, domain.IsBusiness(err))
	_, err = uc.UpdateStatus(created.ID, dto.UpdateRepairOrderStatusRequest{Status: "NO_EXISTE"})
	assert.True(t, domain.IsBusiness(err))
}

func TestBoardHasAllColumnsInOrder(t *testing.T) {
	uc, _ := newRepairOrderUC(t)

	_, err := uc.Create(dto.CreateRepairOrderRequest{ClientID: 1, VehicleID: 2, Reason: "x"})
	require.NoError(t, err)

	board, err := uc.Board()
	require.NoError(t, err)
	require.Len(t, board.Columns, len(entity.AllRepairOrderStatuses))
	for i, col := range board.Columns {
		assert.Equal(t, entity.AllRepairOrderStatuses[i], col.Status)
	}
	assert.Len(t, board.Columns[0].Orders, 1)
	assert.Empty(t, board.Columns[6].Orders)
}
