package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// Fakes mínimos: embeben la interfaz y sobreescriben solo lo que el caso
// de uso toca en cada escenario.

type fakeEstimateRepo struct {
	repository.EstimateRepository
	byID       map[int64]*entity.Estimate
	byOrder    map[int64]*entity.Estimate
	created    []*entity.Estimate
	statusSets map[int64]string
	lastFilter repository.EstimateFilter
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{
		byID:       map[int64]*entity.Estimate{},
		byOrder:    map[int64]*entity.Estimate{},
		statusSets: map[int64]string{},
	}
}

func (f *fakeEstimateRepo) Create(e *entity.Estimate) error {
	e.ID = int64(len(f.created) + 1)
	f.created = append(f.created, e)
	f.byID[e.ID] = e
	if e.RepairOrderID != nil {
		f.byOrder[*e.RepairOrderID] = e
	}
	return nil
}

func (f *fakeEstimateRepo) GetByID(id int64) (*entity.Estimate, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEstimateRepo) GetByRepairOrder(orderID int64) (*entity.Estimate, error) {
	e, ok := f.byOrder[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEstimateRepo) UpdateStatus(id int64, status string) error {
	f.statusSets[id] = status
	f.byID[id].Status = status
	return nil
}

func (f *fakeEstimateRepo) List(filter repository.EstimateFilter) ([]*entity.Estimate, int64, error) {
	f.lastFilter = filter
	return nil, 0, nil
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

type fakeOrderRepo struct {
	repository.RepairOrderRepository
	orders map[int64]*entity.RepairOrder
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.RepairOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

type fakeInspectionRepo struct {
	repository.InspectionRepository
	byOrder map[int64]*entity.Inspection
}

func (f *fakeInspectionRepo) GetByRepairOrder(orderID int64) (*entity.Inspection, error) {
	i, ok := f.byOrder[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return i, nil
}

func newEstimateUC(t *testing.T) (*EstimateUseCase, *fakeEstimateRepo) {
	t.Helper()
	estimates := newFakeEstimateRepo()
	clients := &fakeClientRepo{clients: map[int64]*entity.Client{
		1: {ID: 1, FirstName: "Ana", LastName: "Ruiz"},
	}}
	vehicles := &fakeVehicleRepo{vehicles: map[int64]*entity.Vehicle{
		5: {ID: 5, ClientID: 1, Plate: "AB123CD"},
		6: {ID: 6, ClientID: 2, Plate: "ZZ999ZZ"},
	}}
	orders := &fakeOrderRepo{orders: map[int64]*entity.RepairOrder{
		10: {ID: 10, Status: entity.StatusEsperandoAprobacion},
	}}
	inspections := &fakeInspectionRepo{byOrder: map[int64]*entity.Inspection{}}
	return NewEstimateUseCase(estimates, clients, vehicles, orders, inspections), estimates
}

func itemsFixture() []dto.BillingItemDTO {
	return []dto.BillingItemDTO{
		{Description: "Cambio de pastillas", Quantity: 2, UnitPrice: decimal.NewFromInt(300), IsService: true},
		{Description: "Pastillas de freno", Quantity: 1, UnitPrice: decimal.NewFromInt(200)},
	}
}

func estimateRequest() dto.CreateEstimateRequest {
	return dto.CreateEstimateRequest{
		ClientID:  1,
		VehicleID: 5,
		Items:     itemsFixture(),
	}
}

func TestEstimateCreate(t *testing.T) {
	uc, _ := newEstimateUC(t)

	in := estimateRequest()
	in.DiscountPercent = decimal.NewFromInt(10)
	in.TaxPercent = decimal.NewFromInt(21)
	resp, err := uc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, entity.EstimatePendiente, resp.Status)
	assert.Equal(t, int64(1), resp.ClientID)
	assert.Equal(t, int64(5), resp.VehicleID)
	assert.Nil(t, resp.RepairOrderID)
	assert.True(t, decimal.NewFromInt(800).Equal(resp.Subtotal), resp.Subtotal.String())
	assert.True(t, decimal.NewFromFloat(871.2).Equal(resp.Total), resp.Total.String())
}

func TestEstimateCreateWithOptionalOrder(t *testing.T) {
	uc, repo := newEstimateUC(t)

	orderID := int64(10)
	in := estimateRequest()
	in.RepairOrderID = &orderID
	resp, err := uc.Create(in)
	require.NoError(t, err)

	require.NotNil(t, resp.RepairOrderID)
	assert.Equal(t, orderID, *resp.RepairOrderID)

	// Una segunda emisión sobre la misma orden no se admite.
	_, err = uc.Create(in)
	assert.True(t, domain.IsBusiness(err))
	assert.Len(t, repo.created, 1)
}

func TestEstimateCreateRejectsForeignVehicle(t *testing.T) {
	uc, _ := newEstimateUC(t)

	in := estimateRequest()
	in.VehicleID = 6 // pertenece a otro cliente
	_, err := uc.Create(in)
	require.Error(t, err)
	assert.True(t, domain.IsBusiness(err))
	assert.Contains(t, err.Error(), "no pertenece al cliente")
}

func TestEstimateCreateValidatesItems(t *testing.T) {
	uc, _ := newEstimateUC(t)

	in := estimateRequest()
	in.Items = nil
	_, err := uc.Create(in)
	assert.True(t, domain.IsBusiness(err), "sin líneas")

	in = estimateRequest()
	in.Items = []dto.BillingItemDTO{{Description: "x", Quantity: 0}}
	_, err = uc.Create(in)
	assert.True(t, domain.IsBusiness(err), "cantidad cero")
}

func TestEstimateListForwardsNameAndPlateFilters(t *testing.T) {
	uc, repo := newEstimateUC(t)

	_, err := uc.List(repository.EstimateFilter{
		Status:     entity.EstimatePendiente,
		ClientName: "ana",
		Plate:      "AB12",
	}, dto.PageRequest{Page: 0, Size: 12})
	require.NoError(t, err)

	assert.Equal(t, "ana", repo.lastFilter.ClientName)
	assert.Equal(t, "AB12", repo.lastFilter.Plate)
	assert.Equal(t, entity.EstimatePendiente, repo.lastFilter.Status)
	assert.Equal(t, 12, repo.lastFilter.Limit)
}

func TestEstimateApproveRejectOnlyFromPending(t *testing.T) {
	uc, repo := newEstimateUC(t)

	created, err := uc.Create(estimateRequest())
	require.NoError(t, err)

	approved, err := uc.Approve(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstimateAceptado, approved.Status)
	assert.Equal(t, entity.EstimateAceptado, repo.statusSets[created.ID])

	// Ya no está pendiente: ni aprobar de nuevo ni rechazar.
	_, err = uc.Approve(created.ID)
	assert.True(t, domain.IsBusiness(err))
	_, err = uc.Reject(created.ID)
	assert.True(t, domain.IsBusiness(err))
}

func TestEstimateUpdateOnlyPending(t *testing.T) {
	uc, _ := newEstimateUC(t)

	created, err := uc.Create(estimateRequest())
	require.NoError(t, err)
	_, err = uc.Approve(created.ID)
	require.NoError(t, err)

	obs := "revisar tren delantero"
	_, err = uc.Update(created.ID, dto.UpdateEstimateRequest{Observations: &obs})
	assert.True(t, domain.IsBusiness(err))
}

func TestEstimateDeleteRejectsAccepted(t *testing.T) {
	uc, _ := newEstimateUC(t)

	created, err := uc.Create(estimateRequest())
	require.NoError(t, err)
	_, err = uc.Approve(created.ID)
	require.NoError(t, err)

	err = uc.Delete(created.ID)
	assert.True(t, domain.IsBusiness(err))
}
