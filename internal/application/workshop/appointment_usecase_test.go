package workshop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

type fakeAppointmentRepo struct {
	repository.AppointmentRepository
	byID      map[int64]*entity.Appointment
	nextID    int64
	lastFrom  time.Time
	lastTo    time.Time
	lastEmpID *int64
	employees map[int64][]int64
	tags      map[int64][]int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		byID:      map[int64]*entity.Appointment{},
		employees: map[int64][]int64{},
		tags:      map[int64][]int64{},
	}
}

func (f *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	f.nextID++
	a.ID = f.nextID
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id int64) (*entity.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) ListOverlapping(from, to time.Time, employeeID *int64) ([]*entity.Appointment, error) {
	f.lastFrom, f.lastTo, f.lastEmpID = from, to, employeeID
	var out []*entity.Appointment
	for _, a := range f.byID {
		if a.Overlaps(from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(a *entity.Appointment) error {
	if _, ok := f.byID[a.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) SetEmployees(id int64, employeeIDs []int64) error {
	f.employees[id] = employeeIDs
	return nil
}

func (f *fakeAppointmentRepo) SetTags(id int64, tagIDs []int64) error {
	f.tags[id] = tagIDs
	return nil
}

type fakeApptClients struct {
	repository.ClientRepository
	clients map[int64]*entity.Client
	created []*entity.Client
}

func (f *fakeApptClients) GetByID(id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeApptClients) Create(c *entity.Client) error {
	c.ID = int64(100 + len(f.created))
	f.created = append(f.created, c)
	f.clients[c.ID] = c
	return nil
}

type fakeApptVehicles struct {
	repository.VehicleRepository
	vehicles map[int64]*entity.Vehicle
}

func (f *fakeApptVehicles) GetByID(id int64) (*entity.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

type fakeCalendarConfigRepo struct {
	repository.CalendarConfigRepository
	cfg   *entity.CalendarConfig
	saved *entity.CalendarConfig
}

func (f *fakeCalendarConfigRepo) Get() (*entity.CalendarConfig, error) {
	if f.cfg == nil {
		return nil, domain.ErrNotFound
	}
	return f.cfg, nil
}

func (f *fakeCalendarConfigRepo) Save(cfg *entity.CalendarConfig) error {
	f.saved = cfg
	f.cfg = cfg
	return nil
}

func newAppointmentFixture() (*AppointmentUseCase, *fakeAppointmentRepo, *fakeCalendarConfigRepo) {
	repo := newFakeAppointmentRepo()
	clients := &fakeApptClients{clients: map[int64]*entity.Client{
		1: {ID: 1, FirstName: "Ana", LastName: "Ruiz"},
	}}
	vehicles := &fakeApptVehicles{vehicles: map[int64]*entity.Vehicle{
		5: {ID: 5, ClientID: 1, Plate: "AB123CD"},
		6: {ID: 6, ClientID: 2, Plate: "ZZ999ZZ"},
	}}
	config := &fakeCalendarConfigRepo{}
	return NewAppointmentUseCase(repo, clients, vehicles, config), repo, config
}

func apptClientID() *int64 { id := int64(1); return &id }

func TestAppointmentCreateRejectsInvertedInterval(t *testing.T) {
	uc, _, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	_, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso por ruidos",
		ClientID:              apptClientID(),
		StartTime:             start,
		EndTime:               start.Add(-time.Hour),
		VehicleDeliveryMethod: entity.DeliveryPropio,
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusiness(err))

	// Inicio igual a fin tampoco es un intervalo válido.
	_, err = uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso por ruidos",
		ClientID:              apptClientID(),
		StartTime:             start,
		EndTime:               start,
		VehicleDeliveryMethod: entity.DeliveryPropio,
	})
	assert.True(t, domain.IsBusiness(err))
}

func TestAppointmentCreateDefaultsDurationFromConfig(t *testing.T) {
	uc, repo, config := newAppointmentFixture()
	config.cfg = &entity.CalendarConfig{ID: 1, DefaultAppointmentDurationMinutes: 45}

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Service de 10.000 km",
		ClientID:              apptClientID(),
		StartTime:             start,
		VehicleDeliveryMethod: entity.DeliveryGrua,
	})
	require.NoError(t, err)
	assert.Equal(t, start.Add(45*time.Minute), repo.byID[created.ID].EndTime)
}

func TestAppointmentCreateValidatesDeliveryMethod(t *testing.T) {
	uc, _, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for _, method := range []string{"CLIENTE_LO_TRAE", "RETIRO_A_DOMICILIO", "FLETE", ""} {
		_, err := uc.Create(dto.CreateAppointmentRequest{
			Title:                 "Ingreso",
			ClientID:              apptClientID(),
			StartTime:             start,
			EndTime:               start.Add(time.Hour),
			VehicleDeliveryMethod: method,
		})
		assert.True(t, domain.IsBusiness(err), method)
	}
	for _, method := range []string{entity.DeliveryPropio, entity.DeliveryGrua, entity.DeliveryTercero} {
		assert.True(t, entity.IsValidDeliveryMethod(method), method)
	}
}

func TestAppointmentCreateWithoutClientOrVehicle(t *testing.T) {
	uc, repo, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Bloqueo de agenda",
		Purpose:               "Inventario del taller",
		StartTime:             start,
		EndTime:               start.Add(2 * time.Hour),
		VehicleDeliveryMethod: entity.DeliveryPropio,
	})
	require.NoError(t, err)
	stored := repo.byID[created.ID]
	assert.Nil(t, stored.ClientID)
	assert.Nil(t, stored.VehicleID)
}

func TestAppointmentCreateRejectsForeignVehicle(t *testing.T) {
	uc, _, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	vehicleID := int64(6) // pertenece a otro cliente
	_, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso",
		ClientID:              apptClientID(),
		VehicleID:             &vehicleID,
		StartTime:             start,
		EndTime:               start.Add(time.Hour),
		VehicleDeliveryMethod: entity.DeliveryPropio,
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusiness(err))
}

func TestAppointmentCreateAssignsEmployeesAndTags(t *testing.T) {
	uc, repo, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso",
		ClientID:              apptClientID(),
		StartTime:             start,
		EndTime:               start.Add(time.Hour),
		VehicleDeliveryMethod: entity.DeliveryPropio,
		EmployeeIDs:           []int64{3, 7},
		TagIDs:                []int64{2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, repo.employees[created.ID])
	assert.Equal(t, []int64{2}, repo.tags[created.ID])
}

func TestAppointmentRangeUsesHalfOpenOverlap(t *testing.T) {
	uc, repo, _ := newAppointmentFixture()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	// Cruza la medianoche hacia adentro del rango.
	repo.Create(&entity.Appointment{
		Title:     "Arranca antes del rango",
		StartTime: day.Add(-time.Hour),
		EndTime:   day.Add(time.Hour),
	})
	// Termina justo cuando empieza el rango: semiabierto, queda afuera.
	repo.Create(&entity.Appointment{
		Title:     "Termina en el borde",
		StartTime: day.Add(-2 * time.Hour),
		EndTime:   day,
	})
	// Empieza justo cuando termina el rango: afuera.
	repo.Create(&entity.Appointment{
		Title:     "Empieza en el borde",
		StartTime: day.Add(24 * time.Hour),
		EndTime:   day.Add(25 * time.Hour),
	})

	out, err := uc.ListRange(day, day.Add(24*time.Hour), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Arranca antes del rango", out[0].Title)

	employeeID := int64(3)
	_, err = uc.ListRange(day, day.Add(24*time.Hour), &employeeID)
	require.NoError(t, err)
	require.NotNil(t, repo.lastEmpID)
	assert.Equal(t, employeeID, *repo.lastEmpID)

	_, err = uc.ListRange(day, day, nil)
	assert.True(t, domain.IsBusiness(err), "rango vacío")
}

func TestAppointmentArrivalMarksSetTimestamps(t *testing.T) {
	uc, repo, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso",
		ClientID:              apptClientID(),
		StartTime:             start,
		EndTime:               start.Add(time.Hour),
		VehicleDeliveryMethod: entity.DeliveryTercero,
	})
	require.NoError(t, err)

	_, err = uc.MarkVehicleArrived(created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, repo.byID[created.ID].VehicleArrivedAt)
	assert.WithinDuration(t, time.Now(), *repo.byID[created.ID].VehicleArrivedAt, time.Minute)

	_, err = uc.MarkVehiclePickedUp(created.ID, true)
	require.NoError(t, err)
	assert.NotNil(t, repo.byID[created.ID].VehiclePickedUpAt)

	_, err = uc.MarkVehicleArrived(created.ID, false)
	require.NoError(t, err)
	assert.Nil(t, repo.byID[created.ID].VehicleArrivedAt)

	_, err = uc.MarkClientArrived(created.ID, true)
	require.NoError(t, err)
	assert.True(t, repo.byID[created.ID].ClientArrived)
}

func TestAppointmentRescheduleChangesIntervalOnly(t *testing.T) {
	uc, repo, _ := newAppointmentFixture()

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title:                 "Ingreso",
		ClientID:              apptClientID(),
		Purpose:               "Cambio de aceite",
		StartTime:             start,
		EndTime:               start.Add(time.Hour),
		VehicleDeliveryMethod: entity.DeliveryPropio,
	})
	require.NoError(t, err)

	newStart := start.AddDate(0, 0, 1)
	_, err = uc.Reschedule(created.ID, dto.RescheduleAppointmentRequest{
		StartTime: newStart,
		EndTime:   newStart.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	stored := repo.byID[created.ID]
	assert.Equal(t, newStart, stored.StartTime)
	assert.Equal(t, newStart.Add(90*time.Minute), stored.EndTime)
	assert.Equal(t, "Cambio de aceite", stored.Purpose)

	_, err = uc.Reschedule(created.ID, dto.RescheduleAppointmentRequest{
		StartTime: newStart,
		EndTime:   newStart,
	})
	assert.True(t, domain.IsBusiness(err))
}

func TestCalendarConfigCreatedWithDefaultsOnFirstRead(t *testing.T) {
	uc, _, config := newAppointmentFixture()

	cfg, err := uc.GetCalendarConfig()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAppointmentDurationMinutes, cfg.DefaultAppointmentDurationMinutes)
	require.NotNil(t, config.saved, "la primera lectura persiste los valores por defecto")
	assert.Equal(t, entity.DefaultAppointmentDurationMinutes, config.saved.DefaultAppointmentDurationMinutes)

	opening := "08:30"
	closing := "18:00"
	saved, err := uc.SaveCalendarConfig(dto.SaveCalendarConfigRequest{
		DefaultAppointmentDurationMinutes: 30,
		StartTime:                         &opening,
		EndTime:                           &closing,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, saved.DefaultAppointmentDurationMinutes)
	require.NotNil(t, saved.StartTime)
	assert.Equal(t, "08:30", *saved.StartTime)
}
