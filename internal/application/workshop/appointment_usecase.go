package workshop

import (
	"time"

	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
	"github.com/autotech/taller-api/internal/domain/schedule"
)

// AppointmentUseCase casos de uso del calendario de citas, incluida el alta
// rápida de clientes temporales.
type AppointmentUseCase struct {
	repo     repository.AppointmentRepository
	clients  repository.ClientRepository
	vehicles repository.VehicleRepository
	config   repository.CalendarConfigRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	clients repository.ClientRepository,
	vehicles repository.VehicleRepository,
	config repository.CalendarConfigRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, clients: clients, vehicles: vehicles, config: config}
}

// defaultDurationMinutes duración configurada, o la de fábrica si aún no hay
// configuración guardada.
func (uc *AppointmentUseCase) defaultDurationMinutes() int {
	cfg, err := uc.config.Get()
	if err != nil || cfg.DefaultAppointmentDurationMinutes < 1 {
		return entity.DefaultAppointmentDurationMinutes
	}
	return cfg.DefaultAppointmentDurationMinutes
}

// Create agenda una cita. Cliente y vehículo son opcionales; si viene un alta
// rápida se crea un cliente TEMPORAL (o un vehículo) con los datos mínimos.
// Sin hora de fin, la cita dura la duración configurada del calendario.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !entity.IsValidDeliveryMethod(in.VehicleDeliveryMethod) {
		return nil, domain.NewBusinessError("método de entrega inválido: " + in.VehicleDeliveryMethod)
	}

	var clientID *int64
	switch {
	case in.ClientID != nil:
		client, err := uc.clients.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		clientID = &client.ID
	case in.QuickClient != nil:
		now := time.Now()
		client := &entity.Client{
			FirstName:  in.QuickClient.FirstName,
			LastName:   in.QuickClient.LastName,
			Phone:      in.QuickClient.Phone,
			ClientType: entity.ClientTypeTemporal,
			EntryDate:  &now,
		}
		if err := uc.clients.Create(client); err != nil {
			return nil, err
		}
		clientID = &client.ID
	}

	var vehicleID *int64
	switch {
	case in.VehicleID != nil:
		vehicle, err := uc.vehicles.GetByID(*in.VehicleID)
		if err != nil {
			return nil, err
		}
		if clientID != nil && vehicle.ClientID != *clientID {
			return nil, domain.NewBusinessError("el vehículo no pertenece al cliente seleccionado")
		}
		vehicleID = &vehicle.ID
	case in.QuickVehicle != nil:
		if clientID == nil {
			return nil, domain.NewBusinessError("el alta rápida de vehículo requiere un cliente")
		}
		vehicle := &entity.Vehicle{
			ClientID: *clientID,
			Plate:    in.QuickVehicle.Plate,
			Model:    in.QuickVehicle.Model,
		}
		if err := uc.vehicles.Create(vehicle); err != nil {
			return nil, err
		}
		vehicleID = &vehicle.ID
	}

	end := in.EndTime
	if end.IsZero() {
		end = in.StartTime.Add(time.Duration(uc.defaultDurationMinutes()) * time.Minute)
	}
	if !in.StartTime.Before(end) {
		return nil, domain.NewBusinessError("la hora de inicio debe ser anterior a la hora de fin")
	}

	appointment := &entity.Appointment{
		Title:                 in.Title,
		ClientID:              clientID,
		VehicleID:             vehicleID,
		Purpose:               in.Purpose,
		StartTime:             in.StartTime,
		EndTime:               end,
		VehicleDeliveryMethod: in.VehicleDeliveryMethod,
	}
	if err := uc.repo.Create(appointment); err != nil {
		return nil, err
	}
	if len(in.EmployeeIDs) > 0 {
		if err := uc.repo.SetEmployees(appointment.ID, in.EmployeeIDs); err != nil {
			return nil, err
		}
	}
	if len(in.TagIDs) > 0 {
		if err := uc.repo.SetTags(appointment.ID, in.TagIDs); err != nil {
			return nil, err
		}
	}
	created, err := uc.repo.GetByID(appointment.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAppointmentResponse(created)
	return &resp, nil
}

// GetByID obtiene una cita por ID.
func (uc *AppointmentUseCase) GetByID(id int64) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewAppointmentResponse(appointment)
	return &resp, nil
}

// ListByView lista las citas de la vista del calendario (día, semana o mes)
// alrededor de la fecha de referencia.
func (uc *AppointmentUseCase) ListByView(view string, ref time.Time) ([]dto.AppointmentResponse, error) {
	r, err := schedule.Resolve(view, ref)
	if err != nil {
		return nil, domain.NewBusinessError(err.Error())
	}
	appointments, err := uc.repo.ListOverlapping(r.From, r.To, nil)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentResponses(appointments), nil
}

// ListRange lista las citas que pisan el rango semiabierto [from, to),
// opcionalmente filtradas por empleado asignado.
func (uc *AppointmentUseCase) ListRange(from, to time.Time, employeeID *int64) ([]dto.AppointmentResponse, error) {
	if !from.Before(to) {
		return nil, domain.NewBusinessError("el inicio del rango debe ser anterior al fin")
	}
	appointments, err := uc.repo.ListOverlapping(from, to, employeeID)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentResponses(appointments), nil
}

// MarkClientArrived registra si el cliente se presentó a la cita.
func (uc *AppointmentUseCase) MarkClientArrived(id int64, arrived bool) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	appointment.ClientArrived = arrived
	return uc.save(appointment)
}

// MarkVehicleArrived registra el momento de llegada del vehículo; con
// arrived en falso borra la marca.
func (uc *AppointmentUseCase) MarkVehicleArrived(id int64, arrived bool) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if arrived {
		now := time.Now()
		appointment.VehicleArrivedAt = &now
	} else {
		appointment.VehicleArrivedAt = nil
	}
	return uc.save(appointment)
}

// MarkVehiclePickedUp registra el momento de retiro del vehículo; con
// pickedUp en falso borra la marca.
func (uc *AppointmentUseCase) MarkVehiclePickedUp(id int64, pickedUp bool) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pickedUp {
		now := time.Now()
		appointment.VehiclePickedUpAt = &now
	} else {
		appointment.VehiclePickedUpAt = nil
	}
	return uc.save(appointment)
}

func (uc *AppointmentUseCase) save(appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	if err := uc.repo.Update(appointment); err != nil {
		return nil, err
	}
	resp := dto.NewAppointmentResponse(appointment)
	return &resp, nil
}

// ListByClient lista las citas de un cliente.
func (uc *AppointmentUseCase) ListByClient(clientID int64) ([]dto.AppointmentResponse, error) {
	appointments, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentResponses(appointments), nil
}

// Reschedule mueve una cita a otro intervalo. Solo cambia inicio y fin.
func (uc *AppointmentUseCase) Reschedule(id int64, in dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !in.StartTime.Before(in.EndTime) {
		return nil, domain.NewBusinessError("la hora de inicio debe ser anterior a la hora de fin")
	}
	appointment.StartTime = in.StartTime
	appointment.EndTime = in.EndTime
	return uc.save(appointment)
}

// Delete cancela una cita.
func (uc *AppointmentUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// GetCalendarConfig configuración actual del calendario; la primera lectura
// la crea con los valores por defecto.
func (uc *AppointmentUseCase) GetCalendarConfig() (*dto.CalendarConfigResponse, error) {
	cfg, err := uc.config.Get()
	if err == domain.ErrNotFound {
		cfg = &entity.CalendarConfig{
			DefaultAppointmentDurationMinutes: entity.DefaultAppointmentDurationMinutes,
		}
		if err := uc.config.Save(cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return &dto.CalendarConfigResponse{
		DefaultAppointmentDurationMinutes: cfg.DefaultAppointmentDurationMinutes,
		StartTime:                         cfg.StartTime,
		EndTime:                           cfg.EndTime,
	}, nil
}

// SaveCalendarConfig guarda la configuración del calendario.
func (uc *AppointmentUseCase) SaveCalendarConfig(in dto.SaveCalendarConfigRequest) (*dto.CalendarConfigResponse, error) {
	if in.DefaultAppointmentDurationMinutes < 1 {
		return nil, domain.NewBusinessError("la duración por defecto debe ser de al menos un minuto")
	}
	cfg := &entity.CalendarConfig{
		DefaultAppointmentDurationMinutes: in.DefaultAppointmentDurationMinutes,
		StartTime:                         in.StartTime,
		EndTime:                           in.EndTime,
	}
	if err := uc.config.Save(cfg); err != nil {
		return nil, err
	}
	return uc.GetCalendarConfig()
}
