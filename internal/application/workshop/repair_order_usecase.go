// Package workshop contiene los casos de uso operativos del taller:
// órdenes de trabajo, citas e inspecciones de ingreso.
package workshop

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// RepairOrderUseCase casos de uso de órdenes de trabajo y tablero Kanban.
type RepairOrderUseCase struct {
	repo      repository.RepairOrderRepository
	clients   repository.ClientRepository
	vehicles  repository.VehicleRepository
	employees repository.EmployeeRepository
	tags      repository.TagRepository
}

// NewRepairOrderUseCase construye el caso de uso.
func NewRepairOrderUseCase(
	repo repository.RepairOrderRepository,
	clients repository.ClientRepository,
	vehicles repository.VehicleRepository,
	employees repository.EmployeeRepository,
	tags repository.TagRepository,
) *RepairOrderUseCase {
	return &RepairOrderUseCase{repo: repo, clients: clients, vehicles: vehicles, employees: employees, tags: tags}
}

// Create abre una orden de trabajo en estado inicial. El título se genera
// a partir del ID asignado, el apellido del cliente y la patente del vehículo.
func (uc *RepairOrderUseCase) Create(in dto.CreateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	client, err := uc.clients.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicles.GetByID(in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.ClientID != client.ID {
		return nil, domain.NewBusinessError("el vehículo no pertenece al cliente indicado")
	}
	order := &entity.RepairOrder{
		ClientID:      in.ClientID,
		VehicleID:     in.VehicleID,
		AppointmentID: in.AppointmentID,
		Reason:        in.Reason,
		ClientSource:  in.ClientSource,
		Status:        entity.StatusIngresoVehiculo,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	order.Title = entity.AutoTitle(order.ID, client.LastName, vehicle.Plate)
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	if len(in.EmployeeIDs) > 0 {
		if err := uc.assignEmployees(order, in.EmployeeIDs); err != nil {
			return nil, err
		}
	}
	if len(in.TagIDs) > 0 {
		if err := uc.assignTags(order, in.TagIDs); err != nil {
			return nil, err
		}
	}
	created, err := uc.repo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRepairOrderResponse(created)
	return &resp, nil
}

func (uc *RepairOrderUseCase) assignEmployees(order *entity.RepairOrder, ids []int64) error {
	found, err := uc.employees.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.NewBusinessError("uno o más empleados no existen")
	}
	return uc.repo.SetEmployees(order.ID, ids)
}

func (uc *RepairOrderUseCase) assignTags(order *entity.RepairOrder, ids []int64) error {
	found, err := uc.tags.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.NewBusinessError("una o más etiquetas no existen")
	}
	return uc.repo.SetTags(order.ID, ids)
}

// GetByID obtiene una orden con cliente, vehículo, empleados y etiquetas.
func (uc *RepairOrderUseCase) GetByID(id int64) (*dto.RepairOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRepairOrderResponse(order)
	return &resp, nil
}

// List lista órdenes con filtros y paginación.
func (uc *RepairOrderUseCase) List(filter repository.RepairOrderFilter, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	filter.Limit = page.Size
	filter.Offset = page.Offset()
	orders, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewRepairOrderResponses(orders), total, page)
	return &out, nil
}

// Board tablero Kanban: todas las órdenes agrupadas por estado, columnas en
// orden fijo incluidas las vacías.
func (uc *RepairOrderUseCase) Board() (*dto.KanbanBoardResponse, error) {
	byStatus, err := uc.repo.ListByStatus()
	if err != nil {
		return nil, err
	}
	board := dto.NewKanbanBoardResponse(byStatus)
	return &board, nil
}

// Update edita los datos de una orden, su asignación de empleados y etiquetas.
func (uc *RepairOrderUseCase) Update(id int64, in dto.UpdateRepairOrderRequest) (*dto.RepairOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		order.Title = *in.Title
	}
	if in.Reason != nil {
		order.Reason = *in.Reason
	}
	if in.ClientSource != nil {
		order.ClientSource = *in.ClientSource
	}
	if in.MechanicNotes != nil {
		order.MechanicNotes = *in.MechanicNotes
	}
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	if in.EmployeeIDs != nil {
		if err := uc.assignEmployees(order, in.EmployeeIDs); err != nil {
			return nil, err
		}
	}
	if in.TagIDs != nil {
		if err := uc.assignTags(order, in.TagIDs); err != nil {
			return nil, err
		}
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRepairOrderResponse(updated)
	return &resp, nil
}

// UpdateStatus mueve una orden de columna en el tablero. Los estados iniciales
// no son destino válido.
func (uc *RepairOrderUseCase) UpdateStatus(id int64, in dto.UpdateRepairOrderStatusRequest) (*dto.RepairOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := entity.CanSetRepairOrderStatus(in.Status); err != nil {
		return nil, domain.NewBusinessError(err.Error())
	}
	if err := uc.repo.UpdateStatus(order.ID, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	resp := dto.NewRepairOrderResponse(order)
	return &resp, nil
}

// Delete elimina una orden de trabajo.
func (uc *RepairOrderUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}
