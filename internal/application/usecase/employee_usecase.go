package usecase

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados y sus roles.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	roles repository.RoleRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, roles repository.RoleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, roles: roles}
}

func (uc *EmployeeUseCase) resolveRoles(roleIDs []int64) ([]entity.Role, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	roles, err := uc.roles.GetByIDs(roleIDs)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(roleIDs) {
		return nil, domain.NewBusinessError("uno o más roles no existen")
	}
	out := make([]entity.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, *r)
	}
	return out, nil
}

// Create registra un empleado en estado ACTIVO.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	roles, err := uc.resolveRoles(in.RoleIDs)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		DNI:           in.DNI,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Province:      in.Province,
		City:          in.City,
		Country:       in.Country,
		MaritalStatus: in.MaritalStatus,
		ChildrenCount: in.ChildrenCount,
		EntryDate:     in.EntryDate,
		Status:        entity.EmployeeStatusActivo,
		Roles:         roles,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(employee)
	return &resp, nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(employee)
	return &resp, nil
}

// List lista empleados con búsqueda, filtro por estado o rol y paginación.
func (uc *EmployeeUseCase) List(filter repository.EmployeeFilter, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	filter.Limit = page.Size
	filter.Offset = page.Offset()
	employees, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := dto.NewPage(dto.NewEmployeeResponses(employees), total, page)
	return &out, nil
}

// Update actualiza un empleado.
func (uc *EmployeeUseCase) Update(id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		employee.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		employee.LastName = *in.LastName
	}
	if in.DNI != nil {
		employee.DNI = *in.DNI
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Address != nil {
		employee.Address = *in.Address
	}
	if in.Province != nil {
		employee.Province = *in.Province
	}
	if in.City != nil {
		employee.City = *in.City
	}
	if in.Country != nil {
		employee.Country = *in.Country
	}
	if in.MaritalStatus != nil {
		employee.MaritalStatus = *in.MaritalStatus
	}
	if in.ChildrenCount != nil {
		employee.ChildrenCount = *in.ChildrenCount
	}
	if in.EntryDate != nil {
		employee.EntryDate = in.EntryDate
	}
	if in.Status != nil {
		if !entity.IsValidEmployeeStatus(*in.Status) {
			return nil, domain.NewBusinessError("estado de empleado inválido: " + *in.Status)
		}
		employee.Status = *in.Status
	}
	if in.RoleIDs != nil {
		roles, err := uc.resolveRoles(in.RoleIDs)
		if err != nil {
			return nil, err
		}
		employee.Roles = roles
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	resp := dto.NewEmployeeResponse(employee)
	return &resp, nil
}

// Delete da de baja un empleado.
func (uc *EmployeeUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// ListRoles catálogo de roles.
func (uc *EmployeeUseCase) ListRoles() ([]dto.RoleResponse, error) {
	roles, err := uc.roles.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}
