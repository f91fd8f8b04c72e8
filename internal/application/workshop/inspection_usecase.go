package workshop

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// InspectionUseCase casos de uso de inspecciones de ingreso y sus plantillas.
type InspectionUseCase struct {
	repo      repository.InspectionRepository
	templates repository.InspectionTemplateRepository
	orders    repository.RepairOrderRepository
	problems  repository.CommonProblemRepository
}

// NewInspectionUseCase construye el caso de uso.
func NewInspectionUseCase(
	repo repository.InspectionRepository,
	templates repository.InspectionTemplateRepository,
	orders repository.RepairOrderRepository,
	problems repository.CommonProblemRepository,
) *InspectionUseCase {
	return &InspectionUseCase{repo: repo, templates: templates, orders: orders, problems: problems}
}

func validateItems(items []dto.InspectionItemDTO) ([]entity.InspectionItem, error) {
	out := make([]entity.InspectionItem, 0, len(items))
	for _, it := range items {
		if !entity.IsValidInspectionItemStatus(it.Status) {
			return nil, domain.NewBusinessError("resultado de inspección inválido: " + it.Status)
		}
		out = append(out, entity.InspectionItem{
			Name:     it.Name,
			Category: it.Category,
			Status:   it.Status,
			Notes:    it.Notes,
		})
	}
	return out, nil
}

// Create registra la inspección de ingreso de una orden. Cada orden admite una
// sola inspección.
func (uc *InspectionUseCase) Create(in dto.CreateInspectionRequest) (*dto.InspectionResponse, error) {
	if _, err := uc.orders.GetByID(in.RepairOrderID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByRepairOrder(in.RepairOrderID)
	if err != nil && err != domain.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	items, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	inspection := &entity.Inspection{
		RepairOrderID: in.RepairOrderID,
		TemplateID:    in.TemplateID,
		EmployeeID:    in.EmployeeID,
		Items:         items,
		Observations:  in.Observations,
	}
	if err := uc.repo.Create(inspection); err != nil {
		return nil, err
	}
	resp := dto.NewInspectionResponse(inspection)
	return &resp, nil
}

// GetByRepairOrder obtiene la inspección de una orden.
func (uc *InspectionUseCase) GetByRepairOrder(repairOrderID int64) (*dto.InspectionResponse, error) {
	inspection, err := uc.repo.GetByRepairOrder(repairOrderID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInspectionResponse(inspection)
	return &resp, nil
}

// Update corrige los resultados de una inspección.
func (uc *InspectionUseCase) Update(id int64, in dto.UpdateInspectionRequest) (*dto.InspectionResponse, error) {
	inspection, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Items != nil {
		items, err := validateItems(in.Items)
		if err != nil {
			return nil, err
		}
		inspection.Items = items
	}
	if in.Observations != nil {
		inspection.Observations = *in.Observations
	}
	if err := uc.repo.Update(inspection); err != nil {
		return nil, err
	}
	resp := dto.NewInspectionResponse(inspection)
	return &resp, nil
}

// Delete elimina una inspección.
func (uc *InspectionUseCase) Delete(id int64) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// CreateTemplate crea una plantilla de inspección.
func (uc *InspectionUseCase) CreateTemplate(in dto.CreateInspectionTemplateRequest) (*dto.InspectionTemplateResponse, error) {
	template := &entity.InspectionTemplate{
		Name:          in.Name,
		VehicleTypeID: in.VehicleTypeID,
	}
	for _, it := range in.Items {
		template.Items = append(template.Items, entity.InspectionTemplateItem{
			Name:     it.Name,
			Category: it.Category,
			Position: it.Position,
		})
	}
	if err := uc.templates.Create(template); err != nil {
		return nil, err
	}
	resp := dto.NewInspectionTemplateResponse(template)
	return &resp, nil
}

// GetTemplate obtiene una plantilla por ID.
func (uc *InspectionUseCase) GetTemplate(id int64) (*dto.InspectionTemplateResponse, error) {
	template, err := uc.templates.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInspectionTemplateResponse(template)
	return &resp, nil
}

// UpdateTemplate edita una plantilla; si vienen ítems reemplazan el listado.
func (uc *InspectionUseCase) UpdateTemplate(id int64, in dto.UpdateInspectionTemplateRequest) (*dto.InspectionTemplateResponse, error) {
	template, err := uc.templates.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		template.Name = *in.Name
	}
	if in.VehicleTypeID != nil {
		template.VehicleTypeID = in.VehicleTypeID
	}
	if in.Items != nil {
		template.Items = nil
		for _, it := range in.Items {
			template.Items = append(template.Items, entity.InspectionTemplateItem{
				Name:     it.Name,
				Category: it.Category,
				Position: it.Position,
			})
		}
	}
	if err := uc.templates.Update(template); err != nil {
		return nil, err
	}
	resp := dto.NewInspectionTemplateResponse(template)
	return &resp, nil
}

// DuplicateTemplate crea una copia de la plantilla para editarla aparte.
func (uc *InspectionUseCase) DuplicateTemplate(id int64) (*dto.InspectionTemplateResponse, error) {
	original, err := uc.templates.GetByID(id)
	if err != nil {
		return nil, err
	}
	copyTemplate := &entity.InspectionTemplate{
		Name:          original.Name + " (copia)",
		VehicleTypeID: original.VehicleTypeID,
	}
	for _, it := range original.Items {
		copyTemplate.Items = append(copyTemplate.Items, entity.InspectionTemplateItem{
			Name:     it.Name,
			Category: it.Category,
			Position: it.Position,
		})
	}
	if err := uc.templates.Create(copyTemplate); err != nil {
		return nil, err
	}
	resp := dto.NewInspectionTemplateResponse(copyTemplate)
	return &resp, nil
}

// ListTemplates lista las plantillas de inspección.
func (uc *InspectionUseCase) ListTemplates() ([]dto.InspectionTemplateResponse, error) {
	templates, err := uc.templates.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InspectionTemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, dto.NewInspectionTemplateResponse(t))
	}
	return out, nil
}

// DeleteTemplate elimina una plantilla.
func (uc *InspectionUseCase) DeleteTemplate(id int64) error {
	if _, err := uc.templates.GetByID(id); err != nil {
		return err
	}
	return uc.templates.Delete(id)
}

// ListCommonProblems problemas frecuentes para redactar presupuestos.
func (uc *InspectionUseCase) ListCommonProblems() ([]*entity.CommonProblem, error) {
	return uc.problems.List()
}

// CreateCommonProblem agrega un problema frecuente.
func (uc *InspectionUseCase) CreateCommonProblem(description, category string) (*entity.CommonProblem, error) {
	if description == "" {
		return nil, domain.ErrInvalidInput
	}
	problem := &entity.CommonProblem{Description: description, Category: category}
	if err := uc.problems.Create(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// DeleteCommonProblem elimina un problema frecuente.
func (uc *InspectionUseCase) DeleteCommonProblem(id int64) error {
	return uc.problems.Delete(id)
}
