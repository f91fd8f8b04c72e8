package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// InspectionRepository define el puerto de persistencia para Inspection.
type InspectionRepository interface {
	Create(inspection *entity.Inspection) error
	GetByID(id int64) (*entity.Inspection, error)
	GetByRepairOrder(repairOrderID int64) (*entity.Inspection, error)
	Update(inspection *entity.Inspection) error
	Delete(id int64) error
}

// InspectionTemplateRepository plantillas de inspección.
type InspectionTemplateRepository interface {
	Create(template *entity.InspectionTemplate) error
	GetByID(id int64) (*entity.InspectionTemplate, error)
	List() ([]*entity.InspectionTemplate, error)
	Update(template *entity.InspectionTemplate) error
	Delete(id int64) error
}

// CommonProblemRepository problemas frecuentes para presupuestos.
type CommonProblemRepository interface {
	Create(problem *entity.CommonProblem) error
	List() ([]*entity.CommonProblem, error)
	Delete(id int64) error
}
