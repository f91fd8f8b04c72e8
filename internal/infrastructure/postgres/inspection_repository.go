package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var (
	_ repository.InspectionRepository         = (*InspectionRepo)(nil)
	_ repository.InspectionTemplateRepository = (*InspectionTemplateRepo)(nil)
	_ repository.CommonProblemRepository      = (*CommonProblemRepo)(nil)
)

const inspectionColumns = `id, repair_order_id, template_id, employee_id, observations, created_at, updated_at`

// InspectionRepo implementación de InspectionRepository.
type InspectionRepo struct {
	q Querier
}

func NewInspectionRepository(q Querier) *InspectionRepo {
	return &InspectionRepo{q: q}
}

func scanInspection(row pgx.Row) (*entity.Inspection, error) {
	var i entity.Inspection
	err := row.Scan(&i.ID, &i.RepairOrderID, &i.TemplateID, &i.EmployeeID,
		&i.Observations, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan inspection: %w", err)
	}
	return &i, nil
}

func (r *InspectionRepo) hydrateItems(inspection *entity.Inspection) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, category, status, notes
		FROM inspection_items WHERE inspection_id = $1 ORDER BY id`, inspection.ID)
	if err != nil {
		return fmt.Errorf("list inspection items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InspectionItem
		it.InspectionID = inspection.ID
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Status, &it.Notes); err != nil {
			return fmt.Errorf("scan inspection item: %w", err)
		}
		inspection.Items = append(inspection.Items, it)
	}
	return rows.Err()
}

func (r *InspectionRepo) insertItems(inspection *entity.Inspection) error {
	for i := range inspection.Items {
		it := &inspection.Items[i]
		it.InspectionID = inspection.ID
		if err := r.q.QueryRow(context.Background(), `
			INSERT INTO inspection_items (inspection_id, name, category, status, notes)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			inspection.ID, it.Name, it.Category, it.Status, it.Notes,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert inspection item: %w", err)
		}
	}
	return nil
}

// Create persiste una inspección con sus puntos. Una orden admite una sola
// inspección (restricción única sobre repair_order_id).
func (r *InspectionRepo) Create(inspection *entity.Inspection) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO inspections (repair_order_id, template_id, employee_id, observations)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		inspection.RepairOrderID, inspection.TemplateID, inspection.EmployeeID, inspection.Observations,
	).Scan(&inspection.ID, &inspection.CreatedAt, &inspection.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inspection: %w", err)
	}
	return r.insertItems(inspection)
}

func (r *InspectionRepo) GetByID(id int64) (*entity.Inspection, error) {
	inspection, err := scanInspection(r.q.QueryRow(context.Background(),
		`SELECT `+inspectionColumns+` FROM inspections WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}

func (r *InspectionRepo) GetByRepairOrder(repairOrderID int64) (*entity.Inspection, error) {
	inspection, err := scanInspection(r.q.QueryRow(context.Background(),
		`SELECT `+inspectionColumns+` FROM inspections WHERE repair_order_id = $1`, repairOrderID))
	if err != nil {
		return nil, err
	}
	if err := r.hydrateItems(inspection); err != nil {
		return nil, err
	}
	return inspection, nil
}

// Update reemplaza cabecera y puntos de una inspección.
func (r *InspectionRepo) Update(inspection *entity.Inspection) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE inspections SET employee_id = $2, observations = $3, updated_at = NOW()
		WHERE id = $1`, inspection.ID, inspection.EmployeeID, inspection.Observations)
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM inspection_items WHERE inspection_id = $1`, inspection.ID); err != nil {
		return fmt.Errorf("clear inspection items: %w", err)
	}
	return r.insertItems(inspection)
}

func (r *InspectionRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM inspections WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete inspection: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InspectionTemplateRepo plantillas de inspección.
type InspectionTemplateRepo struct {
	q Querier
}

func NewInspectionTemplateRepository(q Querier) *InspectionTemplateRepo {
	return &InspectionTemplateRepo{q: q}
}

func (r *InspectionTemplateRepo) hydrateItems(tpl *entity.InspectionTemplate) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, category, position
		FROM inspection_template_items WHERE template_id = $1 ORDER BY position, id`, tpl.ID)
	if err != nil {
		return fmt.Errorf("list template items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InspectionTemplateItem
		it.TemplateID = tpl.ID
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Position); err != nil {
			return fmt.Errorf("scan template item: %w", err)
		}
		tpl.Items = append(tpl.Items, it)
	}
	return rows.Err()
}

func (r *InspectionTemplateRepo) insertItems(tpl *entity.InspectionTemplate) error {
	for i := range tpl.Items {
		it := &tpl.Items[i]
		it.TemplateID = tpl.ID
		if err := r.q.QueryRow(context.Background(), `
			INSERT INTO inspection_template_items (template_id, name, category, position)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			tpl.ID, it.Name, it.Category, it.Position,
		).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert template item: %w", err)
		}
	}
	return nil
}

func (r *InspectionTemplateRepo) Create(template *entity.InspectionTemplate) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO inspection_templates (name, vehicle_type_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		template.Name, template.VehicleTypeID,
	).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inspection template: %w", err)
	}
	return r.insertItems(template)
}

func (r *InspectionTemplateRepo) GetByID(id int64) (*entity.InspectionTemplate, error) {
	var tpl entity.InspectionTemplate
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, vehicle_type_id, created_at, updated_at
		FROM inspection_templates WHERE id = $1`, id,
	).Scan(&tpl.ID, &tpl.Name, &tpl.VehicleTypeID, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inspection template: %w", err)
	}
	if err := r.hydrateItems(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *InspectionTemplateRepo) List() ([]*entity.InspectionTemplate, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, vehicle_type_id, created_at, updated_at
		FROM inspection_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list inspection templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.InspectionTemplate
	for rows.Next() {
		var tpl entity.InspectionTemplate
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.VehicleTypeID, &tpl.CreatedAt, &tpl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inspection template: %w", err)
		}
		list = append(list, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, tpl := range list {
		if err := r.hydrateItems(tpl); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *InspectionTemplateRepo) Update(template *entity.InspectionTemplate) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE inspection_templates SET name = $2, vehicle_type_id = $3, updated_at = NOW()
		WHERE id = $1`, template.ID, template.Name, template.VehicleTypeID)
	if err != nil {
		return fmt.Errorf("update inspection template: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM inspection_template_items WHERE template_id = $1`, template.ID); err != nil {
		return fmt.Errorf("clear template items: %w", err)
	}
	return r.insertItems(template)
}

func (r *InspectionTemplateRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM inspection_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inspection template: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CommonProblemRepo problemas frecuentes.
type CommonProblemRepo struct {
	q Querier
}

func NewCommonProblemRepository(q Querier) *CommonProblemRepo {
	return &CommonProblemRepo{q: q}
}

func (r *CommonProblemRepo) Create(problem *entity.CommonProblem) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO common_problems (description, category)
		VALUES ($1, $2) RETURNING id`,
		problem.Description, problem.Category,
	).Scan(&problem.ID)
	if err != nil {
		return fmt.Errorf("insert common problem: %w", err)
	}
	return nil
}

func (r *CommonProblemRepo) List() ([]*entity.CommonProblem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, description, category FROM common_problems ORDER BY category, description`)
	if err != nil {
		return nil, fmt.Errorf("list common problems: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommonProblem
	for rows.Next() {
		var p entity.CommonProblem
		if err := rows.Scan(&p.ID, &p.Description, &p.Category); err != nil {
			return nil, fmt.Errorf("scan common problem: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *CommonProblemRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM common_problems WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete common problem: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
