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

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación de TagRepository (usable con pool o tx).
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persiste una etiqueta.
func (r *TagRepo) Create(tag *entity.Tag) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO tags (name, color) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		tag.Name, tag.Color).Scan(&tag.ID, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta por ID.
func (r *TagRepo) GetByID(id int64) (*entity.Tag, error) {
	var t entity.Tag
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, color, created_at, updated_at FROM tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// GetByIDs obtiene varias etiquetas por ID.
func (r *TagRepo) GetByIDs(ids []int64) ([]*entity.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, color, created_at, updated_at FROM tags WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	defer rows.Close()
	return collectTags(rows)
}

// List lista las etiquetas.
func (r *TagRepo) List() ([]*entity.Tag, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, color, created_at, updated_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	return collectTags(rows)
}

func collectTags(rows pgx.Rows) ([]*entity.Tag, error) {
	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una etiqueta.
func (r *TagRepo) Update(tag *entity.Tag) error {
	res, err := r.q.Exec(context.Background(),
		`UPDATE tags SET name = $2, color = $3, updated_at = NOW() WHERE id = $1`,
		tag.ID, tag.Name, tag.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una etiqueta.
func (r *TagRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
