package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// TagRepository define el puerto de persistencia para Tag.
type TagRepository interface {
	Create(tag *entity.Tag) error
	GetByID(id int64) (*entity.Tag, error)
	GetByIDs(ids []int64) ([]*entity.Tag, error)
	List() ([]*entity.Tag, error)
	Update(tag *entity.Tag) error
	Delete(id int64) error
}
