package repository

import "github.com/autotech/taller-api/internal/domain/entity"

// CatalogFilter criterios de búsqueda de productos y servicios del catálogo.
type CatalogFilter struct {
	Search string
	Limit  int
	Offset int
}

// ProductRepository define el puerto de persistencia para Product (repuestos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List(filter CatalogFilter) ([]*entity.Product, int64, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}

// CatalogServiceRepository define el puerto de persistencia para los servicios
// ofrecidos por el taller.
type CatalogServiceRepository interface {
	Create(service *entity.CatalogService) error
	GetByID(id int64) (*entity.CatalogService, error)
	List(filter CatalogFilter) ([]*entity.CatalogService, int64, error)
	Update(service *entity.CatalogService) error
	Delete(id int64) error
}

// CannedJobRepository define el puerto de persistencia para trabajos
// predefinidos (combinaciones reutilizables de servicios y repuestos).
type CannedJobRepository interface {
	Create(job *entity.CannedJob) error
	GetByID(id int64) (*entity.CannedJob, error)
	List(filter CatalogFilter) ([]*entity.CannedJob, int64, error)
	Update(job *entity.CannedJob) error
	Delete(id int64) error
}
