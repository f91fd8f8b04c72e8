package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateTagRequest entrada para crear una etiqueta.
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Color string `json:"color" validate:"required,max=20"`
}

// TagResponse salida de una etiqueta.
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewTagResponses proyecta una lista de etiquetas.
func NewTagResponses(tags []*entity.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return out
}

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewProductResponse proyecta la entidad al DTO de salida.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateCatalogServiceRequest entrada para crear un servicio del catálogo.
type CreateCatalogServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateCatalogServiceRequest entrada para actualizar un servicio.
type UpdateCatalogServiceRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// CatalogServiceResponse salida de un servicio del catálogo.
type CatalogServiceResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewCatalogServiceResponse proyecta la entidad al DTO de salida.
func NewCatalogServiceResponse(s *entity.CatalogService) CatalogServiceResponse {
	return CatalogServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// CannedJobServiceDTO línea de servicio de un trabajo predefinido.
type CannedJobServiceDTO struct {
	ServiceName string          `json:"serviceName" validate:"required"`
	Price       decimal.Decimal `json:"price"`
}

// CannedJobProductDTO línea de producto de un trabajo predefinido.
type CannedJobProductDTO struct {
	ProductName string          `json:"productName" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateCannedJobRequest entrada para crear un trabajo predefinido.
type CreateCannedJobRequest struct {
	Title       string                `json:"title" validate:"required,min=1,max=200"`
	Description string                `json:"description"`
	Services    []CannedJobServiceDTO `json:"services"`
	Products    []CannedJobProductDTO `json:"products"`
}

// CannedJobResponse salida de un trabajo predefinido.
type CannedJobResponse struct {
	ID          int64                 `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Services    []CannedJobServiceDTO `json:"services"`
	Products    []CannedJobProductDTO `json:"products"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// NewCannedJobResponse proyecta la entidad al DTO de salida.
func NewCannedJobResponse(j *entity.CannedJob) CannedJobResponse {
	services := make([]CannedJobServiceDTO, 0, len(j.Services))
	for _, s := range j.Services {
		services = append(services, CannedJobServiceDTO{ServiceName: s.ServiceName, Price: s.Price})
	}
	products := make([]CannedJobProductDTO, 0, len(j.Products))
	for _, p := range j.Products {
		products = append(products, CannedJobProductDTO{ProductName: p.ProductName, Quantity: p.Quantity, UnitPrice: p.UnitPrice})
	}
	return CannedJobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Services:    services,
		Products:    products,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
