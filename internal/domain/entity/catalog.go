package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product repuesto o insumo del catálogo, con stock simple.
type Product struct {
	ID          int64
	Name        string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogService mano de obra o servicio del catálogo.
type CatalogService struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CannedJobService línea de servicio dentro de un trabajo predefinido.
type CannedJobService struct {
	ID          int64
	ServiceName string
	Price       decimal.Decimal
}

// CannedJobProduct línea de producto dentro de un trabajo predefinido.
type CannedJobProduct struct {
	ID          int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CannedJob trabajo predefinido: paquete reutilizable de servicios y productos.
type CannedJob struct {
	ID          int64
	Title       string
	Description string
	Services    []CannedJobService
	Products    []CannedJobProduct
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
