package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// InvoiceFilter criterios de búsqueda del listado de facturas.
type InvoiceFilter struct {
	Search   string
	Status   string
	ClientID *int64
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	GetByRepairOrder(repairOrderID int64) (*entity.Invoice, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, int64, error)
	ListUnpaid() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	UpdateStatus(id int64, status string, paidAmount decimal.Decimal) error
	NextNumber() (string, error)
	Delete(id int64) error
	SumInvoicedBetween(from, to time.Time) (decimal.Decimal, error)
}
