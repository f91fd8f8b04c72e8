package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id int64) (*entity.Payment, error)
	ListByInvoice(invoiceID int64) ([]*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id int64) error
	SumByInvoice(invoiceID int64) (decimal.Decimal, error)
	SumCollectedBetween(from, to time.Time) (decimal.Decimal, error)
	SumByMethodBetween(from, to time.Time) (map[string]decimal.Decimal, error)
}

// PaymentAuditRepository registro de auditoría de pagos, solo inserción y lectura.
type PaymentAuditRepository interface {
	Append(log *entity.PaymentAuditLog) error
	ListByInvoice(invoiceID int64) ([]*entity.PaymentAuditLog, error)
}

// BankAccountRepository define el puerto de persistencia para BankAccount.
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id int64) (*entity.BankAccount, error)
	List(onlyActive bool) ([]*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	Delete(id int64) error
}

// BankRepository catálogo de bancos.
type BankRepository interface {
	List() ([]*entity.Bank, error)
}
