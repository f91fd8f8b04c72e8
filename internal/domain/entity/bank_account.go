package entity

import "time"

// Bank banco del catálogo de bancos.
type Bank struct {
	ID   int64
	Name string
	Code string
}

// BankAccount cuenta bancaria del taller donde se reciben pagos.
type BankAccount struct {
	ID            int64
	BankID        int64
	AccountNumber string
	AccountType   string
	HolderName    string
	Alias         string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Bank *Bank
}
