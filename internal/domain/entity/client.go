package entity

import "time"

// Tipos de cliente. TEMPORAL es el alta rápida desde el calendario;
// PERSONAL y EMPRESA son clientes registrados con datos completos.
const (
	ClientTypeTemporal = "TEMPORAL"
	ClientTypePersonal = "PERSONAL"
	ClientTypeEmpresa  = "EMPRESA"
)

// Client representa un cliente del taller.
type Client struct {
	ID             int64
	FirstName      string
	LastName       string
	DNI            string
	CommercialName string
	Email          string
	Phone          string
	Address        string
	Province       string
	Country        string
	ClientType     string
	EntryDate      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre y apellido para listados y documentos.
func (c *Client) FullName() string {
	if c == nil {
		return ""
	}
	return c.FirstName + " " + c.LastName
}

// IsValidClientType valida la enumeración de tipos de cliente.
func IsValidClientType(t string) bool {
	switch t {
	case ClientTypeTemporal, ClientTypePersonal, ClientTypeEmpresa:
		return true
	}
	return false
}

// RequiresFullData indica si el tipo exige DNI, dirección, provincia y país.
func RequiresFullData(clientType string) bool {
	return clientType == ClientTypePersonal || clientType == ClientTypeEmpresa
}
