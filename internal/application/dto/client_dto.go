package dto

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	FirstName      string `json:"firstName" validate:"required,min=1,max=100"`
	LastName       string `json:"lastName" validate:"max=100"`
	DNI            string `json:"dni" validate:"max=20"`
	CommercialName string `json:"commercialName" validate:"max=200"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"max=30"`
	Address        string `json:"address"`
	Province       string `json:"province"`
	Country        string `json:"country"`
	ClientType     string `json:"clientType" validate:"required"`
}

// UpgradeClientRequest entrada para promover un cliente temporal a registrado.
type UpgradeClientRequest struct {
	ClientType     string `json:"clientType" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	DNI            string `json:"dni" validate:"required,max=20"`
	CommercialName string `json:"commercialName"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address"`
	Province       string `json:"province"`
	Country        string `json:"country"`
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"lastName"`
	DNI            *string `json:"dni"`
	CommercialName *string `json:"commercialName"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Province       *string `json:"province"`
	Country        *string `json:"country"`
	ClientType     *string `json:"clientType"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	FullName       string     `json:"fullName"`
	DNI            string     `json:"dni"`
	CommercialName string     `json:"commercialName,omitempty"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address,omitempty"`
	Province       string     `json:"province,omitempty"`
	Country        string     `json:"country,omitempty"`
	ClientType     string     `json:"clientType"`
	EntryDate      *time.Time `json:"entryDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewClientResponse proyecta la entidad al DTO de salida.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		FullName:       c.FullName(),
		DNI:            c.DNI,
		CommercialName: c.CommercialName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Province:       c.Province,
		Country:        c.Country,
		ClientType:     c.ClientType,
		EntryDate:      c.EntryDate,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewClientResponses proyecta una lista de entidades.
func NewClientResponses(clients []*entity.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, NewClientResponse(c))
	}
	return out
}
