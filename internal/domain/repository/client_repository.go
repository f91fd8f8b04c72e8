package repository

import (
	"time"

	"github.com/autotech/taller-api/internal/domain/entity"
)

// ClientFilter criterios de búsqueda del listado de clientes.
type ClientFilter struct {
	Search     string
	ClientType string
	Limit      int
	Offset     int
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	GetByDNI(dni string) (*entity.Client, error)
	List(filter ClientFilter) ([]*entity.Client, int64, error)
	Update(client *entity.Client) error
	Delete(id int64) error
	CountCreatedBetween(from, to time.Time) (int64, error)
}
