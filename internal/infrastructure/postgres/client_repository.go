package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, first_name, last_name, dni, commercial_name, email, phone,
	address, province, country, client_type, entry_date, created_at, updated_at`

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.DNI, &c.CommercialName, &c.Email, &c.Phone,
		&c.Address, &c.Province, &c.Country, &c.ClientType, &c.EntryDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (first_name, last_name, dni, commercial_name, email, phone,
			address, province, country, client_type, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		client.FirstName, client.LastName, client.DNI, client.CommercialName,
		client.Email, client.Phone, client.Address, client.Province, client.Country,
		client.ClientType, client.EntryDate,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.q.QueryRow(context.Background(), query, id))
}

// GetByDNI obtiene un cliente por documento.
func (r *ClientRepo) GetByDNI(dni string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE dni = $1 AND dni <> ''`
	return scanClient(r.q.QueryRow(context.Background(), query, dni))
}

// List lista clientes con búsqueda por nombre, apellido, documento o teléfono.
func (r *ClientRepo) List(filter repository.ClientFilter) ([]*entity.Client, int64, error) {
	where := `WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%'
			OR last_name ILIKE '%' || $1 || '%'
			OR commercial_name ILIKE '%' || $1 || '%'
			OR dni ILIKE '%' || $1 || '%'
			OR phone ILIKE '%' || $1 || '%')
		AND ($2 = '' OR client_type = $2)`

	var total int64
	countQuery := `SELECT COUNT(*) FROM clients ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, filter.Search, filter.ClientType).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := `SELECT ` + clientColumns + ` FROM clients ` + where + `
		ORDER BY last_name, first_name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query,
		filter.Search, filter.ClientType, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET first_name = $2, last_name = $3, dni = $4, commercial_name = $5,
			email = $6, phone = $7, address = $8, province = $9, country = $10,
			client_type = $11, entry_date = $12, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.FirstName, client.LastName, client.DNI, client.CommercialName,
		client.Email, client.Phone, client.Address, client.Province, client.Country,
		client.ClientType, client.EntryDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountCreatedBetween cantidad de clientes dados de alta en el rango.
func (r *ClientRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clients WHERE created_at >= $1 AND created_at < $2`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count new clients: %w", err)
	}
	return count, nil
}
