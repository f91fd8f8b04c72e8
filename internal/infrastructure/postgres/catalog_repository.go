package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autotech/taller-api/internal/domain"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO products (name, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		product.Name, product.Description, product.Quantity, product.UnitPrice,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, description, quantity, unit_price, created_at, updated_at
		FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con búsqueda por nombre.
func (r *ProductRepo) List(filter repository.CatalogFilter) ([]*entity.Product, int64, error) {
	where := ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products`+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, description, quantity, unit_price, created_at, updated_at
		FROM products`+where+` ORDER BY name LIMIT $2 OFFSET $3`,
		filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.UnitPrice,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE products SET name = $2, description = $3, quantity = $4, unit_price = $5,
			updated_at = NOW()
		WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Quantity, product.UnitPrice)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.CatalogServiceRepository = (*CatalogServiceRepo)(nil)

// CatalogServiceRepo implementación de CatalogServiceRepository.
type CatalogServiceRepo struct {
	q Querier
}

// NewCatalogServiceRepository construye el adaptador.
func NewCatalogServiceRepository(q Querier) *CatalogServiceRepo {
	return &CatalogServiceRepo{q: q}
}

// Create persiste un servicio.
func (r *CatalogServiceRepo) Create(service *entity.CatalogService) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO catalog_services (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		service.Name, service.Description, service.Price,
	).Scan(&service.ID, &service.CreatedAt, &service.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *CatalogServiceRepo) GetByID(id int64) (*entity.CatalogService, error) {
	var s entity.CatalogService
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, description, price, created_at, updated_at
		FROM catalog_services WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List lista servicios con búsqueda por nombre.
func (r *CatalogServiceRepo) List(filter repository.CatalogFilter) ([]*entity.CatalogService, int64, error) {
	where := ` WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM catalog_services`+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, description, price, created_at, updated_at
		FROM catalog_services`+where+` ORDER BY name LIMIT $2 OFFSET $3`,
		filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.CatalogService
	for rows.Next() {
		var s entity.CatalogService
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// Update actualiza un servicio.
func (r *CatalogServiceRepo) Update(service *entity.CatalogService) error {
	res, err := r.q.Exec(context.Background(), `
		UPDATE catalog_services SET name = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $1`,
		service.ID, service.Name, service.Description, service.Price)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un servicio.
func (r *CatalogServiceRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM catalog_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.CannedJobRepository = (*CannedJobRepo)(nil)

// CannedJobRepo implementación de CannedJobRepository.
type CannedJobRepo struct {
	q Querier
}

// NewCannedJobRepository construye el adaptador.
func NewCannedJobRepository(q Querier) *CannedJobRepo {
	return &CannedJobRepo{q: q}
}

// Create persiste un trabajo predefinido con sus líneas.
func (r *CannedJobRepo) Create(job *entity.CannedJob) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO canned_jobs (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		job.Title, job.Description,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert canned job: %w", err)
	}
	return r.saveLines(job)
}

func (r *CannedJobRepo) saveLines(job *entity.CannedJob) error {
	ctx := context.Background()
	for i := range job.Services {
		s := &job.Services[i]
		if err := r.q.QueryRow(ctx, `
			INSERT INTO canned_job_services (canned_job_id, service_name, price)
			VALUES ($1, $2, $3) RETURNING id`,
			job.ID, s.ServiceName, s.Price).Scan(&s.ID); err != nil {
			return fmt.Errorf("insert canned job service: %w", err)
		}
	}
	for i := range job.Products {
		p := &job.Products[i]
		if err := r.q.QueryRow(ctx, `
			INSERT INTO canned_job_products (canned_job_id, product_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			job.ID, p.ProductName, p.Quantity, p.UnitPrice).Scan(&p.ID); err != nil {
			return fmt.Errorf("insert canned job product: %w", err)
		}
	}
	return nil
}

func (r *CannedJobRepo) hydrateLines(job *entity.CannedJob) error {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, service_name, price FROM canned_job_services
		WHERE canned_job_id = $1 ORDER BY id`, job.ID)
	if err != nil {
		return fmt.Errorf("list canned job services: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.CannedJobService
		if err := rows.Scan(&s.ID, &s.ServiceName, &s.Price); err != nil {
			return fmt.Errorf("scan canned job service: %w", err)
		}
		job.Services = append(job.Services, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	prows, err := r.q.Query(ctx, `
		SELECT id, product_name, quantity, unit_price FROM canned_job_products
		WHERE canned_job_id = $1 ORDER BY id`, job.ID)
	if err != nil {
		return fmt.Errorf("list canned job products: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p entity.CannedJobProduct
		if err := prows.Scan(&p.ID, &p.ProductName, &p.Quantity, &p.UnitPrice); err != nil {
			return fmt.Errorf("scan canned job product: %w", err)
		}
		job.Products = append(job.Products, p)
	}
	return prows.Err()
}

// GetByID obtiene un trabajo predefinido con sus líneas.
func (r *CannedJobRepo) GetByID(id int64) (*entity.CannedJob, error) {
	var j entity.CannedJob
	err := r.q.QueryRow(context.Background(), `
		SELECT id, title, description, created_at, updated_at
		FROM canned_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Title, &j.Description, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get canned job: %w", err)
	}
	if err := r.hydrateLines(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// List lista trabajos predefinidos con búsqueda por título.
func (r *CannedJobRepo) List(filter repository.CatalogFilter) ([]*entity.CannedJob, int64, error) {
	where := ` WHERE ($1 = '' OR title ILIKE '%' || $1 || '%')`

	var total int64
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM canned_jobs`+where, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count canned jobs: %w", err)
	}

	rows, err := r.q.Query(context.Background(), `
		SELECT id, title, description, created_at, updated_at
		FROM canned_jobs`+where+` ORDER BY title LIMIT $2 OFFSET $3`,
		filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list canned jobs: %w", err)
	}
	defer rows.Close()

	var list []*entity.CannedJob
	for rows.Next() {
		var j entity.CannedJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan canned job: %w", err)
		}
		list = append(list, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, j := range list {
		if err := r.hydrateLines(j); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

// Update actualiza un trabajo predefinido y reemplaza sus líneas.
func (r *CannedJobRepo) Update(job *entity.CannedJob) error {
	ctx := context.Background()
	res, err := r.q.Exec(ctx, `
		UPDATE canned_jobs SET title = $2, description = $3, updated_at = NOW()
		WHERE id = $1`, job.ID, job.Title, job.Description)
	if err != nil {
		return fmt.Errorf("update canned job: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM canned_job_services WHERE canned_job_id = $1`, job.ID); err != nil {
		return fmt.Errorf("clear canned job services: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM canned_job_products WHERE canned_job_id = $1`, job.ID); err != nil {
		return fmt.Errorf("clear canned job products: %w", err)
	}
	return r.saveLines(job)
}

// Delete elimina un trabajo predefinido.
func (r *CannedJobRepo) Delete(id int64) error {
	res, err := r.q.Exec(context.Background(), `DELETE FROM canned_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete canned job: %w", err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
