package usecase

import (
	"github.com/autotech/taller-api/internal/application/dto"
	"github.com/autotech/taller-api/internal/domain/entity"
	"github.com/autotech/taller-api/internal/domain/repository"
)

// CatalogUseCase casos de uso del catálogo del taller: productos, servicios,
// trabajos predefinidos y etiquetas.
type CatalogUseCase struct {
	products repository.ProductRepository
	services repository.CatalogServiceRepository
	jobs     repository.CannedJobRepository
	tags     repository.TagRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	products repository.ProductRepository,
	services repository.CatalogServiceRepository,
	jobs repository.CannedJobRepository,
	tags repository.TagRepository,
) *CatalogUseCase {
	return &CatalogUseCase{products: products, services: services, jobs: jobs, tags: tags}
}

// CreateProduct crea un producto del catálogo.
func (uc *CatalogUseCase) CreateProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// ListProducts lista productos con búsqueda y paginación.
func (uc *CatalogUseCase) ListProducts(search string, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	products, total, err := uc.products.List(repository.CatalogFilter{
		Search: search,
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	result := dto.NewPage(out, total, page)
	return &result, nil
}

// UpdateProduct actualiza un producto.
func (uc *CatalogUseCase) UpdateProduct(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// DeleteProduct elimina un producto.
func (uc *CatalogUseCase) DeleteProduct(id int64) error {
	if _, err := uc.products.GetByID(id); err != nil {
		return err
	}
	return uc.products.Delete(id)
}

// CreateService crea un servicio del catálogo.
func (uc *CatalogUseCase) CreateService(in dto.CreateCatalogServiceRequest) (*dto.CatalogServiceResponse, error) {
	service := &entity.CatalogService{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := uc.services.Create(service); err != nil {
		return nil, err
	}
	resp := dto.NewCatalogServiceResponse(service)
	return &resp, nil
}

// ListServices lista servicios con búsqueda y paginación.
func (uc *CatalogUseCase) ListServices(search string, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	services, total, err := uc.services.List(repository.CatalogFilter{
		Search: search,
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, dto.NewCatalogServiceResponse(s))
	}
	result := dto.NewPage(out, total, page)
	return &result, nil
}

// UpdateService actualiza un servicio.
func (uc *CatalogUseCase) UpdateService(id int64, in dto.UpdateCatalogServiceRequest) (*dto.CatalogServiceResponse, error) {
	service, err := uc.services.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if err := uc.services.Update(service); err != nil {
		return nil, err
	}
	resp := dto.NewCatalogServiceResponse(service)
	return &resp, nil
}

// DeleteService elimina un servicio.
func (uc *CatalogUseCase) DeleteService(id int64) error {
	if _, err := uc.services.GetByID(id); err != nil {
		return err
	}
	return uc.services.Delete(id)
}

// CreateCannedJob crea un trabajo predefinido.
func (uc *CatalogUseCase) CreateCannedJob(in dto.CreateCannedJobRequest) (*dto.CannedJobResponse, error) {
	job := &entity.CannedJob{Title: in.Title, Description: in.Description}
	for _, s := range in.Services {
		job.Services = append(job.Services, entity.CannedJobService{ServiceName: s.ServiceName, Price: s.Price})
	}
	for _, p := range in.Products {
		job.Products = append(job.Products, entity.CannedJobProduct{ProductName: p.ProductName, Quantity: p.Quantity, UnitPrice: p.UnitPrice})
	}
	if err := uc.jobs.Create(job); err != nil {
		return nil, err
	}
	resp := dto.NewCannedJobResponse(job)
	return &resp, nil
}

// GetCannedJob obtiene un trabajo predefinido con sus líneas.
func (uc *CatalogUseCase) GetCannedJob(id int64) (*dto.CannedJobResponse, error) {
	job, err := uc.jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCannedJobResponse(job)
	return &resp, nil
}

// ListCannedJobs lista trabajos predefinidos.
func (uc *CatalogUseCase) ListCannedJobs(search string, page dto.PageRequest) (*dto.Page, error) {
	page.DefaultPage()
	jobs, total, err := uc.jobs.List(repository.CatalogFilter{
		Search: search,
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CannedJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.NewCannedJobResponse(j))
	}
	result := dto.NewPage(out, total, page)
	return &result, nil
}

// DeleteCannedJob elimina un trabajo predefinido.
func (uc *CatalogUseCase) DeleteCannedJob(id int64) error {
	if _, err := uc.jobs.GetByID(id); err != nil {
		return err
	}
	return uc.jobs.Delete(id)
}

// ListTags lista las etiquetas del taller.
func (uc *CatalogUseCase) ListTags() ([]dto.TagResponse, error) {
	tags, err := uc.tags.List()
	if err != nil {
		return nil, err
	}
	return dto.NewTagResponses(tags), nil
}

// CreateTag crea una etiqueta.
func (uc *CatalogUseCase) CreateTag(in dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag := &entity.Tag{Name: in.Name, Color: in.Color}
	if err := uc.tags.Create(tag); err != nil {
		return nil, err
	}
	return &dto.TagResponse{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

// DeleteTag elimina una etiqueta.
func (uc *CatalogUseCase) DeleteTag(id int64) error {
	if _, err := uc.tags.GetByID(id); err != nil {
		return err
	}
	return uc.tags.Delete(id)
}
