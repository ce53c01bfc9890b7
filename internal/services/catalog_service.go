package services

import (
	"context"
	"io"

	"coffeepos/internal/domain"
	"coffeepos/internal/infra/storage"
	"coffeepos/internal/repository"

	"go.uber.org/zap"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	CategoryID  *uint64
	SizeID      *uint64
	Status      domain.ProductStatus
}

// UpdateProductInput carries only the fields the caller wants changed;
// nil fields keep their prior values.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	CategoryID  *uint64
	SizeID      *uint64
	Status      *domain.ProductStatus
}

type NamedInput struct {
	Name        string
	Description string
}

type SizeInput struct {
	Name       string
	ExtraPrice *float64
}

type TableInput struct {
	Number int
	Seats  int
	Status domain.TableStatus
}

// CatalogService owns the menu: products, categories, sizes and floor
// tables.
type CatalogService struct {
	products   repository.Store[*domain.Product]
	categories repository.Store[*domain.Category]
	sizes      repository.Store[*domain.Size]
	tables     repository.Store[*domain.Table]
	uploader   storage.Uploader
	log        *zap.Logger
}

func NewCatalogService(
	products repository.Store[*domain.Product],
	categories repository.Store[*domain.Category],
	sizes repository.Store[*domain.Size],
	tables repository.Store[*domain.Table],
	uploader storage.Uploader,
	log *zap.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		sizes:      sizes,
		tables:     tables,
		uploader:   uploader,
		log:        log,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if in.Price < 0 {
		return nil, domain.NewValidationError("price", "must not be negative")
	}
	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		SizeID:      in.SizeID,
		Status:      in.Status,
	}
	if p.Status == "" {
		p.Status = domain.ProductAvailable
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint64, in UpdateProductInput) (*domain.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.NewValidationError("price", "must not be negative")
		}
		p.Price = *in.Price
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}
	if in.SizeID != nil {
		p.SizeID = in.SizeID
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint64) error {
	return s.products.Delete(ctx, id)
}

// AttachProductImage uploads the image to the asset store and saves its
// public URL on the product.
func (s *CatalogService) AttachProductImage(ctx context.Context, id uint64, filename string, content io.Reader) (*domain.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.uploader.Upload(ctx, "products", filename, content)
	if err != nil {
		return nil, err
	}
	p.ImageURL = url
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in NamedInput) (*domain.Category, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	c := &domain.Category{Name: in.Name, Description: in.Description}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint64, in NamedInput) (*domain.Category, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) ListSizes(ctx context.Context) ([]*domain.Size, error) {
	return s.sizes.List(ctx)
}

func (s *CatalogService) CreateSize(ctx context.Context, in SizeInput) (*domain.Size, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	sz := &domain.Size{Name: in.Name}
	if in.ExtraPrice != nil {
		sz.ExtraPrice = *in.ExtraPrice
	}
	if err := s.sizes.Create(ctx, sz); err != nil {
		return nil, err
	}
	return sz, nil
}

func (s *CatalogService) UpdateSize(ctx context.Context, id uint64, in SizeInput) (*domain.Size, error) {
	sz, err := s.sizes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		sz.Name = in.Name
	}
	if in.ExtraPrice != nil {
		sz.ExtraPrice = *in.ExtraPrice
	}
	if err := s.sizes.Save(ctx, sz); err != nil {
		return nil, err
	}
	return sz, nil
}

func (s *CatalogService) DeleteSize(ctx context.Context, id uint64) error {
	return s.sizes.Delete(ctx, id)
}

func (s *CatalogService) ListTables(ctx context.Context) ([]*domain.Table, error) {
	return s.tables.List(ctx)
}

func (s *CatalogService) CreateTable(ctx context.Context, in TableInput) (*domain.Table, error) {
	if in.Number <= 0 {
		return nil, domain.NewValidationError("number", "must be positive")
	}
	t := &domain.Table{Number: in.Number, Seats: in.Seats, Status: in.Status}
	if t.Status == "" {
		t.Status = domain.TableAvailable
	}
	if err := s.tables.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) UpdateTable(ctx context.Context, id uint64, in TableInput) (*domain.Table, error) {
	t, err := s.tables.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Number > 0 {
		t.Number = in.Number
	}
	if in.Seats > 0 {
		t.Seats = in.Seats
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	if err := s.tables.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteTable(ctx context.Context, id uint64) error {
	return s.tables.Delete(ctx, id)
}
