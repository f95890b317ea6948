package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-api/internal/events"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CreateProductRequest is the body of POST /products. Desc is accepted as an
// alias of Description.
type CreateProductRequest struct {
	Name        string      `json:"name" validate:"notblank"`
	Category    string      `json:"category" validate:"notblank"`
	Price       *int64      `json:"price" validate:"required,min=0"`
	Tags        []string    `json:"tags"`
	Description string      `json:"description"`
	Desc        string      `json:"desc"`
	Image       string      `json:"image"`
	Featured    model.Flag  `json:"featured"`
	Stock       *int        `json:"stock" validate:"omitempty,min=0"`
	IsActive    *model.Flag `json:"is_active"`
}

// UpdateProductRequest is the body of PATCH /products/:id. Only fields that
// are present in the JSON are applied.
type UpdateProductRequest struct {
	Name        model.Optional[string]     `json:"name"`
	Category    model.Optional[string]     `json:"category"`
	Price       model.Optional[int64]      `json:"price"`
	Tags        model.Optional[[]string]   `json:"tags"`
	Description model.Optional[string]     `json:"description"`
	Desc        model.Optional[string]     `json:"desc"`
	Image       model.Optional[string]     `json:"image"`
	Featured    model.Optional[model.Flag] `json:"featured"`
	Stock       model.Optional[int]        `json:"stock"`
	IsActive    model.Optional[model.Flag] `json:"is_active"`
}

type catalogService struct {
	productRepo repository.ProductRepository
	publisher   events.Publisher
}

func NewCatalogService(pRepo repository.ProductRepository, pub events.Publisher) CatalogService {
	if pub == nil {
		pub = events.Nop()
	}
	return &catalogService{
		productRepo: pRepo,
		publisher:   pub,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return s.productRepo.FindAll(ctx, filter)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *catalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.Product, error) {
	// 1. Required fields
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Apply defaults
	now := nowFunc()
	product := &model.Product{
		BaseModel:   model.BaseModel{CreatedAt: now},
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Price:       *req.Price,
		Tags:        model.Tags(req.Tags),
		Description: firstNonEmpty(req.Desc, req.Description),
		Image:       req.Image,
		Featured:    bool(req.Featured),
		IsActive:    true,
		UpdatedAt:   now,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = bool(*req.IsActive)
	}
	product.Normalize()

	// 3. Persist
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// 4. Notify
	events.Emit(ctx, s.publisher, events.New(
		events.TypeCatalog, events.ActionProductCreated, product.ID,
		fmt.Sprintf("product '%s' created", product.Name), product,
	))
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest) (*model.Product, error) {
	// 1. Load current row
	existing, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Merge present fields
	req.Name.Apply(&existing.Name)
	req.Category.Apply(&existing.Category)
	req.Price.Apply(&existing.Price)
	req.Image.Apply(&existing.Image)
	req.Stock.Apply(&existing.Stock)
	if req.Tags.Set {
		existing.Tags = model.Tags(req.Tags.Value)
	}
	switch {
	case req.Desc.Set:
		existing.Description = req.Desc.Value
	case req.Description.Set:
		existing.Description = req.Description.Value
	}
	if req.Featured.Set {
		existing.Featured = bool(req.Featured.Value)
	}
	if req.IsActive.Set {
		existing.IsActive = bool(req.IsActive.Value)
	}
	existing.UpdatedAt = nowFunc()
	existing.Normalize()

	// 3. Re-check merged values
	if err := checkMerged(existing); err != nil {
		return nil, err
	}

	// 4. Persist
	if err := s.productRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.New(
		events.TypeCatalog, events.ActionProductUpdated, existing.ID,
		fmt.Sprintf("product '%s' updated", existing.Name), existing,
	))
	return existing, nil
}

// DeleteProduct removes the product permanently; a missing ID is a no-op.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	events.Emit(ctx, s.publisher, events.New(
		events.TypeCatalog, events.ActionProductDeleted, id,
		fmt.Sprintf("product %s deleted", id), map[string]string{"id": id},
	))
	return nil
}

func checkMerged(p *model.Product) error {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name must not be blank")
	}
	if strings.TrimSpace(p.Category) == "" {
		problems = append(problems, "category must not be blank")
	}
	if p.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if p.Stock < 0 {
		problems = append(problems, "stock must not be negative")
	}
	if len(problems) > 0 {
		return validationError("%s", strings.Join(problems, "; "))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
