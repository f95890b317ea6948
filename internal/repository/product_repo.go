package repository

import (
	"context"
	"strings"
	"time"

	"storefront-api/internal/model"

	"gorm.io/gorm"
)

// ProductFilter narrows a catalog listing. Zero values disable a filter.
type ProductFilter struct {
	Keyword         string
	Category        string
	Sort            string
	IncludeInactive bool
}

// CatalogStats aggregates the product table for the admin dashboard.
type CatalogStats struct {
	TotalProducts  int64 `json:"total_products"`
	ActiveProducts int64 `json:"active_products"`
	LowStockCount  int64 `json:"low_stock_count"`
	TotalValuation int64 `json:"total_valuation"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindActiveByIDs(ctx context.Context, ids []string) (map[string]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, lowStockThreshold int) (*CatalogStats, error)
	SeedDefaults(ctx context.Context) (int, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return translate("create product", r.db.WithContext(ctx).Create(product).Error)
}

func (r *productRepo) FindAll(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	if !filter.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if filter.Keyword != "" {
		like := "%" + escapeLike(strings.ToLower(filter.Keyword)) + "%"
		q = q.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(CAST(tags AS TEXT)) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`,
			like, like, like,
		)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	switch filter.Sort {
	case model.SortPriceAsc:
		q = q.Order("price ASC").Order("updated_at DESC")
	case model.SortPriceDesc:
		q = q.Order("price DESC").Order("updated_at DESC")
	default:
		q = q.Order("featured DESC").Order("updated_at DESC")
	}

	products := []model.Product{}
	if err := q.Find(&products).Error; err != nil {
		return nil, translate("list products", err)
	}
	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate("find product", err)
	}
	product.Normalize()
	return &product, nil
}

// FindActiveByIDs loads the active products among ids in one query, keyed by ID.
// Unknown and inactive IDs are simply absent from the result.
func (r *productRepo) FindActiveByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	result := make(map[string]model.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&products).Error
	if err != nil {
		return nil, translate("find active products", err)
	}
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"category":    product.Category,
			"price":       product.Price,
			"tags":        product.Tags,
			"description": product.Description,
			"image":       product.Image,
			"featured":    product.Featured,
			"stock":       product.Stock,
			"is_active":   product.IsActive,
			"updated_at":  product.UpdatedAt,
		})
	if res.Error != nil {
		return translate("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row permanently. Deleting a missing ID is not an error.
func (r *productRepo) Delete(ctx context.Context, id string) error {
	return translate("delete product", r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id).Error)
}

func (r *productRepo) Stats(ctx context.Context, lowStockThreshold int) (*CatalogStats, error) {
	var stats CatalogStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, translate("count products", err)
	}
	if err := db.Model(&model.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		return nil, translate("count active products", err)
	}
	err := db.Model(&model.Product{}).
		Where("is_active = ? AND stock < ?", true, lowStockThreshold).
		Count(&stats.LowStockCount).Error
	if err != nil {
		return nil, translate("count low stock", err)
	}
	err = db.Model(&model.Product{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(stock * price), 0)").
		Scan(&stats.TotalValuation).Error
	if err != nil {
		return nil, translate("catalog valuation", err)
	}
	return &stats, nil
}

// SeedDefaults inserts model.DefaultCatalog in one transaction when the
// product table is empty and reports how many rows were written.
func (r *productRepo) SeedDefaults(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, translate("count products", err)
	}
	if count > 0 {
		return 0, nil
	}

	seed := model.DefaultCatalog()
	now := time.Now().UTC()
	for i := range seed {
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&seed).Error
	})
	if err != nil {
		return 0, translate("seed products", err)
	}
	return len(seed), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
