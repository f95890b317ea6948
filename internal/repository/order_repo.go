package repository

import (
	"context"
	"time"

	"storefront-api/internal/model"

	"gorm.io/gorm"
)

// OrderSummary totals every stored order.
type OrderSummary struct {
	TotalOrders  int64 `json:"total_orders"`
	TotalRevenue int64 `json:"total_revenue"`
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindSince(ctx context.Context, since time.Time) ([]model.Order, error)
	Summary(ctx context.Context) (*OrderSummary, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return translate("create order", r.db.WithContext(ctx).Create(order).Error)
}

// FindAll returns every order, newest first.
func (r *orderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, translate("list orders", err)
}

// FindSince returns orders created at or after since, oldest first.
func (r *orderRepo) FindSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, translate("list orders since", err)
}

func (r *orderRepo) Summary(ctx context.Context) (*OrderSummary, error) {
	var summary OrderSummary
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return nil, translate("count orders", err)
	}
	err := db.Model(&model.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&summary.TotalRevenue).Error
	if err != nil {
		return nil, translate("sum order totals", err)
	}
	return &summary, nil
}
