package repository

import (
	"context"

	"storefront-api/internal/model"

	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	FindAll(ctx context.Context) ([]model.Lead, error)
	Count(ctx context.Context) (int64, error)
}

type leadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) LeadRepository {
	return &leadRepo{db}
}

func (r *leadRepo) Create(ctx context.Context, lead *model.Lead) error {
	return translate("create lead", r.db.WithContext(ctx).Create(lead).Error)
}

// FindAll returns every lead, newest first.
func (r *leadRepo) FindAll(ctx context.Context) ([]model.Lead, error) {
	leads := []model.Lead{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error
	return leads, translate("list leads", err)
}

func (r *leadRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Lead{}).Count(&count).Error
	return count, translate("count leads", err)
}
