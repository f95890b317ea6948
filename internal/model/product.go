package model

import (
	"time"

	"gorm.io/gorm"
)

// Product sort policies accepted by the catalog listing.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type Product struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Price       int64     `gorm:"not null" json:"price"`
	Tags        Tags      `json:"tags"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"type:text" json:"image"`
	Featured    bool      `gorm:"not null" json:"featured"`
	Stock       int       `gorm:"not null" json:"stock"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// Normalize replaces a nil tag list so it serializes as [] instead of null.
func (p *Product) Normalize() {
	if p.Tags == nil {
		p.Tags = Tags{}
	}
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Normalize()
	return nil
}
