package model

import "gorm.io/datatypes"

// OrderItem references a product by value; it is not a foreign key.
type OrderItem struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"qty"`
}

// Order is an immutable record of a checked-out cart. Total is computed from
// catalog prices at creation time; per-line prices are not kept.
type Order struct {
	BaseModel
	Items datatypes.JSONSlice[OrderItem] `gorm:"not null" json:"items"`
	Total int64                          `gorm:"not null" json:"total"`
}

func (Order) TableName() string {
	return "orders"
}
