package models

import "gorm.io/gorm"

// Category is the closed set of product categories the storefront sells.
type Category string

const (
	CategorySilver   Category = "silver"
	CategoryOxidised Category = "oxidised"
)

// Categories lists every valid category, in catalog display order.
func Categories() []Category {
	return []Category{CategorySilver, CategoryOxidised}
}

// Product represents a catalog item. Products are write-once in this
// service: they are created and listed, never updated or deleted.
type Product struct {
	ID          string   `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    Category `json:"category" validate:"required,oneof=silver oxidised"`
	Image       string   `json:"image,omitempty"`
	InStock     bool     `json:"in_stock"`
	gorm.Model  `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
