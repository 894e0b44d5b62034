package models

import "time"

// OrderStatus tracks where an order is in the payment workflow.
type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusFailed  OrderStatus = "failed"
)

// OrderItem is a line item embedded in an order. It carries a snapshot
// of the product at order time (title, price, image), so it may diverge
// from the live Product row. ProductID is a reference only and is not
// validated against the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Qty       int     `json:"qty" validate:"gte=1"`
	Image     string  `json:"image,omitempty"`
}

// Order is a customer purchase record. Items are owned exclusively by
// the order and stored as a single JSON document column, so every
// mutation is an id-keyed single-row update. Total is computed once at
// creation time from the item snapshots and never recomputed.
type Order struct {
	ID               string      `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Items            []OrderItem `json:"items" gorm:"serializer:json" validate:"required,min=1,dive"`
	Total            float64     `json:"total" validate:"gte=0"`
	CustomerName     string      `json:"customer_name" validate:"required"`
	CustomerEmail    string      `json:"customer_email" validate:"required"`
	CustomerAddress  string      `json:"customer_address,omitempty"`
	Status           OrderStatus `json:"status"`
	PaymentReference string      `json:"payment_reference,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
