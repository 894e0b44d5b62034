package repositories

import (
	"errors"

	"pranesta/internal/models"
)

// ErrProductNotFound is returned when a product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
// The catalog is append-only: no update or delete.
type ProductRepository interface {
	// List returns products, filtered by category when one is given
	// (the zero value means no filter).
	List(category models.Category) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
}
