package repositories

import (
	"errors"

	"pranesta/internal/models"
)

// ErrOrderNotFound is returned when an id-keyed order operation matches
// no stored order. Callers distinguish it from store failures with
// errors.Is.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access.
// Every method touches exactly one row, keyed by order id.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// SetPaymentReference stores a payment reference on the order.
	// Returns ErrOrderNotFound when the id matches nothing.
	SetPaymentReference(id, reference string) error
	// UpdatePayment applies a terminal status and, when reference is
	// non-empty, overwrites the payment reference in the same update.
	// Returns ErrOrderNotFound when the id matches nothing.
	UpdatePayment(id string, status models.OrderStatus, reference string) error
}
