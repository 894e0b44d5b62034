package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pranesta/internal/models"
	"pranesta/internal/repositories"
)

// OrderService builds orders from client-submitted line items. The
// items carry their own price snapshots and the total is computed from
// them directly; there is no cross-check against stored product prices.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder computes the order total from the item snapshots and
// persists a pending order. The total is computed exactly once, here;
// it is never recomputed later in the workflow.
func (s *OrderService) CreateOrder(items []models.OrderItem, customerName, customerEmail, customerAddress string) (*models.Order, error) {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}

	newOrder := &models.Order{
		ID:              uuid.New().String(),
		Items:           items,
		Total:           total,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		CustomerAddress: customerAddress,
		Status:          models.StatusPending, // Initial status
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent(EventOrderCreated, map[string]interface{}{
		"order_id": newOrder.ID,
		"total":    newOrder.Total,
		"status":   newOrder.Status,
	})

	return newOrder, nil
}

// publishEvent publishes a lifecycle event, best-effort. A broker
// failure never fails the request that triggered the event.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
