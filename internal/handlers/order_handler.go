package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pranesta/internal/models"
	"pranesta/internal/repositories"
	"pranesta/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// CreateOrderRequest is the payload for order creation. There is no
// status field: the initial status is always pending, a client cannot
// supply one.
type CreateOrderRequest struct {
	Items           []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"required"`
	CustomerAddress string             `json:"customer_address"`
}

// HandleCreateOrder validates the submitted line items and customer
// fields, then builds and persists a pending order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Item-level constraints (price >= 0, qty >= 1) are enforced by the
	// dive into the OrderItem tags. Nothing is persisted on failure.
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	order, err := h.service.CreateOrder(req.Items, req.CustomerName, req.CustomerEmail, req.CustomerAddress)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondInternalError(c, "Could not create order", err)
	}

	return c.JSON(fiber.Map{
		"order_id": order.ID,
		"total":    order.Total,
		"status":   order.Status,
	})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return respondInternalError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}
