package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pranesta/internal/repositories"
	"pranesta/internal/services"
)

// PaymentHandler handles HTTP requests for the mock payment workflow.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/create-intent", h.HandleCreateIntent)
	paymentRoutes.Post("/confirm", h.HandleConfirmPayment)
}

// PaymentIntentRequest is the payload for intent creation.
type PaymentIntentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// HandleCreateIntent derives a payment reference and checkout URL for
// an order. Intent creation never fails for an unknown order: the
// reference write is best-effort by design.
func (h *PaymentHandler) HandleCreateIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment intent request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	reference, paymentURL := h.service.CreateIntent(req.OrderID)
	return c.JSON(fiber.Map{
		"reference":   reference,
		"payment_url": paymentURL,
	})
}

// PaymentConfirmRequest is the payload for payment confirmation.
// Success is a pointer so an absent field defaults to true.
type PaymentConfirmRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	Success   *bool  `json:"success"`
	Reference string `json:"reference"`
}

// HandleConfirmPayment applies the terminal status reported by the
// payment collaborator to an order.
func (h *PaymentHandler) HandleConfirmPayment(c *fiber.Ctx) error {
	var req PaymentConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment confirm request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	success := true
	if req.Success != nil {
		success = *req.Success
	}

	status, err := h.service.ConfirmPayment(req.OrderID, success, req.Reference)
	if err != nil {
		log.Printf("Error confirming payment for order %s: %v", req.OrderID, err)
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return respondInternalError(c, "Could not confirm payment", err)
	}

	return c.JSON(fiber.Map{
		"order_id": req.OrderID,
		"status":   status,
	})
}
