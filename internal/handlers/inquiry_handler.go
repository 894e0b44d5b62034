package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pranesta/internal/models"
	"pranesta/internal/services"
)

// InquiryHandler handles HTTP requests for customer inquiries.
type InquiryHandler struct {
	service  *services.InquiryService
	validate *validator.Validate
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(service *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inquiry routes with the Fiber app.
func (h *InquiryHandler) RegisterRoutes(router fiber.Router) {
	inquiryRoutes := router.Group("/inquiries")
	inquiryRoutes.Post("/", h.HandleCreateInquiry)
	inquiryRoutes.Get("/", h.HandleGetInquiries)
}

// HandleCreateInquiry captures a customer inquiry.
func (h *InquiryHandler) HandleCreateInquiry(c *fiber.Ctx) error {
	var inquiry models.Inquiry
	if err := c.BodyParser(&inquiry); err != nil {
		log.Printf("Error parsing inquiry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(inquiry); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.service.CreateInquiry(&inquiry); err != nil {
		log.Printf("Error creating inquiry: %v", err)
		return respondInternalError(c, "Could not create inquiry", err)
	}

	return c.JSON(fiber.Map{
		"_id":    inquiry.ID,
		"status": "received",
	})
}

// HandleGetInquiries retrieves all inquiries.
func (h *InquiryHandler) HandleGetInquiries(c *fiber.Ctx) error {
	inquiries, err := h.service.GetAllInquiries()
	if err != nil {
		log.Printf("Error getting all inquiries: %v", err)
		return respondInternalError(c, "Could not retrieve inquiries", err)
	}
	return c.JSON(inquiries)
}
