package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// maxDiagnosticLen caps the error detail echoed back on 500s. Store
// errors can carry driver internals; callers only need a hint.
const maxDiagnosticLen = 120

// respondInternalError converts any unexpected failure into a generic
// 500 with a truncated diagnostic.
func respondInternalError(c *fiber.Ctx, message string, err error) error {
	detail := err.Error()
	if len(detail) > maxDiagnosticLen {
		detail = detail[:maxDiagnosticLen]
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   detail,
	})
}

// respondValidationError turns validator output into a 400 with
// per-field messages.
func respondValidationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
