package repositories

import (
	"pranesta/internal/models"
)

// InquiryRepository defines the interface for inquiry data access.
// Inquiries are write-once, so there is no update or delete.
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	GetAll() ([]models.Inquiry, error)
}
