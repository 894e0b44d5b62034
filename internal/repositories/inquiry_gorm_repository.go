package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pranesta/internal/models"
)

// GORMInquiryRepository is a GORM implementation of InquiryRepository.
type GORMInquiryRepository struct {
	db *gorm.DB
}

// NewGORMInquiryRepository creates a new instance of GORMInquiryRepository.
func NewGORMInquiryRepository(db *gorm.DB) *GORMInquiryRepository {
	return &GORMInquiryRepository{
		db: db,
	}
}

// Create creates a new inquiry in the database.
func (r *GORMInquiryRepository) Create(inquiry *models.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	if err := r.db.Create(inquiry).Error; err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// GetAll retrieves all inquiries from the database.
func (r *GORMInquiryRepository) GetAll() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := r.db.Find(&inquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all inquiries: %w", err)
	}
	return inquiries, nil
}
