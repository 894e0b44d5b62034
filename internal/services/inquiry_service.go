package services

import (
	"pranesta/internal/models"
	"pranesta/internal/repositories"
)

// InquiryService handles business logic for customer inquiries.
type InquiryService struct {
	repo repositories.InquiryRepository
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(repo repositories.InquiryRepository) *InquiryService {
	return &InquiryService{
		repo: repo,
	}
}

// CreateInquiry records a customer inquiry.
func (s *InquiryService) CreateInquiry(inquiry *models.Inquiry) error {
	return s.repo.Create(inquiry)
}

// GetAllInquiries retrieves all inquiries.
func (s *InquiryService) GetAllInquiries() ([]models.Inquiry, error) {
	return s.repo.GetAll()
}
