package repositories

import (
	"sync"

	"github.com/google/uuid"

	"pranesta/internal/models"
)

// MockInquiryRepository is an in-memory implementation of InquiryRepository.
type MockInquiryRepository struct {
	inquiries map[string]models.Inquiry
	mu        sync.RWMutex
}

// NewMockInquiryRepository creates a new instance of MockInquiryRepository.
func NewMockInquiryRepository() *MockInquiryRepository {
	return &MockInquiryRepository{
		inquiries: make(map[string]models.Inquiry),
	}
}

// Create adds a new inquiry.
func (r *MockInquiryRepository) Create(inquiry *models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	r.inquiries[inquiry.ID] = *inquiry
	return nil
}

// GetAll returns all inquiries.
func (r *MockInquiryRepository) GetAll() ([]models.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inquiryList := make([]models.Inquiry, 0, len(r.inquiries))
	for _, inq := range r.inquiries {
		inquiryList = append(inquiryList, inq)
	}
	return inquiryList, nil
}
