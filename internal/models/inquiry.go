package models

import "gorm.io/gorm"

// Inquiry is a customer query note. Write-once: captured on POST and
// never mutated afterwards.
type Inquiry struct {
	ID         string `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message" validate:"required"`
	gorm.Model `json:"-"`
}
