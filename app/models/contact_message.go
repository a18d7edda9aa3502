package models

import (
	"errors"
	"time"
)

// Validate checks if the contact message meets all validation requirements
func (m *ContactMessage) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}

	if m.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up timestamps before the record is first persisted
func (m *ContactMessage) BeforeCreate() {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
