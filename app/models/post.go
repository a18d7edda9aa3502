package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up timestamps before the record is first persisted
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// Touch bumps UpdatedAt, never moving it backwards
func (p *Post) Touch() {
	if now := time.Now(); now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}

// HasImage reports whether the post references a stored image file
func (p *Post) HasImage() bool {
	return p.FeaturedImage != ""
}
