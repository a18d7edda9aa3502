package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up timestamps before the record is first persisted
func (c *Comment) BeforeCreate() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// Touch bumps UpdatedAt, never moving it backwards
func (c *Comment) Touch() {
	if now := time.Now(); now.After(c.UpdatedAt) {
		c.UpdatedAt = now
	}
}

// PubliclyVisible reports whether the comment may appear on the public site.
// Records written before moderation existed carry no approved flag at all;
// those stay visible. The flag is never rewritten on their behalf.
func (c *Comment) PubliclyVisible() bool {
	return c.Approved == nil || *c.Approved
}

// IsApproved reports whether the comment was explicitly approved
func (c *Comment) IsApproved() bool {
	return c.Approved != nil && *c.Approved
}
