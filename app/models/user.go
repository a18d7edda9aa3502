package models

import "time"

// BeforeCreate sets up timestamps before the record is first persisted
func (u *User) BeforeCreate() {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// Touch bumps UpdatedAt, never moving it backwards
func (u *User) Touch() {
	if now := time.Now(); now.After(u.UpdatedAt) {
		u.UpdatedAt = now
	}
}

// Public returns the subset of the user that may be embedded in tokens and
// API responses.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID,
		"email": u.Email,
	}
}
