package models

import "time"

// Default values applied when the settings singleton is first created.
const (
	DefaultWebsiteTitle = "Inkwell"
	DefaultThemeColor   = "#2563eb"
)

// DefaultSettings returns the settings record created on first read when no
// settings exist yet.
func DefaultSettings() *Settings {
	now := time.Now()
	return &Settings{
		WebsiteTitle: DefaultWebsiteTitle,
		ThemeColor:   DefaultThemeColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Touch bumps UpdatedAt, never moving it backwards
func (s *Settings) Touch() {
	if now := time.Now(); now.After(s.UpdatedAt) {
		s.UpdatedAt = now
	}
}
