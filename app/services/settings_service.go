package services

import (
	"context"

	"inkwell/app/media"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/rs/zerolog"
)

// SettingsService manages the site settings singleton. Logo and favicon
// files follow the same replace-then-clean-up contract as post images.
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
	store        media.Store
	log          zerolog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.SettingsRepository, store media.Store, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		store:        store,
		log:          log,
	}
}

// UpdateSettingsInput carries a partial settings update. Nil pointers leave
// the stored value untouched; a non-nil empty string clears the field.
type UpdateSettingsInput struct {
	WebsiteTitle *string
	ThemeColor   *string
	Mobile       *string
	Email        *string
	Address      *string
	Logo         *media.Upload
	Favicon      *media.Upload
}

// GetSettings returns the settings, creating the record with defaults on
// first read.
func (s *SettingsService) GetSettings() (*models.Settings, error) {
	return s.settingsRepo.GetOrCreate()
}

// UpdateSettings applies the provided fields and file replacements and
// persists the record.
func (s *SettingsService) UpdateSettings(ctx context.Context, in UpdateSettingsInput) (*models.Settings, error) {
	settings, err := s.settingsRepo.GetOrCreate()
	if err != nil {
		return nil, err
	}

	if in.WebsiteTitle != nil {
		settings.WebsiteTitle = *in.WebsiteTitle
	}
	if in.ThemeColor != nil {
		settings.ThemeColor = *in.ThemeColor
	}
	if in.Mobile != nil {
		settings.Contact.Mobile = *in.Mobile
	}
	if in.Email != nil {
		settings.Contact.Email = *in.Email
	}
	if in.Address != nil {
		settings.Contact.Address = *in.Address
	}

	if in.Logo != nil {
		name, err := s.replaceFile(ctx, settings.Logo, in.Logo)
		if err != nil {
			return nil, err
		}
		settings.Logo = name
	}
	if in.Favicon != nil {
		name, err := s.replaceFile(ctx, settings.Favicon, in.Favicon)
		if err != nil {
			return nil, err
		}
		settings.Favicon = name
	}

	settings.Touch()
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// replaceFile stores the upload under a generated name and removes the
// previous file, tolerating its absence.
func (s *SettingsService) replaceFile(ctx context.Context, previous string, upload *media.Upload) (string, error) {
	name := media.GenerateFilename(upload.Filename)
	if err := s.store.Save(ctx, name, upload.Content, upload.Size); err != nil {
		return "", err
	}

	if previous != "" && previous != name {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.log.Warn().Err(err).Str("file", previous).
				Msg("failed to remove replaced settings image")
			return "", err
		}
	}
	return name, nil
}
