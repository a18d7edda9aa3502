package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"inkwell/app/media"
	"inkwell/app/services"
)

// SettingsController handles the site settings endpoints
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// Show handles GET /settings
func (sc *SettingsController) Show(w http.ResponseWriter, r *http.Request) {
	settings, err := sc.settingsService.GetSettings()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendJSON(w, settings, http.StatusOK)
}

// Update handles PUT /settings. Text fields arrive as JSON or multipart;
// logo and favicon replacements require multipart.
func (sc *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.UpdateSettingsInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}

		in.WebsiteTitle = formString(r, "websiteTitle")
		in.ThemeColor = formString(r, "themeColor")
		in.Mobile = formString(r, "mobile")
		in.Email = formString(r, "email")
		in.Address = formString(r, "address")

		for _, f := range []struct {
			field  string
			target **media.Upload
		}{
			{"logo", &in.Logo},
			{"favicon", &in.Favicon},
		} {
			upload, closer, err := namedFormImage(r, f.field)
			if err != nil && !errors.Is(err, http.ErrMissingFile) {
				sendError(w, err.Error(), http.StatusBadRequest)
				return
			}
			if closer != nil {
				defer closer.Close()
			}
			*f.target = upload
		}
	} else {
		var body struct {
			WebsiteTitle *string `json:"websiteTitle"`
			ThemeColor   *string `json:"themeColor"`
			Mobile       *string `json:"mobile"`
			Email        *string `json:"email"`
			Address      *string `json:"address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		in.WebsiteTitle = body.WebsiteTitle
		in.ThemeColor = body.ThemeColor
		in.Mobile = body.Mobile
		in.Email = body.Email
		in.Address = body.Address
	}

	settings, err := sc.settingsService.UpdateSettings(r.Context(), in)
	if err != nil {
		sendServiceError(w, err, "Settings not found")
		return
	}
	sendJSON(w, settings, http.StatusOK)
}

// formString returns a pointer to the form value, or nil when the field was
// not sent at all. An empty provided value clears the setting.
func formString(r *http.Request, field string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[field]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// namedFormImage reads and validates one optional settings image field.
func namedFormImage(r *http.Request, field string) (*media.Upload, interface{ Close() error }, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	file.Close()

	return media.FromMultipart(header, media.SettingsImageTypes)
}
