package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
)

// ProfileController handles the admin profile-update endpoint
type ProfileController struct {
	userService *services.UserService
}

// NewProfileController creates a new ProfileController
func NewProfileController(userService *services.UserService) *ProfileController {
	return &ProfileController{userService: userService}
}

// Update handles PUT /profile behind the auth gate
func (pc *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		sendError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Email              string  `json:"email"`
		CurrentPassword    string  `json:"currentPassword"`
		NewPassword        string  `json:"newPassword"`
		ConfirmNewPassword *string `json:"confirmNewPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := pc.userService.UpdateProfile(user.ID, services.UpdateProfileInput{
		Email:              body.Email,
		CurrentPassword:    body.CurrentPassword,
		NewPassword:        body.NewPassword,
		ConfirmNewPassword: body.ConfirmNewPassword,
	})
	if err != nil {
		sendServiceError(w, err, "User not found")
		return
	}

	sendJSON(w, map[string]interface{}{
		"success": true,
		"user":    updated.Public(),
		"message": "Profile updated successfully",
	}, http.StatusOK)
}
