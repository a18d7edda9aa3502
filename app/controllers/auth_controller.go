package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
)

// AuthController handles login and token verification
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /login. Bad credentials surface as a server failure
// with the underlying message, which is what the admin frontend expects.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := ac.authService.Login(in.Email, in.Password)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendJSON(w, map[string]string{"token": token}, http.StatusOK)
}

// CheckAuth handles GET /check-auth behind the auth gate; reaching it at all
// means the token verified.
func (ac *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	sendJSON(w, map[string]interface{}{
		"success": true,
		"user":    user,
	}, http.StatusOK)
}
