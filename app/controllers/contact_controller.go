package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// ContactController handles the public contact form and the admin inbox
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Create handles POST /contact
func (cc *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateContactMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := cc.contactService.CreateContactMessage(in)
	if err != nil {
		sendServiceError(w, err, "Message not found")
		return
	}
	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Message sent successfully",
		"data":    msg,
	}, http.StatusCreated)
}

// Index handles GET /contact-messages
func (cc *ContactController) Index(w http.ResponseWriter, r *http.Request) {
	messages, err := cc.contactService.ListContactMessages()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []*models.ContactMessage{}
	}
	sendJSON(w, messages, http.StatusOK)
}

// Delete handles DELETE /contact-messages/{id}
func (cc *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Message id is required", http.StatusBadRequest)
		return
	}

	if err := cc.contactService.DeleteContactMessage(id); err != nil {
		sendServiceError(w, err, "Message not found")
		return
	}
	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Message deleted successfully",
	}, http.StatusOK)
}
