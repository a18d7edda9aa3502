package services

import (
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// ContactService handles the public contact form and its admin inbox.
type ContactService struct {
	contactRepo repositories.ContactMessageRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactMessageRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// CreateContactMessageInput carries a contact form submission.
type CreateContactMessageInput struct {
	Name    string
	Email   string
	Message string
}

// CreateContactMessage validates and persists a contact form submission.
func (s *ContactService) CreateContactMessage(in CreateContactMessageInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" {
		return nil, validationf("Name is required")
	}
	if email == "" {
		return nil, validationf("Email is required")
	}
	if validate.Var(email, "email") != nil {
		return nil, validationf("Invalid email address")
	}
	if message == "" {
		return nil, validationf("Message is required")
	}

	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	msg.BeforeCreate()

	if err := s.contactRepo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListContactMessages returns the inbox, newest first.
func (s *ContactService) ListContactMessages() ([]*models.ContactMessage, error) {
	messages, err := s.contactRepo.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

// DeleteContactMessage removes a message from the inbox.
func (s *ContactService) DeleteContactMessage(id int) error {
	return s.contactRepo.Delete(id)
}
