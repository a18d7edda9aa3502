package services

import (
	"errors"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the floor for new admin passwords.
const MinPasswordLength = 6

// UserService handles admin account maintenance: the profile-update flow and
// the startup seed of the first admin.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries a profile-update request. A nil ConfirmNewPassword
// skips the confirmation check, mirroring a client that omits the field.
type UpdateProfileInput struct {
	Email              string
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword *string
}

// UpdateProfile changes the account email and/or password. A password change
// is gated on the current password; an email change is gated on uniqueness.
func (s *UserService) UpdateProfile(userID int, in UpdateProfileInput) (*models.User, error) {
	if in.Email == "" && in.NewPassword == "" {
		return nil, validationf("Nothing to update")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, validationf("Current password is required")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, conflictf("Current password is incorrect")
		}
		if len(in.NewPassword) < MinPasswordLength {
			return nil, validationf("New password must be at least %d characters", MinPasswordLength)
		}
		if in.ConfirmNewPassword != nil && in.NewPassword != *in.ConfirmNewPassword {
			return nil, conflictf("Passwords do not match")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if in.Email != "" {
		next := strings.ToLower(strings.TrimSpace(in.Email))
		if validate.Var(next, "email") != nil {
			return nil, validationf("Invalid email address")
		}

		if next != user.Email {
			existing, err := s.userRepo.GetByEmail(next)
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				return nil, conflictf("Email already in use")
			}
			user.Email = next
		}
	}

	user.Touch()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin creates the admin account on first startup. An existing
// account with the same email is left untouched.
func (s *UserService) EnsureAdmin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	user.BeforeCreate()
	return s.userRepo.Create(user)
}
