package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	List() ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// ContactMessageRepository defines the interface for contact inbox access
type ContactMessageRepository interface {
	Create(msg *models.ContactMessage) error
	List() ([]*models.ContactMessage, error)
	Delete(id int) error
}

// SettingsRepository manages the site settings singleton
type SettingsRepository interface {
	// GetOrCreate returns the settings record, creating it with defaults
	// inside a single write transaction when it does not exist yet.
	GetOrCreate() (*models.Settings, error)
	Update(settings *models.Settings) error
}

// UserRepository defines the interface for admin account access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}
