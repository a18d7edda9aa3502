package models

import "time"

// Post is a blog article. FeaturedImage holds the generated filename of the
// stored image, or "" when the post has none; it never names a file the
// platform has already removed.
type Post struct {
	ID            int       `json:"id" validate:"gte=0"`
	Title         string    `json:"title" validate:"required"`
	Content       string    `json:"content" validate:"required"`
	Author        string    `json:"author" validate:"required"`
	FeaturedImage string    `json:"featuredImage"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Comment is a visitor reaction attached to a post. Approved is a pointer so
// legacy records that predate moderation (no approved field at all) can be
// told apart from explicitly pending ones: nil means legacy, false means
// pending, true means approved.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"postId" validate:"required,gte=1"`
	Name      string    `json:"name" validate:"required,max=80"`
	Email     string    `json:"email" validate:"omitempty,email,max=120"`
	Message   string    `json:"message" validate:"required,max=2000"`
	Approved  *bool     `json:"approved,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminComment is a comment as shown in the moderation queue: the comment
// plus the title of the post it belongs to. PostTitle is empty when the post
// no longer exists.
type AdminComment struct {
	Comment
	PostTitle string `json:"postTitle,omitempty"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        int       `json:"id" validate:"gte=0"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsContact is the contact block of the site settings.
type SettingsContact struct {
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Settings is the site-wide configuration singleton.
type Settings struct {
	WebsiteTitle string          `json:"websiteTitle"`
	ThemeColor   string          `json:"themeColor"`
	Logo         string          `json:"logo"`
	Favicon      string          `json:"favicon"`
	Contact      SettingsContact `json:"contact"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// User is an admin account. PasswordHash is the bcrypt hash, never the
// plaintext, and is excluded from JSON responses.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
