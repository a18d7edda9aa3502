// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"strings"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

type ContactMessageRepository struct {
	messages map[int]*models.ContactMessage
	nextID   int
	mutex    sync.RWMutex
}

type SettingsRepository struct {
	settings *models.Settings
	mutex    sync.Mutex
}

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

func NewContactMessageRepository() *ContactMessageRepository {
	return &ContactMessageRepository{
		messages: make(map[int]*models.ContactMessage),
		nextID:   1,
	}
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := 1; id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := 1; id < m.nextID; id++ {
		if comment, exists := m.comments[id]; exists && comment.PostID == postID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := 1; id < m.nextID; id++ {
		if comment, exists := m.comments[id]; exists {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *CommentRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

// ContactMessageRepository implementation

func (m *ContactMessageRepository) Create(msg *models.ContactMessage) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	msg.ID = m.nextID
	m.nextID++
	m.messages[msg.ID] = msg
	return nil
}

func (m *ContactMessageRepository) List() ([]*models.ContactMessage, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var messages []*models.ContactMessage
	for id := 1; id < m.nextID; id++ {
		if msg, exists := m.messages[id]; exists {
			copied := *msg
			messages = append(messages, &copied)
		}
	}
	return messages, nil
}

func (m *ContactMessageRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.messages[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.messages, id)
	return nil
}

// SettingsRepository implementation

func (m *SettingsRepository) GetOrCreate() (*models.Settings, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.settings == nil {
		m.settings = models.DefaultSettings()
	}
	copied := *m.settings
	return &copied, nil
}

func (m *SettingsRepository) Update(settings *models.Settings) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	copied := *settings
	m.settings = &copied
	return nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range m.users {
		if strings.ToLower(user.Email) == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}
