package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$10$examplehashexamplehashexamplehashexampleha",
	}
	user.BeforeCreate()
	return user
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewBadgerUserRepository(openTestDB(t))

	user := newTestUser("admin@example.com")
	require.NoError(t, repo.Create(user))
	assert.Equal(t, 1, user.ID)

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo := NewBadgerUserRepository(openTestDB(t))

	require.NoError(t, repo.Create(newTestUser("admin@example.com")))

	got, err := repo.GetByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	// Lookup is case-insensitive and trims whitespace.
	got, err = repo.GetByEmail("  Admin@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewBadgerUserRepository(openTestDB(t))

	user := newTestUser("old@example.com")
	require.NoError(t, repo.Create(user))

	user.Email = "new@example.com"
	require.NoError(t, repo.Update(user))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)

	missing := newTestUser("ghost@example.com")
	missing.ID = 99
	assert.ErrorIs(t, repo.Update(missing), ErrNotFound)
}
