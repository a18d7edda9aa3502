package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(title string) *models.Post {
	post := &models.Post{
		Title:         title,
		Content:       "<p>content</p>",
		Author:        "Bob",
		FeaturedImage: "1700000000-img.png",
	}
	post.BeforeCreate()
	return post
}

func TestPostRepositoryCreateAssignsIDs(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	first := newTestPost("First")
	second := newTestPost("Second")

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestPostRepositoryGetByID(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	post := newTestPost("Hello")
	require.NoError(t, repo.Create(post))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.FeaturedImage, got.FeaturedImage)

	_, err = repo.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostRepositoryList(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	posts, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, posts)

	require.NoError(t, repo.Create(newTestPost("One")))
	require.NoError(t, repo.Create(newTestPost("Two")))

	posts, err = repo.List()
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostRepositoryUpdate(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	post := newTestPost("Before")
	require.NoError(t, repo.Create(post))

	post.Title = "After"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)

	missing := newTestPost("Ghost")
	missing.ID = 999
	assert.ErrorIs(t, repo.Update(missing), ErrNotFound)
}

func TestPostRepositoryDelete(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	post := newTestPost("Doomed")
	require.NoError(t, repo.Create(post))

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(post.ID), ErrNotFound)
}
