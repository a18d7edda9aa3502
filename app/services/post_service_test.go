package services

import (
	"context"
	"strings"
	"testing"

	"inkwell/app/media"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService() (*PostService, *mock.PostRepository, *media.MemStore) {
	repo := mock.NewPostRepository()
	store := media.NewMemStore()
	service := NewPostService(repo, store, zerolog.Nop())
	return service, repo, store
}

func testUpload(filename, content string) *media.Upload {
	return &media.Upload{
		Filename: filename,
		Content:  strings.NewReader(content),
		Size:     int64(len(content)),
	}
}

func TestCreatePostStoresFileAndRecord(t *testing.T) {
	service, _, store := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title:   "A",
		Content: "<p>x</p>",
		Author:  "Bob",
		Image:   testUpload("cat.png", "image-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, post.ID)
	assert.Equal(t, "A", post.Title)
	assert.NotEqual(t, "cat.png", post.FeaturedImage)
	assert.True(t, strings.HasSuffix(post.FeaturedImage, ".png"))
	assert.False(t, post.CreatedAt.IsZero())

	exists, err := store.Exists(ctx, post.FeaturedImage)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 1, store.Len())
}

func TestCreatePostValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{"missing title", CreatePostInput{Content: "c", Author: "a", Image: testUpload("x.png", "y")}},
		{"missing content", CreatePostInput{Title: "t", Author: "a", Image: testUpload("x.png", "y")}},
		{"missing author", CreatePostInput{Title: "t", Content: "c", Image: testUpload("x.png", "y")}},
		{"whitespace only", CreatePostInput{Title: "  ", Content: "c", Author: "a", Image: testUpload("x.png", "y")}},
		{"missing image", CreatePostInput{Title: "t", Content: "c", Author: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, store := newTestPostService()

			_, err := service.CreatePost(context.Background(), tt.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)

			// Nothing may be left behind by a rejected create.
			posts, _ := repo.List()
			assert.Empty(t, posts)
			assert.Zero(t, store.Len())
		})
	}
}

func TestCreatePostTrimsFields(t *testing.T) {
	service, _, _ := newTestPostService()

	post, err := service.CreatePost(context.Background(), CreatePostInput{
		Title:   "  A  ",
		Content: " <p>x</p> ",
		Author:  " Bob ",
		Image:   testUpload("cat.png", "y"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A", post.Title)
	assert.Equal(t, "Bob", post.Author)
}

func TestGetPostNotFound(t *testing.T) {
	service, _, _ := newTestPostService()

	_, err := service.GetPost(42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdatePostPartialFieldsLeaveImageAlone(t *testing.T) {
	service, _, store := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "<p>x</p>", Author: "Bob",
		Image: testUpload("cat.png", "original"),
	})
	require.NoError(t, err)
	originalImage := post.FeaturedImage

	updated, err := service.UpdatePost(ctx, post.ID, UpdatePostInput{Title: "B"})
	require.NoError(t, err)

	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, "<p>x</p>", updated.Content)
	assert.Equal(t, "Bob", updated.Author)
	assert.Equal(t, originalImage, updated.FeaturedImage)

	exists, err := store.Exists(ctx, originalImage)
	require.NoError(t, err)
	assert.True(t, exists, "old file must survive an update without a new image")
}

func TestUpdatePostEmptyFieldsAreIgnored(t *testing.T) {
	service, _, _ := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "c", Author: "Bob",
		Image: testUpload("cat.png", "y"),
	})
	require.NoError(t, err)

	updated, err := service.UpdatePost(ctx, post.ID, UpdatePostInput{Title: "", Author: "   "})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "Bob", updated.Author)
}

func TestUpdatePostReplacesImageAndCleansUp(t *testing.T) {
	service, _, store := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "c", Author: "Bob",
		Image: testUpload("cat.png", "old-bytes"),
	})
	require.NoError(t, err)
	oldImage := post.FeaturedImage

	updated, err := service.UpdatePost(ctx, post.ID, UpdatePostInput{
		Image: testUpload("dog.png", "new-bytes"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "dog.png", updated.FeaturedImage)
	assert.NotEqual(t, oldImage, updated.FeaturedImage)

	oldExists, err := store.Exists(ctx, oldImage)
	require.NoError(t, err)
	assert.False(t, oldExists, "replaced file must be removed")

	newExists, err := store.Exists(ctx, updated.FeaturedImage)
	require.NoError(t, err)
	assert.True(t, newExists)
	assert.Equal(t, 1, store.Len())
}

func TestUpdatePostToleratesAlreadyMissingOldFile(t *testing.T) {
	service, _, store := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "c", Author: "Bob",
		Image: testUpload("cat.png", "y"),
	})
	require.NoError(t, err)

	// Simulate the old file vanishing out from under the record.
	require.NoError(t, store.Delete(ctx, post.FeaturedImage))

	updated, err := service.UpdatePost(ctx, post.ID, UpdatePostInput{
		Image: testUpload("dog.png", "z"),
	})
	require.NoError(t, err)

	exists, err := store.Exists(ctx, updated.FeaturedImage)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUpdatePostNotFound(t *testing.T) {
	service, _, store := newTestPostService()

	_, err := service.UpdatePost(context.Background(), 42, UpdatePostInput{Title: "B"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Zero(t, store.Len())
}

func TestDeletePostRemovesFileAndRecord(t *testing.T) {
	service, repo, store := newTestPostService()
	ctx := context.Background()

	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "c", Author: "Bob",
		Image: testUpload("cat.png", "y"),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(ctx, post.ID))

	_, err = repo.GetByID(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Zero(t, store.Len())
}

func TestDeletePostWithoutImageSkipsFileOperations(t *testing.T) {
	service, repo, store := newTestPostService()
	ctx := context.Background()

	// A legacy record can have an empty image field.
	post, err := service.CreatePost(ctx, CreatePostInput{
		Title: "A", Content: "c", Author: "Bob",
		Image: testUpload("cat.png", "y"),
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	stored.FeaturedImage = ""
	require.NoError(t, repo.Update(stored))
	require.NoError(t, store.Delete(ctx, post.FeaturedImage))

	require.NoError(t, service.DeletePost(ctx, post.ID))
	assert.Zero(t, store.Len())
}

func TestDeletePostNotFound(t *testing.T) {
	service, _, _ := newTestPostService()
	assert.ErrorIs(t, service.DeletePost(context.Background(), 42), repositories.ErrNotFound)
}
