package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: Post{
				ID:            1,
				Title:         "Hello",
				Content:       "<p>world</p>",
				Author:        "Bob",
				FeaturedImage: "1700000000-abc.png",
				CreatedAt:     time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: Post{
				ID:        1,
				Content:   "<p>world</p>",
				Author:    "Bob",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			post: Post{
				ID:        1,
				Title:     "Hello",
				Content:   "<p>world</p>",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero created_at",
			post: Post{
				ID:      1,
				Title:   "Hello",
				Content: "<p>world</p>",
				Author:  "Bob",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "Hello", Content: "world", Author: "Bob"}
	post.BeforeCreate()

	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())
	assert.False(t, post.UpdatedAt.Before(post.CreatedAt))
}

func TestPostBeforeCreatePreservesCreatedAt(t *testing.T) {
	original := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	post := &Post{CreatedAt: original}
	post.BeforeCreate()

	assert.Equal(t, original, post.CreatedAt)
	assert.True(t, post.UpdatedAt.After(original))
}

func TestPostTouchIsMonotonic(t *testing.T) {
	post := &Post{}
	post.BeforeCreate()
	first := post.UpdatedAt

	post.Touch()
	assert.False(t, post.UpdatedAt.Before(first))
}

func TestPostHasImage(t *testing.T) {
	assert.False(t, (&Post{}).HasImage())
	assert.True(t, (&Post{FeaturedImage: "a.png"}).HasImage())
}
