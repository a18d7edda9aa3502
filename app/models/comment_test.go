package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestCommentModerationStates(t *testing.T) {
	tests := []struct {
		name     string
		approved *bool
		visible  bool
		approvd  bool
	}{
		{"legacy record without flag", nil, true, false},
		{"pending", boolPtr(false), false, false},
		{"approved", boolPtr(true), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Comment{Approved: tt.approved}
			assert.Equal(t, tt.visible, c.PubliclyVisible())
			assert.Equal(t, tt.approvd, c.IsApproved())
		})
	}
}

func TestCommentLegacyFlagSurvivesRoundTrip(t *testing.T) {
	// A record without an approved field must stay without one; the flag is
	// never invented during decode/encode.
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"postId":2,"name":"A","message":"hi"}`), &c))
	assert.Nil(t, c.Approved)

	data, err := json.Marshal(&c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "approved")
}

func TestCommentValidate(t *testing.T) {
	valid := Comment{
		ID:        1,
		PostID:    1,
		Name:      "Alice",
		Email:     "alice@example.com",
		Message:   "hi",
		CreatedAt: time.Now(),
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	noEmail := valid
	noEmail.Email = ""
	assert.NoError(t, noEmail.Validate())

	noPost := valid
	noPost.PostID = 0
	assert.Error(t, noPost.Validate())
}

func TestCommentBeforeCreate(t *testing.T) {
	c := &Comment{PostID: 1, Name: "Alice", Message: "hi"}
	c.BeforeCreate()

	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.Before(c.CreatedAt))
}
