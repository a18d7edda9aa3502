package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) createPost(t *testing.T, title string) *models.Post {
	t.Helper()

	body, contentType := multipartBody(t, map[string]string{
		"title":   title,
		"content": "<p>x</p>",
		"author":  "Bob",
	}, "featuredImage", "cat.png", "image/png", []byte("image-bytes"))

	req := httptest.NewRequest("POST", "/add-post", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return &post
}

func TestPostCreateEndpoint(t *testing.T) {
	f := newFixture(t)

	post := f.createPost(t, "A")

	assert.Equal(t, "A", post.Title)
	assert.NotEqual(t, "cat.png", post.FeaturedImage, "stored name must be generated")

	exists, err := f.Store.Exists(context.Background(), post.FeaturedImage)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPostCreateMissingFieldsLeaveNothingBehind(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		file   bool
	}{
		{"no title", map[string]string{"content": "c", "author": "a"}, true},
		{"no content", map[string]string{"title": "t", "author": "a"}, true},
		{"no author", map[string]string{"title": "t", "content": "c"}, true},
		{"no file", map[string]string{"title": "t", "content": "c", "author": "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			fileField := ""
			if tt.file {
				fileField = "featuredImage"
			}
			body, contentType := multipartBody(t, tt.fields, fileField, "cat.png", "image/png", []byte("x"))

			req := httptest.NewRequest("POST", "/add-post", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer "+f.Token)
			rec := httptest.NewRecorder()
			f.Router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			posts, _ := f.PostRepo.List()
			assert.Empty(t, posts, "no record may exist after a rejected create")
			assert.Zero(t, f.Store.Len(), "no file may exist after a rejected create")
		})
	}
}

func TestPostCreateRejectsBadFileType(t *testing.T) {
	f := newFixture(t)

	body, contentType := multipartBody(t, map[string]string{
		"title": "t", "content": "c", "author": "a",
	}, "featuredImage", "script.sh", "text/x-shellscript", []byte("#!/bin/sh"))

	req := httptest.NewRequest("POST", "/add-post", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.Store.Len())
}

func TestPostShowEndpoint(t *testing.T) {
	f := newFixture(t)
	post := f.createPost(t, "A")

	req := httptest.NewRequest("GET", "/posts/"+strconv.Itoa(post.ID), nil)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Author, got.Author)
	assert.Equal(t, post.FeaturedImage, got.FeaturedImage)
}

func TestPostShowNotFound(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/posts/999", "/posts/abc"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		f.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestPostIndexEndpoint(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest("GET", "/posts", nil)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty listing is an array, not null")

	f.createPost(t, "One")
	f.createPost(t, "Two")

	rec = httptest.NewRecorder()
	f.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/posts", nil))

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

func TestPostUpdateJSONSubset(t *testing.T) {
	f := newFixture(t)
	post := f.createPost(t, "A")

	payload, _ := json.Marshal(map[string]string{"title": "B"})
	req := httptest.NewRequest("PUT", "/posts/"+strconv.Itoa(post.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "B", updated.Title)
	assert.Equal(t, post.FeaturedImage, updated.FeaturedImage)

	exists, err := f.Store.Exists(context.Background(), post.FeaturedImage)
	require.NoError(t, err)
	assert.True(t, exists, "old file must survive a text-only update")
}

func TestPostUpdateWithReplacementImage(t *testing.T) {
	f := newFixture(t)
	post := f.createPost(t, "A")

	body, contentType := multipartBody(t, nil, "featuredImage", "dog.png", "image/png", []byte("new-bytes"))
	req := httptest.NewRequest("PUT", "/posts/"+strconv.Itoa(post.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.NotEqual(t, "dog.png", updated.FeaturedImage)
	assert.NotEqual(t, post.FeaturedImage, updated.FeaturedImage)

	oldExists, err := f.Store.Exists(context.Background(), post.FeaturedImage)
	require.NoError(t, err)
	assert.False(t, oldExists, "previous image must no longer be retrievable")
}

func TestPostUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	payload, _ := json.Marshal(map[string]string{"title": "B"})
	req := httptest.NewRequest("PUT", "/posts/999", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostDeleteEndpoint(t *testing.T) {
	f := newFixture(t)
	post := f.createPost(t, "A")

	req := httptest.NewRequest("DELETE", "/posts/"+strconv.Itoa(post.ID), nil)
	req.Header.Set("Authorization", "Bearer "+f.Token)
	rec := httptest.NewRecorder()
	f.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, f.Store.Len(), "image file must be gone with the record")

	rec = httptest.NewRecorder()
	f.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/posts/"+strconv.Itoa(post.ID), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostWriteEndpointsRequireAuth(t *testing.T) {
	f := newFixture(t)
	post := f.createPost(t, "A")

	body, contentType := multipartBody(t, map[string]string{
		"title": "t", "content": "c", "author": "a",
	}, "featuredImage", "cat.png", "image/png", []byte("x"))

	tests := []struct {
		method string
		path   string
		body   *bytes.Buffer
		cType  string
	}{
		{"POST", "/add-post", body, contentType},
		{"PUT", "/posts/" + strconv.Itoa(post.ID), bytes.NewBufferString(`{"title":"B"}`), "application/json"},
		{"DELETE", "/posts/" + strconv.Itoa(post.ID), bytes.NewBuffer(nil), ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, tt.body)
		if tt.cType != "" {
			req.Header.Set("Content-Type", tt.cType)
		}
		rec := httptest.NewRecorder()
		f.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tt.method, tt.path)
	}
}
