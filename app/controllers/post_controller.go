package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"inkwell/app/media"
	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// multipartMemoryLimit is how much of a multipart body is buffered in memory
// before spilling to temporary files.
const multipartMemoryLimit = 8 << 20

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, posts, http.StatusOK)
}

// Show handles GET /posts/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}
	sendJSON(w, post, http.StatusOK)
}

// Create handles POST /add-post (multipart: title, content, author,
// featuredImage file)
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	upload, closer, err := formImage(r, media.PostImageTypes)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	post, err := pc.postService.CreatePost(r.Context(), services.CreatePostInput{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Author:  r.FormValue("author"),
		Image:   upload,
	})
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}
	sendJSON(w, post, http.StatusCreated)
}

// Update handles PUT /posts/{id}. The body is either multipart (when a
// replacement image rides along) or a plain JSON subset of the fields.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	var in services.UpdatePostInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			sendError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}

		upload, closer, err := formImage(r, media.PostImageTypes)
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if closer != nil {
			defer closer.Close()
		}

		in = services.UpdatePostInput{
			Title:   r.FormValue("title"),
			Content: r.FormValue("content"),
			Author:  r.FormValue("author"),
			Image:   upload,
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		in.Image = nil
	}

	post, err := pc.postService.UpdatePost(r.Context(), id, in)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}
	sendJSON(w, post, http.StatusOK)
}

// Delete handles DELETE /posts/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return
	}

	if err := pc.postService.DeletePost(r.Context(), id); err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}
	sendJSON(w, map[string]string{"message": "Post deleted successfully"}, http.StatusOK)
}

// formImage pulls the featuredImage file out of a parsed multipart form and
// validates it. It returns http.ErrMissingFile when no file was sent, which
// callers treat as "no image" rather than a failure.
func formImage(r *http.Request, allowed []string) (*media.Upload, io.Closer, error) {
	file, header, err := r.FormFile("featuredImage")
	if err != nil {
		return nil, nil, err
	}
	file.Close()

	return media.FromMultipart(header, allowed)
}
