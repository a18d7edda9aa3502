package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments and their moderation
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /posts/{id}/comments
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Post id is required", http.StatusBadRequest)
		return
	}

	var in services.CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.CreateComment(postID, in)
	if err != nil {
		sendServiceError(w, err, "Post not found")
		return
	}
	sendJSON(w, comment, http.StatusCreated)
}

// Index handles GET /posts/{id}/comments, the public listing
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Post id is required", http.StatusBadRequest)
		return
	}

	comments, err := cc.commentService.ListPublicComments(postID)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	sendJSON(w, comments, http.StatusOK)
}

// AdminIndex handles GET /comments, the moderation queue
func (cc *CommentController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListAllComments()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if comments == nil {
		comments = []*models.AdminComment{}
	}
	sendJSON(w, comments, http.StatusOK)
}

// Approve handles PUT /comments/{id}/approve
func (cc *CommentController) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Comment id is required", http.StatusBadRequest)
		return
	}

	comment, err := cc.commentService.ApproveComment(id)
	if err != nil {
		sendServiceError(w, err, "Comment not found")
		return
	}
	sendJSON(w, comment, http.StatusOK)
}

// Delete handles DELETE /comments/{id}
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Comment id is required", http.StatusBadRequest)
		return
	}

	if err := cc.commentService.DeleteComment(id); err != nil {
		sendServiceError(w, err, "Comment not found")
		return
	}
	sendJSON(w, map[string]interface{}{
		"success": true,
		"message": "Comment deleted successfully",
	}, http.StatusOK)
}
