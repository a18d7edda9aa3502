package services

import (
	"errors"
	"sort"
	"strings"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService owns comment moderation: comments enter pending, become
// visible only once approved, and approval is a one-way transition.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateCommentInput carries a visitor's comment submission.
type CreateCommentInput struct {
	Name    string
	Email   string
	Message string
}

// CreateComment persists a new comment against an existing post. The comment
// always enters moderation as pending; nothing a visitor submits can make it
// approved.
func (s *CommentService) CreateComment(postID int, in CreateCommentInput) (*models.Comment, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" || message == "" {
		return nil, validationf("Name and message are required")
	}
	if len(name) > 80 {
		return nil, validationf("Name must be at most 80 characters")
	}
	if len(email) > 120 {
		return nil, validationf("Email must be at most 120 characters")
	}
	if len(message) > 2000 {
		return nil, validationf("Message must be at most 2000 characters")
	}
	if email != "" && validate.Var(email, "email") != nil {
		return nil, validationf("Please provide a valid email")
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	pending := false
	comment := &models.Comment{
		PostID:   postID,
		Name:     name,
		Email:    email,
		Message:  message,
		Approved: &pending,
	}
	comment.BeforeCreate()

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPublicComments returns the publicly visible comments for a post,
// newest first. Explicitly pending comments are excluded; records from
// before moderation existed (no approved flag) stay visible.
func (s *CommentService) ListPublicComments(postID int) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.PubliclyVisible() {
			visible = append(visible, comment)
		}
	}
	sortNewestFirst(visible)
	return visible, nil
}

// ListAllComments returns every comment for the moderation queue, newest
// first, each annotated with its post's title. A comment whose post has been
// deleted is kept; it just carries no title.
func (s *CommentService) ListAllComments() ([]*models.AdminComment, error) {
	comments, err := s.commentRepo.List()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(comments)

	annotated := make([]*models.AdminComment, 0, len(comments))
	for _, comment := range comments {
		ac, err := s.annotate(comment)
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, ac)
	}
	return annotated, nil
}

// ApproveComment marks the comment approved. Approving an already-approved
// comment is a no-op success; there is no way back to pending.
func (s *CommentService) ApproveComment(id int) (*models.AdminComment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	approved := true
	comment.Approved = &approved
	comment.Touch()

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.annotate(comment)
}

// DeleteComment removes the comment; the referenced post is untouched.
func (s *CommentService) DeleteComment(id int) error {
	return s.commentRepo.Delete(id)
}

// annotate attaches the post title, tolerating a post that no longer exists.
func (s *CommentService) annotate(comment *models.Comment) (*models.AdminComment, error) {
	ac := &models.AdminComment{Comment: *comment}

	post, err := s.postRepo.GetByID(comment.PostID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ac, nil
		}
		return nil, err
	}
	ac.PostTitle = post.Title
	return ac, nil
}

func sortNewestFirst(comments []*models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
