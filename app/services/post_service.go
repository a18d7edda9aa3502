package services

import (
	"context"
	"strings"

	"inkwell/app/media"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/rs/zerolog"
)

// PostService owns the post/media lifecycle: it is the only component that
// writes a post's FeaturedImage field or deletes the files that field names.
// The contract is best-effort across the two stores (no transaction spans
// both): file deletes tolerate prior absence, and any other store fault
// aborts the operation.
type PostService struct {
	postRepo repositories.PostRepository
	store    media.Store
	log      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, store media.Store, log zerolog.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		store:    store,
		log:      log,
	}
}

// CreatePostInput carries the fields of a post creation request. Image is
// required.
type CreatePostInput struct {
	Title   string
	Content string
	Author  string
	Image   *media.Upload
}

// UpdatePostInput carries the optional fields of a partial update. Empty
// strings leave the stored value untouched; a nil Image leaves the current
// file in place.
type UpdatePostInput struct {
	Title   string
	Content string
	Author  string
	Image   *media.Upload
}

// CreatePost validates the input, stores the image under a generated name,
// and persists the post. If the record insert fails the stored file is
// removed again so no unreferenced file is left behind.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	author := strings.TrimSpace(in.Author)

	if title == "" || content == "" || author == "" {
		return nil, validationf("All fields are required")
	}
	if in.Image == nil {
		return nil, validationf("Image file is required")
	}

	filename := media.GenerateFilename(in.Image.Filename)
	if err := s.store.Save(ctx, filename, in.Image.Content, in.Image.Size); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:         title,
		Content:       content,
		Author:        author,
		FeaturedImage: filename,
	}
	post.BeforeCreate()

	if err := s.postRepo.Create(post); err != nil {
		if cleanupErr := s.store.Delete(ctx, filename); cleanupErr != nil {
			s.log.Warn().Err(cleanupErr).Str("file", filename).
				Msg("failed to remove image after aborted post create")
		}
		return nil, err
	}

	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts; ordering is left to the caller
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// UpdatePost applies the provided fields to an existing post. When a
// replacement image is supplied, the new file is stored first, then the
// previous file is deleted (tolerating absence), then the field is updated.
func (s *PostService) UpdatePost(ctx context.Context, id int, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		post.Title = title
	}
	if content := strings.TrimSpace(in.Content); content != "" {
		post.Content = content
	}
	if author := strings.TrimSpace(in.Author); author != "" {
		post.Author = author
	}

	if in.Image != nil {
		filename := media.GenerateFilename(in.Image.Filename)
		if err := s.store.Save(ctx, filename, in.Image.Content, in.Image.Size); err != nil {
			return nil, err
		}
		if post.FeaturedImage != "" && post.FeaturedImage != filename {
			if err := s.store.Delete(ctx, post.FeaturedImage); err != nil {
				s.log.Warn().Err(err).Str("file", post.FeaturedImage).
					Msg("failed to remove replaced image")
				return nil, err
			}
		}
		post.FeaturedImage = filename
	}

	post.Touch()
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post's image file (if any), then the record. The
// file goes first; both steps are best-effort and the gap between them is an
// accepted consistency window, not something a transaction covers here.
// Comments referencing the post are left in place; reads tolerate the
// orphaned reference.
func (s *PostService) DeletePost(ctx context.Context, id int) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if post.HasImage() {
		if err := s.store.Delete(ctx, post.FeaturedImage); err != nil {
			s.log.Warn().Err(err).Str("file", post.FeaturedImage).
				Msg("failed to remove image during post delete")
			return err
		}
	}

	return s.postRepo.Delete(id)
}
