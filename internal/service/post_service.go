// Package service implements the application's domain operations on top of
// the repositories.
package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// PostService owns the post state transitions: create, update, delete,
// append comment, replace reactions.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts returns all posts with owner and comments populated.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns one post regardless of owner.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// CreatePost inserts a new post owned by the input user. CreatedAt and
// LastModified start equal; comments start empty and reactions all-zero.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	now := time.Now().UTC()
	post := &models.Post{
		Title:        in.Title,
		Content:      in.Content,
		UserID:       in.UserID,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost changes title and/or content of a post the user owns and
// recomputes LastModified. A post owned by someone else resolves exactly
// like a missing one.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	fields := map[string]any{}
	if in.Title != "" {
		if err := validation.ValidateTitle(in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["title"] = in.Title
	}
	if in.Content != "" {
		if err := validation.ValidateContent(in.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["content"] = in.Content
	}
	if len(fields) == 0 {
		return nil, models.NewValidationError("title or content is required")
	}
	fields["last_modified"] = time.Now().UTC()

	if err := s.postRepo.UpdateOwned(ctx, in.PostID, in.UserID, fields); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID)
}

// DeletePost removes a post the user owns together with its comments.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	return s.postRepo.DeleteOwned(ctx, postID, userID)
}

// AppendComment adds a comment to any existing post. Ownership is not
// required and the post's LastModified is left untouched.
func (s *PostService) AppendComment(ctx context.Context, postID uint, content string) (*models.Post, error) {
	if err := validation.ValidateComment(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:    postID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID)
}

// ReplaceReactions overwrites the post's reaction counters with the
// supplied values. Ownership is not required; concurrent writers race
// last-write-wins.
func (s *PostService) ReplaceReactions(ctx context.Context, postID uint, reactions models.Reactions) (*models.Post, error) {
	if err := validation.ValidateReactions(reactions); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.postRepo.ReplaceReactions(ctx, postID, reactions); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}
