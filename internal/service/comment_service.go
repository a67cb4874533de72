package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// CommentService handles comment operations on posts.
type CommentService interface {
	AddComment(ctx context.Context, authorID, postID uint, content string) (*model.Comment, error)
	ListComments(ctx context.Context, postID uint, opts repository.ListOptions) ([]model.Comment, error)
	UpdateComment(ctx context.Context, actorID, postID, commentID uint, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, actorID, postID, commentID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

func validateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *commentService) ensurePost(ctx context.Context, postID uint) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	return nil
}

// AddComment attaches a new comment to an existing post.
func (s *commentService) AddComment(ctx context.Context, authorID, postID uint, content string) (*model.Comment, error) {
	if err := validateComment(content); err != nil {
		return nil, err
	}
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		// The post can disappear between the lookup and the insert.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListComments returns the comments of a post ordered by id.
func (s *commentService) ListComments(ctx context.Context, postID uint, opts repository.ListOptions) ([]model.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// UpdateComment replaces the content of a comment. Only the author may update.
func (s *commentService) UpdateComment(ctx context.Context, actorID, postID, commentID uint, content string) (*model.Comment, error) {
	if err := validateComment(content); err != nil {
		return nil, err
	}

	comment, err := s.ownedComment(ctx, actorID, postID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func (s *commentService) DeleteComment(ctx context.Context, actorID, postID, commentID uint) error {
	if _, err := s.ownedComment(ctx, actorID, postID, commentID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) ownedComment(ctx context.Context, actorID, postID, commentID uint) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment.PostID != postID {
		return nil, apperrors.ErrCommentPostMismatch
	}
	if comment.AuthorID != actorID {
		return nil, apperrors.ErrForbidden
	}
	return comment, nil
}
