package repository

import (
	"context"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint, opts ListOptions) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Omit("Author", "Post").Create(comment).Error
}

// FindByID finds a comment by ID.
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns the comments of a post ordered by id.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, opts ListOptions) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	query := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC")
	if err := opts.apply(query).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update writes the content of an existing comment.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Model(comment).Update("content", comment.Content).Error
}

// Delete removes a comment. It returns gorm.ErrRecordNotFound when nothing was deleted.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
