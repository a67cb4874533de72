package repository

import (
	"context"

	"gorm.io/gorm"

	"blogapi/internal/model"
)

// PostFilter narrows a post listing. Zero AuthorID lists all authors.
type PostFilter struct {
	AuthorID uint
	ListOptions
}

// PostRepository defines blog post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, filter PostFilter) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit("Author").Create(post).Error
}

// FindByID finds a post by ID.
func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts ordered by id.
func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]model.Post, error) {
	query := r.db.WithContext(ctx).Model(&model.Post{})
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	posts := make([]model.Post, 0)
	if err := filter.apply(query.Order("id ASC")).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update writes title and content of an existing post.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Model(post).
		Updates(map[string]interface{}{"title": post.Title, "content": post.Content}).Error
}

// Delete removes a post. It returns gorm.ErrRecordNotFound when nothing was deleted.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
