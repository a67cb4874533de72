package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"blogapi/internal/cache"
	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/render"
	"blogapi/internal/repository"
)

// postCacheTTL bounds how long a read racing an update can keep serving the old post.
const postCacheTTL = 30 * time.Second

// PostService handles blog post operations.
type PostService interface {
	CreatePost(ctx context.Context, authorID uint, title, content string) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	ListPosts(ctx context.Context, filter repository.PostFilter) ([]model.Post, error)
	UpdatePost(ctx context.Context, actorID, id uint, title, content string) (*model.Post, error)
	DeletePost(ctx context.Context, actorID, id uint) error
}

type postService struct {
	repo  repository.PostRepository
	cache *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(repo repository.PostRepository, cache *cache.Client) PostService {
	return &postService{
		repo:  repo,
		cache: cache,
	}
}

func (s *postService) cacheKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

func validatePost(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return "", "", fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	return title, content, nil
}

func withHTML(post *model.Post) *model.Post {
	post.ContentHTML = render.Markdown(post.Content)
	return post
}

// CreatePost stores a new post authored by authorID.
func (s *postService) CreatePost(ctx context.Context, authorID uint, title, content string) (*model.Post, error) {
	title, content, err := validatePost(title, content)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return withHTML(post), nil
}

// GetPost retrieves a post by ID with caching.
func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return withHTML(post), nil
}

func (s *postService) findPost(ctx context.Context, id uint) (*model.Post, error) {
	var cached model.Post
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), post, postCacheTTL)
	return post, nil
}

// ListPosts returns posts ordered by id.
func (s *postService) ListPosts(ctx context.Context, filter repository.PostFilter) ([]model.Post, error) {
	posts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		withHTML(&posts[i])
	}
	return posts, nil
}

// UpdatePost replaces title and content. Only the author may update.
func (s *postService) UpdatePost(ctx context.Context, actorID, id uint, title, content string) (*model.Post, error) {
	title, content, err := validatePost(title, content)
	if err != nil {
		return nil, err
	}

	post, err := s.ownedPost(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return withHTML(post), nil
}

// DeletePost removes a post. Only the author may delete, and only once it has no comments.
func (s *postService) DeletePost(ctx context.Context, actorID, id uint) error {
	if _, err := s.ownedPost(ctx, actorID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.ErrPostNotFound
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return apperrors.ErrPostHasComments
		}
		return fmt.Errorf("delete post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ownedPost loads a post from the database, bypassing the cache, and checks authorship.
func (s *postService) ownedPost(ctx context.Context, actorID, id uint) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	if post.AuthorID != actorID {
		return nil, apperrors.ErrForbidden
	}
	return post, nil
}
