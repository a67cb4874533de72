package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// PostHandler handles blog post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRequest is the body for creating or replacing a post.
type PostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// PostResponse wraps a single post with a message.
type PostResponse struct {
	Message string      `json:"message"`
	Post    *model.Post `json:"post"`
}

// PostListResponse wraps a page of posts.
type PostListResponse struct {
	Posts []model.Post `json:"posts"`
}

// ListPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param author_id query int false "Only posts by this author"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} PostListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	filter := repository.PostFilter{ListOptions: opts}
	if err := echo.QueryParamsBinder(c).Uint("author_id", &filter.AuthorID).BindError(); err != nil {
		return validationError("invalid author_id")
	}

	posts, err := h.postService.ListPosts(c.Request().Context(), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, PostListResponse{Posts: posts})
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostRequest true "Post"
// @Success 201 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), claims.UserID, req.Title, req.Content)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, PostResponse{
		Message: "post created successfully",
		Post:    post,
	})
}

// GetPost godoc
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postService.GetPost(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body PostRequest true "Post"
// @Success 200 {object} PostResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), claims.UserID, id, req.Title, req.Content)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, PostResponse{
		Message: "post updated successfully",
		Post:    post,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Description Posts that still have comments cannot be deleted.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postService.DeletePost(c.Request().Context(), claims.UserID, id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "post deleted successfully"})
}
