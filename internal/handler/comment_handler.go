package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/model"
	"blogapi/internal/service"
)

// CommentHandler handles comment endpoints nested under a post.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest is the body for creating or replacing a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentResponse wraps a single comment with a message.
type CommentResponse struct {
	Message string         `json:"message"`
	Comment *model.Comment `json:"comment"`
}

// CommentListResponse wraps a page of comments.
type CommentListResponse struct {
	Comments []model.Comment `json:"comments"`
}

// ListComments godoc
// @Summary List comments of a post
// @Tags comments
// @Produce json
// @Param id path int true "Post ID"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} CommentListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	opts, err := listOptions(c)
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListComments(c.Request().Context(), postID, opts)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, CommentListResponse{Comments: comments})
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.AddComment(c.Request().Context(), claims.UserID, postID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, CommentResponse{
		Message: "comment created successfully",
		Comment: comment,
	})
}

// UpdateComment godoc
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Param request body CommentRequest true "Comment"
// @Success 200 {object} CommentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/{comment_id} [put]
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.commentService.UpdateComment(c.Request().Context(), claims.UserID, postID, commentID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, CommentResponse{
		Message: "comment updated successfully",
		Comment: comment,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.commentService.DeleteComment(c.Request().Context(), claims.UserID, postID, commentID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "comment deleted successfully"})
}
