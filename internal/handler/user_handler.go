package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/service"
)

// UserHandler serves the profile of the signed in user.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CurrentUser godoc
// @Summary Get the signed in user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) CurrentUser(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
