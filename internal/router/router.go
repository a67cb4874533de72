package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogapi/internal/errors"
	"blogapi/internal/handler"
	"blogapi/internal/service"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Post    *handler.PostHandler
	Comment *handler.CommentHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, authService service.AuthService, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Bearer tokens are resolved by the auth service so revoked tokens are rejected too.
	requireAuth := echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.GET("/posts", h.Post.ListPosts)
	api.GET("/posts/:id", h.Post.GetPost)
	api.GET("/posts/:id/comments", h.Comment.ListComments)

	// Secured routes (require JWT authentication)
	api.POST("/auth/logout", h.Auth.Logout, requireAuth)
	api.GET("/user", h.User.CurrentUser, requireAuth)

	api.POST("/posts", h.Post.CreatePost, requireAuth)
	api.PUT("/posts/:id", h.Post.UpdatePost, requireAuth)
	api.DELETE("/posts/:id", h.Post.DeletePost, requireAuth)

	api.POST("/posts/:id/comments", h.Comment.CreateComment, requireAuth)
	api.PUT("/posts/:id/comments/:comment_id", h.Comment.UpdateComment, requireAuth)
	api.DELETE("/posts/:id/comments/:comment_id", h.Comment.DeleteComment, requireAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
