package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blogapi/internal/auth"
	"blogapi/internal/errors"
	"blogapi/internal/repository"
)

// ClaimsContextKey is where the bearer middleware stores *auth.Claims.
const ClaimsContextKey = "user"

// MessageResponse is a body carrying only a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func validationError(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: msg,
		Code:  "VALIDATION_ERROR",
	})
}

// serviceError converts a service error into an echo error with a JSON body.
func serviceError(c echo.Context, err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return validationError("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return validationError(err.Error())
	}
	return nil
}

func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, serviceError(c, errors.ErrUnauthorized)
	}
	return claims, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, validationError("invalid " + name)
	}
	return uint(id), nil
}

func listOptions(c echo.Context) (repository.ListOptions, error) {
	var opts repository.ListOptions
	err := echo.QueryParamsBinder(c).
		Int("limit", &opts.Limit).
		Int("offset", &opts.Offset).
		BindError()
	if err != nil {
		return opts, validationError("limit and offset must be integers")
	}
	return opts.Normalize(), nil
}
