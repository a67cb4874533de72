package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned (usually wrapped with detail) when input is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrCommentPostMismatch is returned when a comment is addressed through the wrong post.
	ErrCommentPostMismatch = errors.New("comment does not belong to the specified post")

	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already taken")
	// ErrPostHasComments is returned when deleting a post that still has comments.
	ErrPostHasComments = errors.New("post has comments and cannot be deleted")

	// ErrInvalidCredentials is returned when username/email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned when no valid access token is present.
	ErrUnauthorized = errors.New("missing or invalid access token")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrForbidden is returned when a user modifies content they did not author.
	ErrForbidden = errors.New("only the author can modify this resource")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// mappings is checked in order; the first sentinel matched by errors.Is wins.
var mappings = []struct {
	target error
	status int
	code   string
}{
	{ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrCommentPostMismatch, http.StatusBadRequest, "COMMENT_POST_MISMATCH"},
	{ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
	{ErrPostHasComments, http.StatusConflict, "POST_HAS_COMMENTS"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
	{ErrCommentNotFound, http.StatusNotFound, "COMMENT_NOT_FOUND"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Wrapped errors keep their full message so validation detail reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.status, err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
