package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrValidation is returned when request input is incomplete or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrIncompleteImage is returned when only one of image and imageAlt is supplied.
	ErrIncompleteImage = errors.New("image and imageAlt must be provided together")
	// ErrInvalidLikeable is returned for an unknown likeable type.
	ErrInvalidLikeable = errors.New("unknown likeable type")
	// ErrInvalidReaction is returned for a reaction other than like or dislike.
	ErrInvalidReaction = errors.New("reaction must be like or dislike")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingToken is returned when no bearer token was supplied.
	ErrMissingToken = errors.New("No token provided")
	// ErrInvalidToken is returned when a token fails signature or expiry checks.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrTokenRevoked is returned when a token's jti is no longer in the token store.
	ErrTokenRevoked = errors.New("Token has been revoked")

	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("User already exists")

	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("Article not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("Comment not found")
	// ErrImageNotFound is returned when an image is not found.
	ErrImageNotFound = errors.New("Image not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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

// Echo converts e into an echo error carrying an ErrorResponse body.
func (e *HTTPError) Echo() *echo.HTTPError {
	return echo.NewHTTPError(e.StatusCode, e.ToErrorResponse())
}

// IsInternal reports whether e hides an unexpected failure.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrIncompleteImage, http.StatusBadRequest, "INCOMPLETE_IMAGE"},
	{ErrInvalidLikeable, http.StatusBadRequest, "INVALID_LIKEABLE"},
	{ErrInvalidReaction, http.StatusBadRequest, "INVALID_REACTION"},
	{ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrMissingToken, http.StatusUnauthorized, "MISSING_TOKEN"},
	{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	{ErrTokenRevoked, http.StatusUnauthorized, "TOKEN_REVOKED"},
	{ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
	{ErrArticleNotFound, http.StatusNotFound, "ARTICLE_NOT_FOUND"},
	{ErrCommentNotFound, http.StatusNotFound, "COMMENT_NOT_FOUND"},
	{ErrImageNotFound, http.StatusNotFound, "IMAGE_NOT_FOUND"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Wrapped domain errors keep their class; anything unknown becomes a
// generic 500 so no persistence detail reaches the caller.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}

// Validation wraps a validator message so it maps to 400.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// HTTPErrorHandler renders every error as an ErrorResponse, including
// the plain-string errors echo raises for unknown routes and methods.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	var ve *validationError
	switch {
	case errors.As(err, &he):
		status = he.Code
		switch msg := he.Message.(type) {
		case ErrorResponse:
			body = msg
		case string:
			body = ErrorResponse{Error: msg, Code: codeForStatus(status)}
		default:
			body = ErrorResponse{Error: http.StatusText(status), Code: codeForStatus(status)}
		}
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		body = ErrorResponse{Error: ve.msg, Code: "VALIDATION_FAILED"}
	default:
		mapped := MapErrorToHTTP(err)
		status = mapped.StatusCode
		body = mapped.ToErrorResponse()
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return ""
	}
}
