package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", ErrArticleNotFound, http.StatusNotFound, "Article not found"},
		{"wrapped not found", fmt.Errorf("get article 9: %w", ErrArticleNotFound), http.StatusNotFound, "Article not found"},
		{"conflict", ErrUserAlreadyExists, http.StatusConflict, "User already exists"},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"revoked", ErrTokenRevoked, http.StatusUnauthorized, "Token has been revoked"},
		{"incomplete image", ErrIncompleteImage, http.StatusBadRequest, ErrIncompleteImage.Error()},
		{"validation", Validation("title is required"), http.StatusBadRequest, "validation failed"},
		{"unknown", fmt.Errorf("dial tcp: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   ErrorResponse
	}{
		{
			name:       "route not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   ErrorResponse{Error: "Not Found", Code: "NOT_FOUND"},
		},
		{
			name:       "error response passes through",
			err:        MapErrorToHTTP(ErrArticleNotFound).Echo(),
			wantStatus: http.StatusNotFound,
			wantBody:   ErrorResponse{Error: "Article not found", Code: "ARTICLE_NOT_FOUND"},
		},
		{
			name:       "validation keeps its message",
			err:        Validation("title is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrorResponse{Error: "title is required", Code: "VALIDATION_FAILED"},
		},
		{
			name:       "plain error is hidden",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
