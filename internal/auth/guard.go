package auth

import (
	"errors"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "articlehub/internal/errors"
)

// Context keys set by the guard.
const (
	ClaimsContextKey = "user"
	UserIDContextKey = "userId"
	EmailContextKey  = "email"
)

// Guard returns middleware that admits only requests carrying a valid
// bearer token whose jti is still present in the token store.
func Guard(jwtService *JWTService, store TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, apperrors.ErrInvalidToken
			}

			active, err := store.IsTokenActive(c.Request().Context(), claims.ID)
			if err != nil {
				return nil, err
			}
			if !active {
				return nil, apperrors.ErrTokenRevoked
			}

			c.Set(UserIDContextKey, claims.UserID)
			c.Set(EmailContextKey, claims.Email)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case c.Request().Header.Get(echo.HeaderAuthorization) == "":
				err = apperrors.ErrMissingToken
			case errors.Is(err, apperrors.ErrTokenRevoked):
				err = apperrors.ErrTokenRevoked
			case errors.Is(err, apperrors.ErrInvalidToken):
				err = apperrors.ErrInvalidToken
			default:
				if _, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); !ok {
					err = apperrors.ErrMissingToken
				} else if mapped := apperrors.MapErrorToHTTP(err); mapped.IsInternal() {
					c.Logger().Errorf("auth guard: %v", err)
					return mapped.Echo()
				} else {
					err = apperrors.ErrInvalidToken
				}
			}
			return apperrors.MapErrorToHTTP(err).Echo()
		},
	})
}

// ClaimsFromContext returns the claims the guard stored on c.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ClaimsContextKey).(*Claims)
	return claims, ok
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
