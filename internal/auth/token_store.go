package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"articlehub/internal/model"
	"articlehub/internal/repository"
)

// TokenStoreInterface defines the interface for token storage operations.
// A stored jti means the token is live; a missing jti means it was
// revoked or never issued.
type TokenStoreInterface interface {
	StoreToken(ctx context.Context, jti string, exp time.Time) error
	IsTokenActive(ctx context.Context, jti string) (bool, error)
	RevokeToken(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenStore keeps issued tokens in the relational database.
type TokenStore struct {
	repo repository.IssuedTokenRepository
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(repo repository.IssuedTokenRepository) *TokenStore {
	return &TokenStore{repo: repo}
}

// StoreToken records a token as live until exp.
func (s *TokenStore) StoreToken(ctx context.Context, jti string, exp time.Time) error {
	if err := s.repo.Create(ctx, &model.IssuedToken{JTI: jti, Exp: exp}); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// IsTokenActive reports whether the jti is still in the store.
func (s *TokenStore) IsTokenActive(ctx context.Context, jti string) (bool, error) {
	if _, err := s.repo.FindByJTI(ctx, jti); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup token: %w", err)
	}
	return true, nil
}

// RevokeToken deletes the jti and reports whether a row was removed.
func (s *TokenStore) RevokeToken(ctx context.Context, jti string) (bool, error) {
	n, err := s.repo.DeleteByJTI(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("revoke token: %w", err)
	}
	return n > 0, nil
}

// PurgeExpired removes tokens that expired before now.
func (s *TokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("purge tokens: %w", err)
	}
	return n, nil
}

// RunPurger deletes expired tokens every interval until ctx is done.
func RunPurger(ctx context.Context, store TokenStoreInterface, interval time.Duration, logger echo.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx, time.Now())
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Errorf("token purge: %v", err)
				continue
			}
			if n > 0 {
				logger.Infof("token purge: removed %d expired tokens", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
