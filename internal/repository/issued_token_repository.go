package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"articlehub/internal/model"
)

// IssuedTokenRepository persists live session tokens by jti.
type IssuedTokenRepository interface {
	Create(ctx context.Context, token *model.IssuedToken) error
	FindByJTI(ctx context.Context, jti string) (*model.IssuedToken, error)
	DeleteByJTI(ctx context.Context, jti string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type issuedTokenRepository struct {
	db *gorm.DB
}

// NewIssuedTokenRepository creates a new issued token repository.
func NewIssuedTokenRepository(db *gorm.DB) IssuedTokenRepository {
	return &issuedTokenRepository{db: db}
}

// Create inserts a token row.
func (r *issuedTokenRepository) Create(ctx context.Context, token *model.IssuedToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByJTI finds a token row by its identifier.
func (r *issuedTokenRepository) FindByJTI(ctx context.Context, jti string) (*model.IssuedToken, error) {
	var token model.IssuedToken
	if err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByJTI removes the token row and reports how many rows went away.
func (r *issuedTokenRepository) DeleteByJTI(ctx context.Context, jti string) (int64, error) {
	res := r.db.WithContext(ctx).Where("jti = ?", jti).Delete(&model.IssuedToken{})
	return res.RowsAffected, res.Error
}

// DeleteExpired removes rows whose expiry is before now.
func (r *issuedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("exp < ?", now).Delete(&model.IssuedToken{})
	return res.RowsAffected, res.Error
}
