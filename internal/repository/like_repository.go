package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"articlehub/internal/model"
)

// LikeRepository defines like counter persistence operations.
type LikeRepository interface {
	Find(ctx context.Context, likeableType model.LikeableType, likeableID uint) (*model.Like, error)
	Increment(ctx context.Context, likeableType model.LikeableType, likeableID uint, column string) (*model.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Find returns the counters row for a likeable.
func (r *likeRepository) Find(ctx context.Context, likeableType model.LikeableType, likeableID uint) (*model.Like, error) {
	var like model.Like
	if err := r.db.WithContext(ctx).
		Where("likeable_type = ? AND likeable_id = ?", likeableType, likeableID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// Increment bumps column ("likes" or "dislikes") by one, creating the row
// first if needed, and returns the updated counters.
func (r *likeRepository) Increment(ctx context.Context, likeableType model.LikeableType, likeableID uint, column string) (*model.Like, error) {
	var like model.Like
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.Like{LikeableType: likeableType, LikeableID: likeableID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Like{}).
			Where("likeable_type = ? AND likeable_id = ?", likeableType, likeableID).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Where("likeable_type = ? AND likeable_id = ?", likeableType, likeableID).First(&like).Error
	})
	if err != nil {
		return nil, err
	}
	return &like, nil
}
