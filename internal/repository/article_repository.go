package repository

import (
	"context"

	"gorm.io/gorm"

	"articlehub/internal/model"
)

// ArticleRepository defines article and image persistence operations.
type ArticleRepository interface {
	List(ctx context.Context) ([]model.Article, error)
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	CreateImage(ctx context.Context, image *model.Image) error
	UpdateImage(ctx context.Context, id uint, fields map[string]interface{}) error
	FindImageByID(ctx context.Context, id uint) (*model.Image, error)
	DeleteImage(ctx context.Context, id uint) error
	DeleteComments(ctx context.Context, articleID uint) error
	DeleteLikes(ctx context.Context, likeableType model.LikeableType, likeableID uint) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ArticleRepository) error) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// List returns every article with its image, oldest first.
func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	articles := []model.Article{}
	if err := r.db.WithContext(ctx).Preload("Image").Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID finds an article by ID with its image.
func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Preload("Image").Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Exists reports whether an article with the given ID is present.
func (r *articleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the article row only; the image is written separately.
func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Omit("Image").Create(article).Error
}

// Update changes only the given columns.
func (r *articleRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes an article by ID.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Article{}, id).Error
}

// CreateImage inserts an image row.
func (r *articleRepository) CreateImage(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// UpdateImage changes only the given image columns.
func (r *articleRepository) UpdateImage(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Image{}).Where("id = ?", id).Updates(fields).Error
}

// FindImageByID finds an image by ID.
func (r *articleRepository) FindImageByID(ctx context.Context, id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteImage removes an image by ID.
func (r *articleRepository) DeleteImage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Image{}, id).Error
}

// DeleteComments removes all comments of an article and their like counters.
func (r *articleRepository) DeleteComments(ctx context.Context, articleID uint) error {
	db := r.db.WithContext(ctx)
	commentIDs := db.Model(&model.Comment{}).Select("id").Where("article_id = ?", articleID)
	if err := db.Where("likeable_type = ? AND likeable_id IN (?)", model.LikeableComment, commentIDs).
		Delete(&model.Like{}).Error; err != nil {
		return err
	}
	return db.Where("article_id = ?", articleID).Delete(&model.Comment{}).Error
}

// DeleteLikes removes the like counters of a likeable.
func (r *articleRepository) DeleteLikes(ctx context.Context, likeableType model.LikeableType, likeableID uint) error {
	return r.db.WithContext(ctx).
		Where("likeable_type = ? AND likeable_id = ?", likeableType, likeableID).
		Delete(&model.Like{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *articleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ArticleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &articleRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
