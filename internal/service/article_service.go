package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"articlehub/internal/cache"
	apperrors "articlehub/internal/errors"
	"articlehub/internal/model"
	"articlehub/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

// ArticleInput carries the article fields a caller supplied. Nil means
// "not supplied"; on update only supplied fields change.
type ArticleInput struct {
	Title            *string
	ShortDescription *string
	Description      *string
	Image            *string
	ImageAlt         *string
}

// ArticleService handles article operations. Writes that touch the
// article's image run in a single transaction.
type ArticleService interface {
	List(ctx context.Context) ([]model.Article, error)
	Get(ctx context.Context, id uint) (*model.Article, error)
	Create(ctx context.Context, in ArticleInput) (*model.Article, error)
	Update(ctx context.Context, id uint, in ArticleInput) (*model.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleService struct {
	repo  repository.ArticleRepository
	cache *cache.Client
}

// NewArticleService creates a new article service.
func NewArticleService(repo repository.ArticleRepository, cache *cache.Client) ArticleService {
	return &articleService{
		repo:  repo,
		cache: cache,
	}
}

func (s *articleService) cacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

// List returns all articles with their images.
func (s *articleService) List(ctx context.Context) ([]model.Article, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves an article by ID with caching.
func (s *articleService) Get(ctx context.Context, id uint) (*model.Article, error) {
	var cached model.Article
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	article, err := s.find(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), article, articleCacheTTL)
	return article, nil
}

// Create inserts the image (when given) and then the article referencing it.
func (s *articleService) Create(ctx context.Context, in ArticleInput) (*model.Article, error) {
	if err := validateImagePair(in); err != nil {
		return nil, err
	}
	if !present(in.Title) {
		return nil, apperrors.Validation("title is required")
	}

	var id uint
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.ArticleRepository) error {
		article := &model.Article{
			Title:            deref(in.Title),
			ShortDescription: deref(in.ShortDescription),
			Description:      deref(in.Description),
		}

		if present(in.Image) {
			image := &model.Image{Image: *in.Image, ImageAlt: *in.ImageAlt}
			if err := tx.CreateImage(ctx, image); err != nil {
				return fmt.Errorf("create image: %w", err)
			}
			article.ImageID = &image.ID
		}

		if err := tx.Create(ctx, article); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		id = article.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.find(ctx, s.repo, id)
}

// Update applies the supplied fields. New image data is merged into the
// existing image row, or inserted and linked when the article has none.
func (s *articleService) Update(ctx context.Context, id uint, in ArticleInput) (*model.Article, error) {
	if err := validateImagePair(in); err != nil {
		return nil, err
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.ArticleRepository) error {
		article, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if in.Title != nil {
			fields["title"] = *in.Title
		}
		if in.ShortDescription != nil {
			fields["short_description"] = *in.ShortDescription
		}
		if in.Description != nil {
			fields["description"] = *in.Description
		}

		if present(in.Image) {
			if article.ImageID == nil {
				image := &model.Image{Image: *in.Image, ImageAlt: *in.ImageAlt}
				if err := tx.CreateImage(ctx, image); err != nil {
					return fmt.Errorf("create image: %w", err)
				}
				fields["image_id"] = image.ID
			} else {
				if err := tx.UpdateImage(ctx, *article.ImageID, map[string]interface{}{
					"image":     *in.Image,
					"image_alt": *in.ImageAlt,
				}); err != nil {
					return fmt.Errorf("update image: %w", err)
				}
			}
		}

		if err := tx.Update(ctx, id, fields); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return s.find(ctx, s.repo, id)
}

// Delete removes the article together with its image, comments and likes.
func (s *articleService) Delete(ctx context.Context, id uint) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.ArticleRepository) error {
		article, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := tx.DeleteComments(ctx, id); err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.DeleteLikes(ctx, model.LikeableArticle, id); err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		if err := tx.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		if article.ImageID != nil {
			if err := tx.DeleteImage(ctx, *article.ImageID); err != nil {
				return fmt.Errorf("delete image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *articleService) find(ctx context.Context, repo repository.ArticleRepository, id uint) (*model.Article, error) {
	article, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return article, nil
}

// validateImagePair rejects input that carries only half of an image.
func validateImagePair(in ArticleInput) error {
	if present(in.Image) != present(in.ImageAlt) {
		return apperrors.ErrIncompleteImage
	}
	return nil
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
