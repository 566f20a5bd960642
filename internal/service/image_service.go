package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "articlehub/internal/errors"
	"articlehub/internal/model"
	"articlehub/internal/repository"
)

// ImageService exposes read access to article images.
type ImageService interface {
	Get(ctx context.Context, id uint) (*model.Image, error)
}

type imageService struct {
	repo repository.ArticleRepository
}

// NewImageService creates a new image service.
func NewImageService(repo repository.ArticleRepository) ImageService {
	return &imageService{repo: repo}
}

func (s *imageService) Get(ctx context.Context, id uint) (*model.Image, error) {
	image, err := s.repo.FindImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, fmt.Errorf("get image %d: %w", id, err)
	}
	return image, nil
}
