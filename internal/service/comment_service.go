package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "articlehub/internal/errors"
	"articlehub/internal/model"
	"articlehub/internal/repository"
)

// CommentService handles comments attached to articles.
type CommentService interface {
	ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error)
	Create(ctx context.Context, articleID uint, content string) (*model.Comment, error)
	Update(ctx context.Context, id uint, content string) (*model.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentService struct {
	repo        repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(repo repository.CommentRepository, articleRepo repository.ArticleRepository) CommentService {
	return &commentService{
		repo:        repo,
		articleRepo: articleRepo,
	}
}

func (s *commentService) ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error) {
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}
	comments, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) Create(ctx context.Context, articleID uint, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content is required")
	}
	if err := s.requireArticle(ctx, articleID); err != nil {
		return nil, err
	}

	comment := &model.Comment{ArticleID: articleID, Content: content}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, id uint, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validation("content is required")
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateContent(ctx, id, content); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return s.find(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if n == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

func (s *commentService) find(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return comment, nil
}

func (s *commentService) requireArticle(ctx context.Context, articleID uint) error {
	ok, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return fmt.Errorf("check article %d: %w", articleID, err)
	}
	if !ok {
		return apperrors.ErrArticleNotFound
	}
	return nil
}
