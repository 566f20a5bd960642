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

// LikeService handles like/dislike counters on likeable entities.
type LikeService interface {
	Get(ctx context.Context, kind string, id uint) (*model.Like, error)
	React(ctx context.Context, kind string, id uint, reaction string) (*model.Like, error)
}

type likeService struct {
	repo        repository.LikeRepository
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

// NewLikeService creates a new like service.
func NewLikeService(repo repository.LikeRepository, articleRepo repository.ArticleRepository, commentRepo repository.CommentRepository) LikeService {
	return &likeService{
		repo:        repo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

// Get returns the counters of a likeable; zero counters when none were cast yet.
func (s *likeService) Get(ctx context.Context, kind string, id uint) (*model.Like, error) {
	likeableType, ok := model.ParseLikeableType(kind)
	if !ok {
		return nil, apperrors.ErrInvalidLikeable
	}

	like, err := s.repo.Find(ctx, likeableType, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Like{LikeableType: likeableType, LikeableID: id}, nil
		}
		return nil, fmt.Errorf("get likes: %w", err)
	}
	return like, nil
}

// React records one like or dislike on an existing likeable.
func (s *likeService) React(ctx context.Context, kind string, id uint, reaction string) (*model.Like, error) {
	likeableType, ok := model.ParseLikeableType(kind)
	if !ok {
		return nil, apperrors.ErrInvalidLikeable
	}

	var column string
	switch model.Reaction(reaction) {
	case model.ReactionLike:
		column = "likes"
	case model.ReactionDislike:
		column = "dislikes"
	default:
		return nil, apperrors.ErrInvalidReaction
	}

	if err := s.requireLikeable(ctx, likeableType, id); err != nil {
		return nil, err
	}

	like, err := s.repo.Increment(ctx, likeableType, id, column)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", reaction, err)
	}
	return like, nil
}

func (s *likeService) requireLikeable(ctx context.Context, likeableType model.LikeableType, id uint) error {
	var (
		exists   bool
		err      error
		notFound error
	)
	switch likeableType {
	case model.LikeableArticle:
		exists, err = s.articleRepo.Exists(ctx, id)
		notFound = apperrors.ErrArticleNotFound
	case model.LikeableComment:
		exists, err = s.commentRepo.Exists(ctx, id)
		notFound = apperrors.ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("check %s %d: %w", likeableType, id, err)
	}
	if !exists {
		return notFound
	}
	return nil
}
