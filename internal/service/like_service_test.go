package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "articlehub/internal/errors"
	"articlehub/internal/model"
	"articlehub/internal/repository"
)

func TestLikeService(t *testing.T) {
	gormDB := setupTestDB(t)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	articles := NewArticleService(articleRepo, nil)
	comments := NewCommentService(commentRepo, articleRepo)
	svc := NewLikeService(repository.NewLikeRepository(gormDB), articleRepo, commentRepo)
	ctx := context.Background()

	article, err := articles.Create(ctx, ArticleInput{Title: strPtr("a")})
	require.NoError(t, err)
	comment, err := comments.Create(ctx, article.ID, "hi")
	require.NoError(t, err)

	t.Run("no votes yet", func(t *testing.T) {
		like, err := svc.Get(ctx, "articles", article.ID)
		require.NoError(t, err)
		assert.Equal(t, model.LikeableArticle, like.LikeableType)
		assert.Zero(t, like.Likes)
		assert.Zero(t, like.Dislikes)
	})

	t.Run("votes accumulate on one row", func(t *testing.T) {
		_, err := svc.React(ctx, "Article", article.ID, "like")
		require.NoError(t, err)
		_, err = svc.React(ctx, "article", article.ID, "like")
		require.NoError(t, err)
		like, err := svc.React(ctx, "articles", article.ID, "dislike")
		require.NoError(t, err)
		assert.Equal(t, 2, like.Likes)
		assert.Equal(t, 1, like.Dislikes)
		assert.Equal(t, int64(1), countRows(t, gormDB, &model.Like{}))
	})

	t.Run("comments are likeable", func(t *testing.T) {
		like, err := svc.React(ctx, "comments", comment.ID, "like")
		require.NoError(t, err)
		assert.Equal(t, model.LikeableComment, like.LikeableType)
		assert.Equal(t, 1, like.Likes)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.React(ctx, "users", 1, "like")
		assert.ErrorIs(t, err, apperrors.ErrInvalidLikeable)
		_, err = svc.Get(ctx, "users", 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidLikeable)
		_, err = svc.React(ctx, "articles", article.ID, "love")
		assert.ErrorIs(t, err, apperrors.ErrInvalidReaction)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := svc.React(ctx, "articles", 999, "like")
		assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
		_, err = svc.React(ctx, "comments", 999, "like")
		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})
}
