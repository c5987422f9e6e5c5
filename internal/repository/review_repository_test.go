// internal/repository/review_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"knowledge_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormReviewRepository_CreateAndFindByConcept(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()
	conceptID := uuid.New()
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i, confidence := range []int{2, 3, 5} {
		review := &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       conceptID,
			UserID:          userID,
			ConfidenceLevel: confidence,
			CreatedAt:       base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, db, review))
	}

	t.Run("新しい順で返る", func(t *testing.T) {
		got, err := repo.FindByConcept(ctx, db, userID, conceptID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 5, got[0].ConfidenceLevel)
		assert.Equal(t, 3, got[1].ConfidenceLevel)
		assert.Equal(t, 2, got[2].ConfidenceLevel)
	})

	t.Run("他ユーザーの履歴は見えない", func(t *testing.T) {
		got, err := repo.FindByConcept(ctx, db, uuid.New(), conceptID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func Test_gormReviewRepository_DuplicateClientToken(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()
	conceptID := uuid.New()
	token := "client-token-0001"

	first := &model.Review{
		ReviewID:        uuid.New(),
		ConceptID:       conceptID,
		UserID:          userID,
		ConfidenceLevel: 4,
		ClientToken:     &token,
	}
	require.NoError(t, repo.Create(ctx, db, first))

	// 同一トークンの再送は重複として弾かれる
	retry := &model.Review{
		ReviewID:        uuid.New(),
		ConceptID:       conceptID,
		UserID:          userID,
		ConfidenceLevel: 4,
		ClientToken:     &token,
	}
	err := repo.Create(ctx, db, retry)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)

	// トークンなしのレビューは何件でも作れる
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, db, &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       conceptID,
			UserID:          userID,
			ConfidenceLevel: 3,
		}))
	}

	got, err := repo.FindByConcept(ctx, db, userID, conceptID)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func Test_gormReviewRepository_FindSince(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()
	conceptID := uuid.New()
	base := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{-72 * time.Hour, -24 * time.Hour, 6 * time.Hour} {
		require.NoError(t, repo.Create(ctx, db, &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       conceptID,
			UserID:          userID,
			ConfidenceLevel: 3,
			CreatedAt:       base.Add(offset),
		}))
	}

	got, err := repo.FindSince(ctx, db, userID, base.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2, "since is inclusive")
	// 古い順 (トレンド集計の前提)
	assert.True(t, got[0].CreatedAt.Before(got[1].CreatedAt))
}

func Test_gormReviewRepository_FindCreationTimes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()
	conceptID := uuid.New()
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, db, &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       conceptID,
			UserID:          userID,
			ConfidenceLevel: 3,
			CreatedAt:       base.Add(time.Duration(-i) * 24 * time.Hour),
		}))
	}

	times, err := repo.FindCreationTimes(ctx, db, userID)
	require.NoError(t, err)
	require.Len(t, times, 3)
	assert.True(t, times[0].After(times[1]))
	assert.True(t, times[1].After(times[2]))
}

func Test_gormReviewRepository_DeleteByConcept(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormReviewRepository()
	userID := uuid.New()
	target := uuid.New()
	other := uuid.New()

	for _, conceptID := range []uuid.UUID{target, target, other} {
		require.NoError(t, repo.Create(ctx, db, &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       conceptID,
			UserID:          userID,
			ConfidenceLevel: 3,
		}))
	}

	require.NoError(t, repo.DeleteByConcept(ctx, db, userID, target))

	gone, err := repo.FindByConcept(ctx, db, userID, target)
	require.NoError(t, err)
	assert.Empty(t, gone)

	// 他の概念の履歴は残る
	kept, err := repo.FindByConcept(ctx, db, userID, other)
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	t.Run("履歴ゼロ件の削除はエラーにならない", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByConcept(ctx, db, userID, uuid.New()))
	})
}
