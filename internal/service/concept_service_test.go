// internal/service/concept_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"knowledge_keep/internal/clock"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_conceptService_CreateConcept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	fixedClock := clock.FixedClock{Time: now}
	userID := uuid.New()

	tests := []struct {
		name      string
		req       *model.CreateConceptRequest
		setupMock func(cr *mocks.ConceptRepository)
		wantErr   error
		check     func(t *testing.T, c *model.Concept)
	}{
		{
			name: "正常系: 作成直後は自信度0・未スケジュール",
			req: &model.CreateConceptRequest{
				Title:      "TCP congestion control",
				Content:    "slow start, AIMD",
				Topics:     []string{"networking", "go", "networking"}, // 重複あり
				Difficulty: "advanced",
			},
			setupMock: func(cr *mocks.ConceptRepository) {
				cr.On("CheckTitleExists", ctx, mock.Anything, userID, "TCP congestion control", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				cr.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Concept")).Return(nil).Once()
			},
			check: func(t *testing.T, c *model.Concept) {
				assert.Equal(t, 0, c.ConfidenceLevel)
				assert.Equal(t, 0, c.ReviewCount)
				assert.Nil(t, c.LastReviewedAt)
				assert.Nil(t, c.NextReviewAt, "new concept must be immediately eligible for review")
				assert.Equal(t, model.DifficultyAdvanced, c.Difficulty)
				// トピックは重複除去される
				assert.Equal(t, []string{"networking", "go"}, []string(c.Topics))
			},
		},
		{
			name: "正常系: 難易度未指定は beginner",
			req:  &model.CreateConceptRequest{Title: "context cancellation"},
			setupMock: func(cr *mocks.ConceptRepository) {
				cr.On("CheckTitleExists", ctx, mock.Anything, userID, "context cancellation", (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				cr.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Concept")).Return(nil).Once()
			},
			check: func(t *testing.T, c *model.Concept) {
				assert.Equal(t, model.DifficultyBeginner, c.Difficulty)
			},
		},
		{
			name: "異常系: タイトル重複は ErrConflict",
			req:  &model.CreateConceptRequest{Title: "TCP congestion control"},
			setupMock: func(cr *mocks.ConceptRepository) {
				cr.On("CheckTitleExists", ctx, mock.Anything, userID, "TCP congestion control", (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:      "異常系: 不正な難易度",
			req:       &model.CreateConceptRequest{Title: "x", Difficulty: "expert"},
			setupMock: func(cr *mocks.ConceptRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 重複チェックのDBエラー",
			req:  &model.CreateConceptRequest{Title: "x"},
			setupMock: func(cr *mocks.ConceptRepository) {
				cr.On("CheckTitleExists", ctx, mock.Anything, userID, "x", (*uuid.UUID)(nil)).
					Return(false, errors.New("db error")).Once()
			},
			wantErr: model.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBReview(t)
			mockConceptRepo := new(mocks.ConceptRepository)
			tt.setupMock(mockConceptRepo)

			svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

			created, err := svc.CreateConcept(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, userID, created.UserID)
				if tt.check != nil {
					tt.check(t, created)
				}
			}
			mockConceptRepo.AssertExpectations(t)
		})
	}
}

func Test_conceptService_UpdateConcept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	fixedClock := clock.FixedClock{Time: now}
	userID := uuid.New()
	conceptID := uuid.New()

	stored := func() *model.Concept {
		return &model.Concept{
			ConceptID:       conceptID,
			UserID:          userID,
			Title:           "old title",
			Difficulty:      model.DifficultyBeginner,
			ConfidenceLevel: 3,
			ReviewCount:     2,
		}
	}

	t.Run("正常系: タイトルとトピックの更新", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).Return(stored(), nil).Once()
		mockConceptRepo.On("CheckTitleExists", ctx, mock.Anything, userID, "new title", &conceptID).
			Return(false, nil).Once()
		mockConceptRepo.On("Update", ctx, mock.Anything, userID, conceptID, mock.MatchedBy(func(updates map[string]interface{}) bool {
			// スケジューリング項目がこの経路で書き換わらないこと
			_, hasConfidence := updates["confidence_level"]
			_, hasNext := updates["next_review_at"]
			return updates["title"] == "new title" && !hasConfidence && !hasNext
		})).Return(nil).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		newTitle := "new title"
		topics := []string{"go", "go", "runtime"}
		updated, err := svc.UpdateConcept(ctx, userID, conceptID, &model.UpdateConceptRequest{
			Title:  &newTitle,
			Topics: &topics,
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, []string{"go", "runtime"}, []string(updated.Topics))
		assert.Equal(t, 3, updated.ConfidenceLevel, "scheduling fields must be untouched")
		mockConceptRepo.AssertExpectations(t)
	})

	t.Run("正常系: 変更なしのリクエストは何も書かない", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).Return(stored(), nil).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		updated, err := svc.UpdateConcept(ctx, userID, conceptID, &model.UpdateConceptRequest{})
		require.NoError(t, err)
		assert.Equal(t, "old title", updated.Title)
		mockConceptRepo.AssertExpectations(t) // Update が呼ばれないこと
	})

	t.Run("異常系: 概念が存在しない", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		_, err := svc.UpdateConcept(ctx, userID, conceptID, &model.UpdateConceptRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 変更後タイトルが重複", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).Return(stored(), nil).Once()
		mockConceptRepo.On("CheckTitleExists", ctx, mock.Anything, userID, "dup", &conceptID).
			Return(true, nil).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		dup := "dup"
		_, err := svc.UpdateConcept(ctx, userID, conceptID, &model.UpdateConceptRequest{Title: &dup})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func Test_conceptService_DeleteConcept(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	fixedClock := clock.FixedClock{Time: now}
	userID := uuid.New()
	conceptID := uuid.New()

	t.Run("正常系: 概念とレビュー履歴が同一トランザクションで削除される", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		mockConceptRepo.On("Delete", ctx, mock.Anything, userID, conceptID).Return(nil).Once()
		mockReviewRepo.On("DeleteByConcept", ctx, mock.Anything, userID, conceptID).Return(nil).Once()

		svc := NewConceptService(db, mockConceptRepo, mockReviewRepo, fixedClock)

		err := svc.DeleteConcept(ctx, userID, conceptID)
		require.NoError(t, err)
		mockConceptRepo.AssertExpectations(t)
		mockReviewRepo.AssertExpectations(t)
	})

	t.Run("異常系: 削除対象が存在しない", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("Delete", ctx, mock.Anything, userID, conceptID).
			Return(model.ErrNotFound).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		err := svc.DeleteConcept(ctx, userID, conceptID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 履歴削除の失敗で全体が失敗する", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		mockConceptRepo.On("Delete", ctx, mock.Anything, userID, conceptID).Return(nil).Once()
		mockReviewRepo.On("DeleteByConcept", ctx, mock.Anything, userID, conceptID).
			Return(errors.New("db error")).Once()

		svc := NewConceptService(db, mockConceptRepo, mockReviewRepo, fixedClock)

		err := svc.DeleteConcept(ctx, userID, conceptID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrStorage)
	})
}

func Test_conceptService_ListReviews(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	fixedClock := clock.FixedClock{Time: now}
	userID := uuid.New()
	conceptID := uuid.New()

	t.Run("正常系: 履歴を返す", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).
			Return(&model.Concept{ConceptID: conceptID, UserID: userID}, nil).Once()
		mockReviewRepo.On("FindByConcept", ctx, mock.Anything, userID, conceptID).
			Return([]*model.Review{
				{ReviewID: uuid.New(), ConceptID: conceptID, ConfidenceLevel: 5},
				{ReviewID: uuid.New(), ConceptID: conceptID, ConfidenceLevel: 2},
			}, nil).Once()

		svc := NewConceptService(db, mockConceptRepo, mockReviewRepo, fixedClock)

		reviews, err := svc.ListReviews(ctx, userID, conceptID)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("異常系: 他ユーザー/存在しない概念の履歴は取得できない", func(t *testing.T) {
		db := setupTestDBReview(t)
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByID", ctx, mock.Anything, userID, conceptID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewConceptService(db, mockConceptRepo, new(mocks.ReviewRepository), fixedClock)

		_, err := svc.ListReviews(ctx, userID, conceptID)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
