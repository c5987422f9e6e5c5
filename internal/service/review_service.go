// internal/service/review_service.go
package service

import (
	"context"
	"errors"

	"knowledge_keep/internal/clock"
	"knowledge_keep/internal/config"
	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は復習の提出と復習キューの解決を担います
type ReviewService interface {
	SubmitReview(ctx context.Context, userID, conceptID uuid.UUID, req *model.SubmitReviewRequest) (*model.Concept, error)
	GetDueConcepts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Concept, error)
	CountDueConcepts(ctx context.Context, userID uuid.UUID) (int64, error)
}

type reviewService struct {
	db          *gorm.DB
	conceptRepo repository.ConceptRepository
	reviewRepo  repository.ReviewRepository
	cfg         *config.Config
	clock       clock.Clock
}

func NewReviewService(db *gorm.DB, conceptRepo repository.ConceptRepository, reviewRepo repository.ReviewRepository, cfg *config.Config, clk clock.Clock) ReviewService {
	return &reviewService{
		db:          db,
		conceptRepo: conceptRepo,
		reviewRepo:  reviewRepo,
		cfg:         cfg,
		clock:       clk,
	}
}

// SubmitReview は復習結果を受け付け、履歴の追記と概念のスケジュール更新を
// 1トランザクションで行います。どちらか片方だけが残ることはない。
// 期限前の「早めの復習」も許可し、その場合も now からスケジュールし直す。
func (s *reviewService) SubmitReview(ctx context.Context, userID, conceptID uuid.UUID, req *model.SubmitReviewRequest) (*model.Concept, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "concept_id", conceptID)

	if req == nil || req.ConfidenceLevel == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "自信度は必須です。", "confidence_level", model.ErrInvalidInput)
	}
	confidence := *req.ConfidenceLevel

	// 間隔計算はトランザクションの外 (純粋関数、失敗時は何も書かない)
	interval, err := CalculateReviewInterval(confidence)
	if err != nil {
		return nil, err
	}

	var updated *model.Concept

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		concept, err := s.conceptRepo.FindByID(ctx, tx, userID, conceptID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された概念が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding concept in review transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の取得に失敗しました。", "", model.ErrStorage)
		}

		now := s.clock.Now()
		nextReviewAt := now.Add(interval)

		review := &model.Review{
			ReviewID:        uuid.New(),
			ConceptID:       concept.ConceptID,
			UserID:          userID,
			ConfidenceLevel: confidence,
			Notes:           req.Notes,
			ClientToken:     req.ClientToken,
			CreatedAt:       now,
		}
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			if errors.Is(err, model.ErrConflict) {
				// 同じ client_token の再送。二重計上を防ぐためロールバックする。
				logger.Warn("Duplicate review submission detected", "client_token", req.ClientToken)
				return model.NewAppError("DUPLICATE_REVIEW", "このレビューは既に受け付けられています。", "client_token", model.ErrConflict)
			}
			logger.Error("Error creating review in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "レビュー履歴の保存に失敗しました。", "", model.ErrStorage)
		}

		updates := map[string]interface{}{
			"confidence_level": confidence,
			"last_reviewed_at": now,
			"next_review_at":   nextReviewAt,
			"review_count":     concept.ReviewCount + 1,
			"updated_at":       now,
		}
		if err := s.conceptRepo.Update(ctx, tx, userID, conceptID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// 同時削除との競合
				return model.NewAppError("NOT_FOUND", "更新対象の概念が見つかりませんでした。", "", model.ErrNotFound)
			}
			logger.Error("Error updating concept scheduling fields in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の更新に失敗しました。", "", model.ErrStorage)
		}

		concept.ConfidenceLevel = confidence
		concept.LastReviewedAt = &now
		concept.NextReviewAt = &nextReviewAt
		concept.ReviewCount++
		concept.UpdatedAt = now
		updated = concept
		return nil
	})

	if txErr != nil {
		var appErr *model.AppError
		if errors.As(txErr, &appErr) {
			return nil, txErr
		}
		logger.Error("Review transaction failed", "error", txErr)
		return nil, model.NewAppError("STORAGE_ERROR", "復習の保存に失敗しました。", "", model.ErrStorage)
	}

	logger.Info("Review submitted", "confidence_level", confidence, "review_count", updated.ReviewCount)
	return updated, nil
}

// GetDueConcepts は期限到来順 (未スケジュール → 遅延の大きい順) の復習キューを返します
func (s *reviewService) GetDueConcepts(ctx context.Context, userID uuid.UUID, limit int) ([]*model.Concept, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if limit <= 0 || limit > s.cfg.App.ReviewLimit {
		limit = s.cfg.App.ReviewLimit
	}

	concepts, err := s.conceptRepo.FindDue(ctx, s.db, userID, s.clock.Now(), limit)
	if err != nil {
		logger.Error("Failed to find due concepts from repository", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "復習キューの取得に失敗しました。", "", model.ErrStorage)
	}

	logger.Info("Successfully resolved due concepts", "count", len(concepts))
	return concepts, nil
}

func (s *reviewService) CountDueConcepts(ctx context.Context, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	count, err := s.conceptRepo.CountDue(ctx, s.db, userID, s.clock.Now())
	if err != nil {
		logger.Error("Failed to count due concepts", "error", err)
		return 0, model.NewAppError("STORAGE_ERROR", "復習待ち件数の取得に失敗しました。", "", model.ErrStorage)
	}
	return count, nil
}
