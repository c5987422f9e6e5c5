// internal/service/concept_service.go
package service

import (
	"context"
	"errors"

	"knowledge_keep/internal/clock"
	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConceptService は概念のCRUDとレビュー履歴の参照を担います。
// スケジューリング項目の更新はここでは行わない (ReviewService 専用の経路)。
type ConceptService interface {
	CreateConcept(ctx context.Context, userID uuid.UUID, req *model.CreateConceptRequest) (*model.Concept, error)
	GetConcept(ctx context.Context, userID, conceptID uuid.UUID) (*model.Concept, error)
	ListConcepts(ctx context.Context, userID uuid.UUID, filter model.ConceptFilter) ([]*model.Concept, error)
	UpdateConcept(ctx context.Context, userID, conceptID uuid.UUID, req *model.UpdateConceptRequest) (*model.Concept, error)
	DeleteConcept(ctx context.Context, userID, conceptID uuid.UUID) error
	ListReviews(ctx context.Context, userID, conceptID uuid.UUID) ([]*model.Review, error)
}

type conceptService struct {
	db          *gorm.DB
	conceptRepo repository.ConceptRepository
	reviewRepo  repository.ReviewRepository
	clock       clock.Clock
}

func NewConceptService(db *gorm.DB, conceptRepo repository.ConceptRepository, reviewRepo repository.ReviewRepository, clk clock.Clock) ConceptService {
	return &conceptService{
		db:          db,
		conceptRepo: conceptRepo,
		reviewRepo:  reviewRepo,
		clock:       clk,
	}
}

// CreateConcept は新しい概念を作成します。
// 作成直後は自信度0・未スケジュール (= 即時レビュー対象)。
func (s *conceptService) CreateConcept(ctx context.Context, userID uuid.UUID, req *model.CreateConceptRequest) (*model.Concept, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	difficulty := model.Difficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = model.DifficultyBeginner
	}
	if !difficulty.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の値が不正です。", "difficulty", model.ErrInvalidInput)
	}

	var created *model.Concept

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. タイトル重複チェック
		exists, err := s.conceptRepo.CheckTitleExists(ctx, tx, userID, req.Title, nil)
		if err != nil {
			logger.Error("Error checking title existence in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の重複チェックに失敗しました。", "", model.ErrStorage)
		}
		if exists {
			return model.NewAppError("DUPLICATE_TITLE", "同じタイトルの概念が既に存在します。", "title", model.ErrConflict)
		}

		// 2. 概念を作成 (confidence_level=0, next_review_at は未設定)
		now := s.clock.Now()
		concept := &model.Concept{
			ConceptID:  uuid.New(),
			UserID:     userID,
			Title:      req.Title,
			Content:    req.Content,
			Notes:      req.Notes,
			Topics:     datatypes.NewJSONSlice(model.DedupeTopics(req.Topics)),
			Difficulty: difficulty,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.conceptRepo.Create(ctx, tx, concept); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TITLE", "同じタイトルの概念が既に存在します。", "title", model.ErrConflict)
			}
			logger.Error("Error creating concept in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の作成に失敗しました。", "", model.ErrStorage)
		}

		created = concept
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Concept created", "concept_id", created.ConceptID, "title", created.Title)
	return created, nil
}

func (s *conceptService) GetConcept(ctx context.Context, userID, conceptID uuid.UUID) (*model.Concept, error) {
	concept, err := s.conceptRepo.FindByID(ctx, s.db, userID, conceptID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された概念が見つかりません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error getting concept", "error", err, "concept_id", conceptID)
		return nil, model.NewAppError("STORAGE_ERROR", "概念の取得に失敗しました。", "", model.ErrStorage)
	}
	return concept, nil
}

func (s *conceptService) ListConcepts(ctx context.Context, userID uuid.UUID, filter model.ConceptFilter) ([]*model.Concept, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "難易度の値が不正です。", "difficulty", model.ErrInvalidInput)
	}

	concepts, err := s.conceptRepo.FindByUser(ctx, s.db, userID, filter)
	if err != nil {
		logger.Error("Error listing concepts", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "概念一覧の取得に失敗しました。", "", model.ErrStorage)
	}
	return concepts, nil
}

// UpdateConcept はタイトル・内容・ノート・トピック・難易度のみを更新します。
// スケジューリング項目 (confidence_level, next_review_at など) はこの経路では変更不可。
func (s *conceptService) UpdateConcept(ctx context.Context, userID, conceptID uuid.UUID, req *model.UpdateConceptRequest) (*model.Concept, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "concept_id", conceptID)

	var updated *model.Concept

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		concept, err := s.conceptRepo.FindByID(ctx, tx, userID, conceptID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "指定された概念が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error finding concept in update transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の取得に失敗しました。", "", model.ErrStorage)
		}

		updates := make(map[string]interface{})

		if req.Title != nil && *req.Title != concept.Title {
			exists, err := s.conceptRepo.CheckTitleExists(ctx, tx, userID, *req.Title, &conceptID)
			if err != nil {
				logger.Error("Error checking title existence during update", "error", err)
				return model.NewAppError("STORAGE_ERROR", "概念の重複チェックに失敗しました。", "", model.ErrStorage)
			}
			if exists {
				return model.NewAppError("DUPLICATE_TITLE", "同じタイトルの概念が既に存在します。", "title", model.ErrConflict)
			}
			updates["title"] = *req.Title
			concept.Title = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
			concept.Content = *req.Content
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
			concept.Notes = *req.Notes
		}
		if req.Topics != nil {
			topics := datatypes.NewJSONSlice(model.DedupeTopics(*req.Topics))
			updates["topics"] = topics
			concept.Topics = topics
		}
		if req.Difficulty != nil {
			difficulty := model.Difficulty(*req.Difficulty)
			if !difficulty.Valid() {
				return model.NewAppError("VALIDATION_ERROR", "難易度の値が不正です。", "difficulty", model.ErrInvalidInput)
			}
			updates["difficulty"] = difficulty
			concept.Difficulty = difficulty
		}

		if len(updates) == 0 {
			updated = concept
			return nil
		}

		now := s.clock.Now()
		updates["updated_at"] = now
		concept.UpdatedAt = now

		if err := s.conceptRepo.Update(ctx, tx, userID, conceptID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "更新対象の概念が見つかりませんでした。", "", model.ErrNotFound)
			}
			logger.Error("Error updating concept in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の更新に失敗しました。", "", model.ErrStorage)
		}

		updated = concept
		return nil
	})

	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Concept updated", "title", updated.Title)
	return updated, nil
}

// DeleteConcept は概念とそのレビュー履歴を同一トランザクションで削除します
func (s *conceptService) DeleteConcept(ctx context.Context, userID, conceptID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "concept_id", conceptID)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.conceptRepo.Delete(ctx, tx, userID, conceptID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "削除対象の概念が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error deleting concept in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "概念の削除に失敗しました。", "", model.ErrStorage)
		}

		// 履歴は概念と所有関係にあるため一緒に消す
		if err := s.reviewRepo.DeleteByConcept(ctx, tx, userID, conceptID); err != nil {
			logger.Error("Error deleting reviews in transaction", "error", err)
			return model.NewAppError("STORAGE_ERROR", "レビュー履歴の削除に失敗しました。", "", model.ErrStorage)
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}

	logger.Info("Concept deleted")
	return nil
}

func (s *conceptService) ListReviews(ctx context.Context, userID, conceptID uuid.UUID) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "concept_id", conceptID)

	// 概念の存在確認 (他ユーザーの履歴を覗けないようにする)
	if _, err := s.conceptRepo.FindByID(ctx, s.db, userID, conceptID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "指定された概念が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding concept for review listing", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "概念の取得に失敗しました。", "", model.ErrStorage)
	}

	reviews, err := s.reviewRepo.FindByConcept(ctx, s.db, userID, conceptID)
	if err != nil {
		logger.Error("Error listing reviews", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "レビュー履歴の取得に失敗しました。", "", model.ErrStorage)
	}
	return reviews, nil
}
