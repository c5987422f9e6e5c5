//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository はレビュー履歴 (追記専用) の永続化操作です
type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *model.Review) error
	FindByConcept(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) ([]*model.Review, error)
	FindSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.Review, error)
	FindCreationTimes(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]time.Time, error)
	DeleteByConcept(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID) error
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *model.Review) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(review)
	if result.Error != nil {
		// client_token の一意制約違反 = 同一レビューの再送
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating review in DB",
			"error", result.Error,
			"concept_id", review.ConceptID.String(),
		)
		return fmt.Errorf("gormReviewRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewRepository) FindByConcept(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []*model.Review
	result := db.WithContext(ctx).
		Where("user_id = ? AND concept_id = ?", userID, conceptID).
		Order("created_at DESC").
		Find(&reviews)
	if result.Error != nil {
		logger.Error("Error finding reviews by concept in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"concept_id", conceptID.String(),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindByConcept: %w", result.Error)
	}
	return reviews, nil
}

func (r *gormReviewRepository) FindSince(ctx context.Context, db *gorm.DB, userID uuid.UUID, since time.Time) ([]*model.Review, error) {
	logger := middleware.GetLogger(ctx)
	var reviews []*model.Review
	result := db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&reviews)
	if result.Error != nil {
		logger.Error("Error finding reviews since date in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindSince: %w", result.Error)
	}
	return reviews, nil
}

// FindCreationTimes はストリーク計算用にレビューの作成時刻だけを新しい順で返します
func (r *gormReviewRepository) FindCreationTimes(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]time.Time, error) {
	logger := middleware.GetLogger(ctx)
	var times []time.Time
	result := db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("created_at", &times)
	if result.Error != nil {
		logger.Error("Error finding review creation times in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindCreationTimes: %w", result.Error)
	}
	return times, nil
}

// DeleteByConcept は概念の削除に追従してレビュー履歴を物理削除します
func (r *gormReviewRepository) DeleteByConcept(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("user_id = ? AND concept_id = ?", userID, conceptID).
		Delete(&model.Review{})
	if result.Error != nil {
		logger.Error("Error deleting reviews by concept in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"concept_id", conceptID.String(),
		)
		return fmt.Errorf("gormReviewRepository.DeleteByConcept: %w", result.Error)
	}
	// レビューが0件でもエラーにしない (未レビューの概念の削除)
	return nil
}
