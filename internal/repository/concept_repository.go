//go:generate mockery --name ConceptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConceptRepository は概念ストアの永続化操作です
type ConceptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, concept *model.Concept) error
	FindByID(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) (*model.Concept, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.ConceptFilter) ([]*model.Concept, error)
	Update(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID) error
	CheckTitleExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, title string, excludeConceptID *uuid.UUID) (bool, error)
	FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, limit int) ([]*model.Concept, error)
	CountDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormConceptRepository struct{}

func NewGormConceptRepository() ConceptRepository {
	return &gormConceptRepository{}
}

func (r *gormConceptRepository) Create(ctx context.Context, tx *gorm.DB, concept *model.Concept) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(concept)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating concept in DB",
			"error", result.Error,
			"user_id", concept.UserID.String(),
			"title", concept.Title,
		)
		return fmt.Errorf("gormConceptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormConceptRepository) FindByID(ctx context.Context, db *gorm.DB, userID, conceptID uuid.UUID) (*model.Concept, error) {
	logger := middleware.GetLogger(ctx)
	var concept model.Concept
	result := db.WithContext(ctx).Where("user_id = ? AND concept_id = ?", userID, conceptID).First(&concept)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding concept by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"concept_id", conceptID.String(),
		)
		return nil, fmt.Errorf("gormConceptRepository.FindByID: %w", result.Error)
	}
	return &concept, nil
}

func (r *gormConceptRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, filter model.ConceptFilter) ([]*model.Concept, error) {
	logger := middleware.GetLogger(ctx)
	var concepts []*model.Concept

	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	result := query.Order("created_at DESC").Find(&concepts)
	if result.Error != nil {
		logger.Error("Error finding concepts by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormConceptRepository.FindByUser: %w", result.Error)
	}

	// トピックはJSONカラムのため、ドライバ非依存にアプリ側で絞り込む
	if filter.Topic != "" {
		filtered := concepts[:0]
		for _, c := range concepts {
			if slices.Contains(c.Topics, filter.Topic) {
				filtered = append(filtered, c)
			}
		}
		concepts = filtered
	}

	return concepts, nil
}

func (r *gormConceptRepository) Update(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Concept{}).
		Where("user_id = ? AND concept_id = ?", userID, conceptID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating concept in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"concept_id", conceptID.String(),
		)
		return fmt.Errorf("gormConceptRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormConceptRepository) Delete(ctx context.Context, tx *gorm.DB, userID, conceptID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND concept_id = ?", userID, conceptID).Delete(&model.Concept{})
	if result.Error != nil {
		logger.Error("Error deleting concept in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"concept_id", conceptID.String(),
		)
		return fmt.Errorf("gormConceptRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormConceptRepository) CheckTitleExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, title string, excludeConceptID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Concept{}).
		Where("user_id = ? AND title = ?", userID, title)
	if excludeConceptID != nil {
		query = query.Where("concept_id != ?", *excludeConceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Error checking title existence in DB",
			"error", err,
			"user_id", userID.String(),
			"title", title,
		)
		return false, fmt.Errorf("gormConceptRepository.CheckTitleExists: %w", err)
	}
	return count > 0, nil
}

// FindDue は期限到来した概念を「遅延が大きい順」で返します。
// next_review_at が NULL (未スケジュール) のものは無限に遅延しているとみなし先頭。
// 同時刻は created_at 昇順で安定させる。
func (r *gormConceptRepository) FindDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time, limit int) ([]*model.Concept, error) {
	logger := middleware.GetLogger(ctx)
	var concepts []*model.Concept
	query := db.WithContext(ctx).
		Where("user_id = ? AND (next_review_at IS NULL OR next_review_at <= ?)", userID, now).
		Order("next_review_at ASC NULLS FIRST").
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&concepts)
	if result.Error != nil {
		logger.Error("Error finding due concepts in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormConceptRepository.FindDue: %w", result.Error)
	}
	return concepts, nil
}

func (r *gormConceptRepository) CountDue(ctx context.Context, db *gorm.DB, userID uuid.UUID, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	err := db.WithContext(ctx).Model(&model.Concept{}).
		Where("user_id = ? AND (next_review_at IS NULL OR next_review_at <= ?)", userID, now).
		Count(&count).Error
	if err != nil {
		logger.Error("Error counting due concepts in DB",
			"error", err,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormConceptRepository.CountDue: %w", err)
	}
	return count, nil
}

func (r *gormConceptRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	err := db.WithContext(ctx).Model(&model.Concept{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		logger.Error("Error counting concepts in DB",
			"error", err,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormConceptRepository.CountByUser: %w", err)
	}
	return count, nil
}
