// internal/model/concept.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Difficulty は概念の難易度区分を表します
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Concept はユーザーが追跡・復習する知識の単位を表します。
// スケジューリング関連のフィールド (ConfidenceLevel, LastReviewedAt,
// NextReviewAt, ReviewCount) はレビュー提出のトランザクション経由でのみ更新される。
type Concept struct {
	ConceptID       uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"concept_id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index" json:"-"`
	Title           string                      `gorm:"not null" json:"title"`
	Content         string                      `json:"content"`
	Notes           string                      `json:"notes"`
	Topics          datatypes.JSONSlice[string] `json:"topics"`
	Difficulty      Difficulty                  `gorm:"not null;default:beginner" json:"difficulty"`
	ConfidenceLevel int                         `gorm:"not null;default:0" json:"confidence_level"` // 0 = 未評価
	ReviewCount     int                         `gorm:"not null;default:0" json:"review_count"`
	LastReviewedAt  *time.Time                  `json:"last_reviewed_at,omitempty"`
	NextReviewAt    *time.Time                  `gorm:"index" json:"next_review_at,omitempty"` // nil = 未スケジュール (即時レビュー対象)
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
	DeletedAt       gorm.DeletedAt              `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Reviews []Review `gorm:"foreignKey:ConceptID;references:ConceptID" json:"-"`
}

func (Concept) TableName() string {
	return "concepts"
}

// 概念作成リクエストDTO
type CreateConceptRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Content    string   `json:"content" validate:"omitempty,max=20000"`
	Notes      string   `json:"notes" validate:"omitempty,max=20000"`
	Topics     []string `json:"topics" validate:"omitempty,dive,min=1,max=100"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// 概念更新（部分）リクエストDTO。スケジューリング項目は含まない。
type UpdateConceptRequest struct {
	Title      *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content    *string   `json:"content,omitempty" validate:"omitempty,max=20000"`
	Notes      *string   `json:"notes,omitempty" validate:"omitempty,max=20000"`
	Topics     *[]string `json:"topics,omitempty" validate:"omitempty,dive,min=1,max=100"`
	Difficulty *string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ConceptFilter は一覧取得の絞り込み条件
type ConceptFilter struct {
	Topic      string
	Difficulty Difficulty
}

// DedupeTopics は表示用にトピックの重複を除去します (順序は維持)。
func DedupeTopics(topics []string) []string {
	if len(topics) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
