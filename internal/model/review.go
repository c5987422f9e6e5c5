// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// レビューで申告できる自信度の範囲。0 は「未評価の概念」専用で履歴には書かれない。
const (
	MinReviewConfidence = 1
	MaxReviewConfidence = 5
)

// Review は1回の復習結果を表す追記専用の履歴レコードです。
// 作成後は不変。概念の削除と同一トランザクションで物理削除される。
type Review struct {
	ReviewID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ConceptID       uuid.UUID `gorm:"type:uuid;not null;index" json:"concept_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ConfidenceLevel int       `gorm:"not null" json:"confidence_level"`
	Notes           string    `json:"notes,omitempty"`
	ClientToken     *string   `gorm:"uniqueIndex" json:"-"` // 冪等化トークン (任意)。重複提出は ErrConflict。
	CreatedAt       time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// 復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	ConfidenceLevel *int    `json:"confidence_level" validate:"required,min=1,max=5"`
	Notes           string  `json:"notes" validate:"omitempty,max=2000"`
	ClientToken     *string `json:"client_token,omitempty" validate:"omitempty,min=8,max=64"`
}

// DueCountResponse は復習待ち件数のレスポンスDTO
type DueCountResponse struct {
	Count int64 `json:"count"`
}
