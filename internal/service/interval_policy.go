// internal/service/interval_policy.go
package service

import (
	"time"

	"knowledge_keep/internal/model"
)

// 復習間隔のポリシー。
// interval_days = 2^(confidence-1) で 1,2,4,8,16日。
// 自信度が高いほど間隔が単調に伸びる (思い出せたものほど次の復習は先でよい)。
// 逆向きの式 (6 - confidence 日) は旧実装のフィクスチャ由来のバグであり採用しない。
const reviewIntervalBaseDays = 1

// CalculateReviewInterval は自信度から次回レビューまでの間隔を計算します。
// 純粋関数。範囲外 (1〜5以外) の自信度は ErrInvalidInput。
func CalculateReviewInterval(confidence int) (time.Duration, error) {
	if confidence < model.MinReviewConfidence || confidence > model.MaxReviewConfidence {
		return 0, model.NewAppError(
			"VALIDATION_ERROR",
			"自信度は1〜5の範囲で指定してください。",
			"confidence_level",
			model.ErrInvalidInput,
		)
	}
	days := reviewIntervalBaseDays << (confidence - model.MinReviewConfidence)
	return time.Duration(days) * 24 * time.Hour, nil
}
