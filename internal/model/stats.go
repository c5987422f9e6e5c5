// internal/model/stats.go
package model

import "time"

// Statistics はダッシュボード/知識ページ向けの集計結果です。
// 呼び出しごとにストアの現在状態から再計算される (キャッシュなし)。
type Statistics struct {
	TotalConcepts        int            `json:"total_concepts"`
	ConceptsDue          int            `json:"concepts_due"`
	ReviewStreak         int            `json:"review_streak"`
	AverageConfidence    float64        `json:"average_confidence"` // 未評価(0)の概念は平均から除外
	ConceptsByConfidence map[string]int `json:"concepts_by_confidence"`
	ConceptsByTopic      map[string]int `json:"concepts_by_topic"`
	ConceptsByDifficulty map[string]int `json:"concepts_by_difficulty"`
	ConceptsByStatus     map[string]int `json:"concepts_by_status"`
	ConfidenceTrend      []TrendPoint   `json:"confidence_trend"`
	GeneratedAt          time.Time      `json:"generated_at"`
}

// 自信度ヒストグラムのバケット名 (0は "unrated")
const ConfidenceBucketUnrated = "unrated"

// 概念ステータス分布のバケット名
const (
	ConceptStatusNew       = "new"       // 一度もレビューされていない
	ConceptStatusDue       = "due"       // スケジュール済みで期限到来
	ConceptStatusScheduled = "scheduled" // 次回レビューが未来
)

// TrendPoint は特定の日のレビュー平均自信度です。
// レビューのなかった日はトレンドに含まれない。
type TrendPoint struct {
	Date              string  `json:"date"` // YYYY-MM-DD (呼び出し元タイムゾーン)
	AverageConfidence float64 `json:"average_confidence"`
	ReviewCount       int     `json:"review_count"`
}
