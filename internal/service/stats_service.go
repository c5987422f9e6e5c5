// internal/service/stats_service.go
package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"knowledge_keep/internal/clock"
	"knowledge_keep/internal/config"
	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService はダッシュボード向け統計の集計を担います。
// 毎回ストアの現在状態から再計算する (ユーザーあたり数百件規模の前提、キャッシュなし)。
type StatsService interface {
	GetStatistics(ctx context.Context, userID uuid.UUID, loc *time.Location, trendDays int) (*model.Statistics, error)
}

type statsService struct {
	db          *gorm.DB
	conceptRepo repository.ConceptRepository
	reviewRepo  repository.ReviewRepository
	cfg         *config.Config
	clock       clock.Clock
}

func NewStatsService(db *gorm.DB, conceptRepo repository.ConceptRepository, reviewRepo repository.ReviewRepository, cfg *config.Config, clk clock.Clock) StatsService {
	return &statsService{
		db:          db,
		conceptRepo: conceptRepo,
		reviewRepo:  reviewRepo,
		cfg:         cfg,
		clock:       clk,
	}
}

const statsDateLayout = "2006-01-02"

func (s *statsService) GetStatistics(ctx context.Context, userID uuid.UUID, loc *time.Location, trendDays int) (*model.Statistics, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if loc == nil {
		loc = time.UTC
	}
	if trendDays <= 0 {
		trendDays = s.cfg.App.TrendDays
	}
	asOf := s.clock.Now()

	concepts, err := s.conceptRepo.FindByUser(ctx, s.db, userID, model.ConceptFilter{})
	if err != nil {
		logger.Error("Failed to load concepts for statistics", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "統計用データの取得に失敗しました。", "", model.ErrStorage)
	}

	dueCount, err := s.conceptRepo.CountDue(ctx, s.db, userID, asOf)
	if err != nil {
		logger.Error("Failed to count due concepts for statistics", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "統計用データの取得に失敗しました。", "", model.ErrStorage)
	}

	reviewTimes, err := s.reviewRepo.FindCreationTimes(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to load review times for statistics", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "統計用データの取得に失敗しました。", "", model.ErrStorage)
	}

	trendSince := startOfDay(asOf, loc).AddDate(0, 0, -(trendDays - 1))
	trendReviews, err := s.reviewRepo.FindSince(ctx, s.db, userID, trendSince)
	if err != nil {
		logger.Error("Failed to load reviews for confidence trend", "error", err)
		return nil, model.NewAppError("STORAGE_ERROR", "統計用データの取得に失敗しました。", "", model.ErrStorage)
	}

	stats := &model.Statistics{
		TotalConcepts:        len(concepts),
		ConceptsDue:          int(dueCount),
		ReviewStreak:         calculateReviewStreak(reviewTimes, asOf, loc),
		AverageConfidence:    calculateAverageConfidence(concepts),
		ConceptsByConfidence: bucketByConfidence(concepts),
		ConceptsByTopic:      bucketByTopic(concepts),
		ConceptsByDifficulty: bucketByDifficulty(concepts),
		ConceptsByStatus:     bucketByStatus(concepts, asOf),
		ConfidenceTrend:      buildConfidenceTrend(trendReviews, loc),
		GeneratedAt:          asOf,
	}

	logger.Info("Statistics computed",
		"total_concepts", stats.TotalConcepts,
		"concepts_due", stats.ConceptsDue,
		"review_streak", stats.ReviewStreak,
	)
	return stats, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// calculateReviewStreak は asOf の日から遡って連続レビュー日数を数えます。
// asOf の日にレビューがなければ、それ以前の実績に関係なく 0。
func calculateReviewStreak(reviewTimes []time.Time, asOf time.Time, loc *time.Location) int {
	if len(reviewTimes) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(reviewTimes))
	for _, t := range reviewTimes {
		days[t.In(loc).Format(statsDateLayout)] = struct{}{}
	}

	streak := 0
	day := asOf.In(loc)
	for {
		if _, ok := days[day.Format(statsDateLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// calculateAverageConfidence は未評価 (confidence_level=0) を除いた平均です
func calculateAverageConfidence(concepts []*model.Concept) float64 {
	sum := 0
	rated := 0
	for _, c := range concepts {
		if c.ConfidenceLevel > 0 {
			sum += c.ConfidenceLevel
			rated++
		}
	}
	if rated == 0 {
		return 0
	}
	// 小数第2位で丸める
	return math.Round(float64(sum)/float64(rated)*100) / 100
}

func bucketByConfidence(concepts []*model.Concept) map[string]int {
	buckets := map[string]int{
		model.ConfidenceBucketUnrated: 0,
	}
	for level := model.MinReviewConfidence; level <= model.MaxReviewConfidence; level++ {
		buckets[strconv.Itoa(level)] = 0
	}
	for _, c := range concepts {
		if c.ConfidenceLevel == 0 {
			buckets[model.ConfidenceBucketUnrated]++
		} else {
			buckets[strconv.Itoa(c.ConfidenceLevel)]++
		}
	}
	return buckets
}

// bucketByTopic はトピックごとの概念数です。N個のトピックを持つ概念はN個のバケットに入る。
func bucketByTopic(concepts []*model.Concept) map[string]int {
	buckets := make(map[string]int)
	for _, c := range concepts {
		for _, topic := range model.DedupeTopics(c.Topics) {
			buckets[topic]++
		}
	}
	return buckets
}

func bucketByDifficulty(concepts []*model.Concept) map[string]int {
	buckets := map[string]int{
		string(model.DifficultyBeginner):     0,
		string(model.DifficultyIntermediate): 0,
		string(model.DifficultyAdvanced):     0,
	}
	for _, c := range concepts {
		buckets[string(c.Difficulty)]++
	}
	return buckets
}

func bucketByStatus(concepts []*model.Concept, asOf time.Time) map[string]int {
	buckets := map[string]int{
		model.ConceptStatusNew:       0,
		model.ConceptStatusDue:       0,
		model.ConceptStatusScheduled: 0,
	}
	for _, c := range concepts {
		switch {
		case c.NextReviewAt == nil:
			buckets[model.ConceptStatusNew]++
		case !c.NextReviewAt.After(asOf):
			buckets[model.ConceptStatusDue]++
		default:
			buckets[model.ConceptStatusScheduled]++
		}
	}
	return buckets
}

// buildConfidenceTrend は日別のレビュー平均自信度を日付昇順で返します。
// レビューのなかった日は出力に含めない。
func buildConfidenceTrend(reviews []*model.Review, loc *time.Location) []model.TrendPoint {
	type daily struct {
		sum   int
		count int
	}
	byDay := make(map[string]*daily)
	order := make([]string, 0)

	// reviews は created_at 昇順で渡される
	for _, rv := range reviews {
		key := rv.CreatedAt.In(loc).Format(statsDateLayout)
		d, ok := byDay[key]
		if !ok {
			d = &daily{}
			byDay[key] = d
			order = append(order, key)
		}
		d.sum += rv.ConfidenceLevel
		d.count++
	}

	trend := make([]model.TrendPoint, 0, len(order))
	for _, key := range order {
		d := byDay[key]
		avg := math.Round(float64(d.sum)/float64(d.count)*100) / 100
		trend = append(trend, model.TrendPoint{
			Date:              key,
			AverageConfidence: avg,
			ReviewCount:       d.count,
		})
	}
	return trend
}
