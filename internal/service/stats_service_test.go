// internal/service/stats_service_test.go
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
	"gorm.io/datatypes"
)

// 2026-08-31 12:00 UTC を基準時刻とする
var statsAsOf = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newStatsServiceForTest(t *testing.T, conceptRepo *mocks.ConceptRepository, reviewRepo *mocks.ReviewRepository) StatsService {
	t.Helper()
	db := setupTestDBReview(t)
	return NewStatsService(db, conceptRepo, reviewRepo, testConfig(), clock.FixedClock{Time: statsAsOf})
}

func expectStatsQueries(ctx context.Context, cr *mocks.ConceptRepository, rr *mocks.ReviewRepository, userID uuid.UUID, concepts []*model.Concept, dueCount int64, reviewTimes []time.Time, trendReviews []*model.Review) {
	cr.On("FindByUser", ctx, mock.Anything, userID, model.ConceptFilter{}).Return(concepts, nil).Once()
	cr.On("CountDue", ctx, mock.Anything, userID, statsAsOf).Return(dueCount, nil).Once()
	rr.On("FindCreationTimes", ctx, mock.Anything, userID).Return(reviewTimes, nil).Once()
	rr.On("FindSince", ctx, mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(trendReviews, nil).Once()
}

func Test_statsService_GetStatistics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: 概念の集計とバケット分け", func(t *testing.T) {
		next := statsAsOf.Add(48 * time.Hour)
		past := statsAsOf.Add(-time.Hour)
		concepts := []*model.Concept{
			{ConceptID: uuid.New(), ConfidenceLevel: 4, Difficulty: model.DifficultyBeginner,
				Topics: datatypes.NewJSONSlice([]string{"go", "networking"}), NextReviewAt: &next},
			{ConceptID: uuid.New(), ConfidenceLevel: 2, Difficulty: model.DifficultyAdvanced,
				Topics: datatypes.NewJSONSlice([]string{"go"}), NextReviewAt: &past},
			// 未評価・未スケジュール (作成直後)
			{ConceptID: uuid.New(), ConfidenceLevel: 0, Difficulty: model.DifficultyBeginner},
		}

		mockConceptRepo := new(mocks.ConceptRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		expectStatsQueries(ctx, mockConceptRepo, mockReviewRepo, userID, concepts, 2, nil, nil)

		svc := newStatsServiceForTest(t, mockConceptRepo, mockReviewRepo)
		stats, err := svc.GetStatistics(ctx, userID, time.UTC, 0)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalConcepts)
		assert.Equal(t, 2, stats.ConceptsDue)
		// 未評価 (0) は平均に含めない: (4+2)/2 = 3.0
		assert.Equal(t, 3.0, stats.AverageConfidence)

		assert.Equal(t, 1, stats.ConceptsByConfidence[model.ConfidenceBucketUnrated])
		assert.Equal(t, 1, stats.ConceptsByConfidence["2"])
		assert.Equal(t, 1, stats.ConceptsByConfidence["4"])
		assert.Equal(t, 0, stats.ConceptsByConfidence["5"])

		// 複数トピックの概念は各バケットに1回ずつ数える
		assert.Equal(t, 2, stats.ConceptsByTopic["go"])
		assert.Equal(t, 1, stats.ConceptsByTopic["networking"])

		assert.Equal(t, 2, stats.ConceptsByDifficulty[string(model.DifficultyBeginner)])
		assert.Equal(t, 0, stats.ConceptsByDifficulty[string(model.DifficultyIntermediate)])
		assert.Equal(t, 1, stats.ConceptsByDifficulty[string(model.DifficultyAdvanced)])

		assert.Equal(t, 1, stats.ConceptsByStatus[model.ConceptStatusNew])
		assert.Equal(t, 1, stats.ConceptsByStatus[model.ConceptStatusDue])
		assert.Equal(t, 1, stats.ConceptsByStatus[model.ConceptStatusScheduled])

		assert.Equal(t, statsAsOf, stats.GeneratedAt)
	})

	t.Run("正常系: 概念ゼロでも空の統計を返す", func(t *testing.T) {
		mockConceptRepo := new(mocks.ConceptRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		expectStatsQueries(ctx, mockConceptRepo, mockReviewRepo, userID, nil, 0, nil, nil)

		svc := newStatsServiceForTest(t, mockConceptRepo, mockReviewRepo)
		stats, err := svc.GetStatistics(ctx, userID, time.UTC, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.TotalConcepts)
		assert.Equal(t, 0.0, stats.AverageConfidence)
		assert.Equal(t, 0, stats.ReviewStreak)
		assert.Empty(t, stats.ConfidenceTrend)
		// バケットのキーは常に揃っている
		assert.Len(t, stats.ConceptsByConfidence, 6)
		assert.Len(t, stats.ConceptsByStatus, 3)
	})

	t.Run("異常系: 概念取得の失敗は ErrStorage", func(t *testing.T) {
		mockConceptRepo := new(mocks.ConceptRepository)
		mockConceptRepo.On("FindByUser", ctx, mock.Anything, userID, model.ConceptFilter{}).
			Return(nil, errors.New("db error")).Once()

		svc := newStatsServiceForTest(t, mockConceptRepo, new(mocks.ReviewRepository))
		_, err := svc.GetStatistics(ctx, userID, time.UTC, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrStorage)
	})
}

func Test_calculateReviewStreak(t *testing.T) {
	day := func(offset int, hour int) time.Time {
		return time.Date(2026, 8, 31, hour, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	tests := []struct {
		name        string
		reviewTimes []time.Time
		want        int
	}{
		{
			name:        "当日・前日・前々日で3",
			reviewTimes: []time.Time{day(0, 9), day(-1, 22), day(-2, 1)},
			want:        3,
		},
		{
			name:        "同日に複数レビューしても1日としてだけ数える",
			reviewTimes: []time.Time{day(0, 9), day(0, 15), day(-1, 10)},
			want:        2,
		},
		{
			name:        "当日にレビューがなければ過去の連続に関係なく0",
			reviewTimes: []time.Time{day(-1, 10), day(-2, 10), day(-3, 10)},
			want:        0,
		},
		{
			name:        "途中に空白日があればそこで途切れる",
			reviewTimes: []time.Time{day(0, 9), day(-2, 10), day(-3, 10)},
			want:        1,
		},
		{
			name:        "レビューなしは0",
			reviewTimes: nil,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateReviewStreak(tt.reviewTimes, statsAsOf, time.UTC)
			assert.Equal(t, tt.want, got)
		})
	}
}

// タイムゾーン次第で「同じ日」の判定が変わることを確認する
func Test_calculateReviewStreak_Timezone(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)

	// UTC 2026-08-30 23:00 は東京では 2026-08-31 08:00
	reviewTimes := []time.Time{time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)}

	assert.Equal(t, 0, calculateReviewStreak(reviewTimes, statsAsOf, time.UTC),
		"in UTC the review belongs to yesterday")
	assert.Equal(t, 1, calculateReviewStreak(reviewTimes, statsAsOf, tokyo),
		"in Tokyo the review belongs to today")
}

func Test_calculateAverageConfidence(t *testing.T) {
	tests := []struct {
		name     string
		concepts []*model.Concept
		want     float64
	}{
		{
			name: "未評価を除いた平均を小数第2位で丸める",
			concepts: []*model.Concept{
				{ConfidenceLevel: 1},
				{ConfidenceLevel: 0},
				{ConfidenceLevel: 2},
				{ConfidenceLevel: 4},
			},
			want: 2.33,
		},
		{
			name:     "全件未評価なら0",
			concepts: []*model.Concept{{ConfidenceLevel: 0}, {ConfidenceLevel: 0}},
			want:     0,
		},
		{
			name:     "空なら0",
			concepts: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateAverageConfidence(tt.concepts))
		})
	}
}

func Test_buildConfidenceTrend(t *testing.T) {
	at := func(day, hour, confidence int) *model.Review {
		return &model.Review{
			ReviewID:        uuid.New(),
			ConfidenceLevel: confidence,
			CreatedAt:       time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC),
		}
	}

	// created_at 昇順で渡される前提
	reviews := []*model.Review{
		at(28, 9, 2),
		at(28, 18, 5),
		// 8/29 はレビューなし
		at(30, 10, 3),
	}

	trend := buildConfidenceTrend(reviews, time.UTC)
	require.Len(t, trend, 2, "days without reviews must be omitted")

	assert.Equal(t, "2026-08-28", trend[0].Date)
	assert.Equal(t, 3.5, trend[0].AverageConfidence)
	assert.Equal(t, 2, trend[0].ReviewCount)

	assert.Equal(t, "2026-08-30", trend[1].Date)
	assert.Equal(t, 3.0, trend[1].AverageConfidence)
	assert.Equal(t, 1, trend[1].ReviewCount)
}
