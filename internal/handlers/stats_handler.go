// internal/handlers/stats_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/service"
	"knowledge_keep/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s service.StatsService, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		service: s,
		logger:  logger,
	}
}

// GetStatistics はダッシュボード用の統計を返します。
// tz はIANAタイムゾーン名 (省略時はUTC)、trend_days はトレンド集計の日数。
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStatistics"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	loc := time.UTC
	if tz := r.URL.Query().Get("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			appErr := model.NewAppError("VALIDATION_ERROR", "tzに有効なIANAタイムゾーン名を指定してください。", "tz", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		loc = parsed
	}

	trendDays := 0
	if daysStr := r.URL.Query().Get("trend_days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 || parsed > 365 {
			appErr := model.NewAppError("VALIDATION_ERROR", "trend_daysは1〜365の整数で指定してください。", "trend_days", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		trendDays = parsed
	}

	stats, err := h.service.GetStatistics(r.Context(), userID, loc, trendDays)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}
