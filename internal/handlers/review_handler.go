// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/service"
	"knowledge_keep/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// SubmitReview は復習結果を受け付け、更新後の概念を返します
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitReview"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	conceptID, appErr := parseConceptID(r)
	if appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(logger, req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concept, err := h.service.SubmitReview(r.Context(), userID, conceptID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, concept)
}

// GetDueConcepts は復習キュー (遅延が大きい順) を返します
func (h *ReviewHandler) GetDueConcepts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetDueConcepts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			appErr := model.NewAppError("VALIDATION_ERROR", "limitは0以上の整数で指定してください。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	concepts, err := h.service.GetDueConcepts(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if concepts == nil {
		concepts = []*model.Concept{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, concepts)
}

// GetDueCount はダッシュボードバッジ用の復習待ち件数を返します
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetDueCount"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.service.CountDueConcepts(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.DueCountResponse{Count: count})
}
