// internal/handlers/concept_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"knowledge_keep/internal/middleware"
	"knowledge_keep/internal/model"
	"knowledge_keep/internal/service"
	"knowledge_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ConceptHandler struct {
	service service.ConceptService
	logger  *slog.Logger
}

func NewConceptHandler(s service.ConceptService, logger *slog.Logger) *ConceptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConceptHandler{
		service: s,
		logger:  logger,
	}
}

// PostConcept は新しい概念を作成するためのハンドラ
func (h *ConceptHandler) PostConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostConcept"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateConceptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(logger, req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concept, err := h.service.CreateConcept(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, concept)
}

// GetConcepts は概念の一覧を返します (topic / difficulty で絞り込み可)
func (h *ConceptHandler) GetConcepts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetConcepts"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	filter := model.ConceptFilter{
		Topic:      r.URL.Query().Get("topic"),
		Difficulty: model.Difficulty(r.URL.Query().Get("difficulty")),
	}

	concepts, err := h.service.ListConcepts(r.Context(), userID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if concepts == nil {
		concepts = []*model.Concept{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, concepts)
}

func (h *ConceptHandler) GetConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetConcept"))

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

	concept, err := h.service.GetConcept(r.Context(), userID, conceptID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, concept)
}

// PatchConcept は概念の部分更新ハンドラ。スケジューリング項目は更新できない。
func (h *ConceptHandler) PatchConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PatchConcept"))

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

	var req model.UpdateConceptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if err := validateStruct(logger, req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	concept, err := h.service.UpdateConcept(r.Context(), userID, conceptID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, concept)
}

func (h *ConceptHandler) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteConcept"))

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

	if err := h.service.DeleteConcept(r.Context(), userID, conceptID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetConceptReviews は概念のレビュー履歴 (新しい順) を返します
func (h *ConceptHandler) GetConceptReviews(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetConceptReviews"))

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

	reviews, err := h.service.ListReviews(r.Context(), userID, conceptID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if reviews == nil {
		reviews = []*model.Review{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviews)
}

func parseConceptID(r *http.Request) (uuid.UUID, *model.AppError) {
	conceptIDStr := chi.URLParam(r, "concept_id")
	conceptID, err := uuid.Parse(conceptIDStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", "概念IDの形式が不正です。", "concept_id", model.ErrInvalidInput)
	}
	return conceptID, nil
}
