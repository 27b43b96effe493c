// internal/handlers/learning_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcards/internal/model"
	"go_flashcards/internal/service"
	"go_flashcards/internal/webutil"
)

type LearningHandler struct {
	service service.LearningService
	logger  *slog.Logger
}

func NewLearningHandler(s service.LearningService, logger *slog.Logger) *LearningHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LearningHandler{
		service: s,
		logger:  logger,
	}
}

// GetNextCard は重み付き抽選で次に出題するカードを返す。
// previousCardId を渡すと、他に候補がある限り同じカードは返らない
func (h *LearningHandler) GetNextCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNextCard"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	previous, err := webutil.QueryOptionalUUID(r.URL.Query(), "previousCardId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("deck_id", deckID.String()))

	card, err := h.service.GetNextCard(r.Context(), caller, deckID, previous)
	if err != nil {
		logger.Warn("Failed to select next card", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Debug("Next card selected", slog.String("card_id", card.ID.String()), slog.Int("grade", card.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// SubmitGrade は評価を記録し、同じデッキの次のカードを返す
func (h *LearningHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitGrade"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	cardID, err := webutil.URLParamUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	var req model.SubmitGradeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	next, err := h.service.SubmitGrade(r.Context(), caller, cardID, req.Grade)
	if err != nil {
		logger.Warn("Failed to submit grade", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Grade recorded", slog.Int("grade", req.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, next, logger)
}
