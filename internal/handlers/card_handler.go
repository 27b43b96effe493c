// internal/handlers/card_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcards/internal/model"
	"go_flashcards/internal/service"
	"go_flashcards/internal/webutil"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// ListCards はデッキ内のカードを呼び出し元の評価付きで返すハンドラ
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCards"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("deck_id", deckID.String()))

	q := r.URL.Query()
	params := model.ListCardsParams{
		Question: q.Get("question"),
		Answer:   q.Get("answer"),
		OrderBy:  q.Get("orderBy"),
	}
	if params.CurrentPage, err = webutil.QueryPositiveInt(q, "currentPage"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if params.ItemsPerPage, err = webutil.QueryPositiveInt(q, "itemsPerPage"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.service.ListCards(r.Context(), caller, deckID, params)
	if err != nil {
		logger.Warn("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards listed successfully", slog.Int("count", len(cards.Items)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCard"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CreateCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.CreateCard(r.Context(), caller, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card created successfully", slog.String("card_id", card.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	cardID, err := webutil.URLParamUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteCard(r.Context(), caller, cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCard はデッキが見える場合のみ、呼び出し元の評価付きでカードを返す
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCard"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	cardID, err := webutil.URLParamUUID(r, "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.GetCard(r.Context(), caller, cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateCard"))
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

	var req model.UpdateCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.UpdateCard(r.Context(), caller, cardID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}
