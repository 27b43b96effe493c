// internal/handlers/deck_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_flashcards/internal/model"
	"go_flashcards/internal/service"
	"go_flashcards/internal/webutil"
)

type DeckHandler struct {
	service service.DeckService
	logger  *slog.Logger
}

func NewDeckHandler(s service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		service: s,
		logger:  logger,
	}
}

// ListDecks は呼び出し元に見えるデッキをフィルタ・ソート・ページングして返すハンドラ
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListDecks"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	params := model.ListDecksParams{
		Name:        q.Get("name"),
		AuthorID:    q.Get("authorId"),
		FavoritedBy: q.Get("favoritedBy"),
		OrderBy:     q.Get("orderBy"),
	}
	var err error
	if params.MinCardsCount, err = webutil.QueryOptionalInt64(q, "minCardsCount"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if params.MaxCardsCount, err = webutil.QueryOptionalInt64(q, "maxCardsCount"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if params.CurrentPage, err = webutil.QueryPositiveInt(q, "currentPage"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if params.ItemsPerPage, err = webutil.QueryPositiveInt(q, "itemsPerPage"); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	decks, err := h.service.ListDecks(r.Context(), caller, params)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Info("Rejected deck listing query", slog.Any("error", err))
		} else {
			logger.Error("Error listing decks in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Decks listed successfully", slog.Int("count", len(decks.Items)), slog.Int64("total", decks.Pagination.TotalItems))
	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

func (h *DeckHandler) GetMinMaxCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMinMaxCards"))
	if _, _, ok := requireCaller(w, r, logger); !ok {
		return
	}

	stats, err := h.service.GetMinMaxCards(r.Context())
	if err != nil {
		logger.Error("Error aggregating cards count", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateDeck"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	var req model.CreateDeckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), caller, &req)
	if err != nil {
		logger.Error("Error creating deck in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck created successfully", slog.String("deck_id", deck.ID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

// GetDeck は呼び出し元に見えるデッキを1件返す
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDeck"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.GetDeck(r.Context(), caller, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateDeck"))
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

	var req model.UpdateDeckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	deck, err := h.service.UpdateDeck(r.Context(), caller, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}

func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteDeck"))
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

	if err := h.service.DeleteDeck(r.Context(), caller, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Deck deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// AddFavorite は見えるデッキを呼び出し元のお気に入りに追加する
func (h *DeckHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddFavorite"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.AddFavorite(r.Context(), caller, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeckHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RemoveFavorite"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	deckID, err := webutil.URLParamUUID(r, "deck_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), caller, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
