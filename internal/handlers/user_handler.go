package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcards/internal/service"
	"go_flashcards/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// GetMe は呼び出し元自身のプロフィールを返す
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))
	caller, logger, ok := requireCaller(w, r, logger)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), caller.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}
