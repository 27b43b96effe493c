package handlers

import (
	"log/slog"
	"net/http"

	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/webutil"
)

// requireCaller は認証済みの呼び出し元を返す。見つからなければ 401 を書き込んで false を返す
func requireCaller(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.Caller, *slog.Logger, bool) {
	caller, err := middleware.GetCallerFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return model.Caller{}, logger, false
	}
	return caller, logger.With(slog.String("user_id", caller.UserID.String())), true
}
