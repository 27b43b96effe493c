package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go_flashcards/internal/webutil"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{db: db, logger: logger}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check はDBへの疎通を確認する
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Database: "down"}, h.logger)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "up"}, h.logger)
}
