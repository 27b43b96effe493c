// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"
	"strconv"

	"go_flashcards/internal/model"
	"go_flashcards/internal/webutil"

	"github.com/google/uuid"
)

// DevCallerMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのUUIDと X-Admin ヘッダーを呼び出し元として設定します。
// ユーザーの存在チェックは行いません。
func DevCallerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.HandleError(w, logger, unauthorized("[DEV] Missing X-User-ID header."))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "user_id", userIDStr)
			webutil.HandleError(w, logger, unauthorized("[DEV] Invalid X-User-ID format."))
			return
		}

		isAdmin, _ := strconv.ParseBool(r.Header.Get("X-Admin"))
		caller := model.Caller{UserID: userID, IsAdmin: isAdmin}
		logger.Debug("[DEV AUTH] Caller set to context (no validation)", "user_id", userID.String(), "is_admin", isAdmin)

		next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), caller)))
	})
}
