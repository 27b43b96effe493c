package middleware

import (
	"errors"
	"net/http"

	"go_flashcards/internal/config"
)

var (
	ErrMissingJWTSecret = errors.New("auth.jwt_secret is required when auth is enabled")
	ErrHeaderAuthInProd = errors.New("auth.enabled=false is only allowed with APP_ENV=dev")
)

// NewAuthenticator は設定に応じて保護ルートの認証ミドルウェアを選ぶ。
// X-User-ID ヘッダーを信頼する開発用認証は devMode のときだけ返す
func NewAuthenticator(cfg config.AuthConfig, devMode bool) (func(http.Handler) http.Handler, error) {
	if cfg.Enabled {
		if cfg.JWTSecret == "" {
			return nil, ErrMissingJWTSecret
		}
		return JWTAuthMiddleware(cfg.JWTSecret), nil
	}
	if !devMode {
		return nil, ErrHeaderAuthInProd
	}
	return DevCallerMiddleware, nil
}
