package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go_flashcards/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticator(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AuthConfig
		devMode    bool
		wantErr    error
		headerAuth bool
	}{
		{name: "正常系: JWT 有効", cfg: config.AuthConfig{Enabled: true, JWTSecret: testSecret}},
		{name: "正常系: JWT 有効なら dev でもヘッダーは無視", cfg: config.AuthConfig{Enabled: true, JWTSecret: testSecret}, devMode: true},
		{name: "正常系: dev ではヘッダー認証", cfg: config.AuthConfig{Enabled: false}, devMode: true, headerAuth: true},
		{name: "異常系: dev 以外で認証無効", cfg: config.AuthConfig{Enabled: false}, wantErr: ErrHeaderAuthInProd},
		{name: "異常系: シークレット未設定", cfg: config.AuthConfig{Enabled: true}, wantErr: ErrMissingJWTSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticate, err := NewAuthenticator(tt.cfg, tt.devMode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, authenticate)
				return
			}
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-User-ID", uuid.NewString())
			req.Header.Set("X-Admin", "true")
			rr := httptest.NewRecorder()
			authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})).ServeHTTP(rr, req)

			if tt.headerAuth {
				assert.Equal(t, http.StatusNoContent, rr.Code)
			} else {
				assert.Equal(t, http.StatusUnauthorized, rr.Code)
			}
		})
	}
}
