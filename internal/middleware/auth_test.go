package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_flashcards/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims callerClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func captureCaller(got *model.Caller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := GetCallerFromContext(r.Context())
		if err == nil {
			*got = c
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := callerClaims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	badSub := valid
	badSub.Subject = "not-a-uuid"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCaller *model.Caller
	}{
		{name: "正常系: 有効なトークン", header: "Bearer " + signToken(t, testSecret, valid), wantStatus: http.StatusNoContent, wantCaller: &model.Caller{UserID: userID, IsAdmin: true}},
		{name: "異常系: ヘッダーなし", header: "", wantStatus: http.StatusUnauthorized},
		{name: "異常系: Bearer でない", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "異常系: 署名キー不一致", header: "Bearer " + signToken(t, "other", valid), wantStatus: http.StatusUnauthorized},
		{name: "異常系: 期限切れ", header: "Bearer " + signToken(t, testSecret, expired), wantStatus: http.StatusUnauthorized},
		{name: "異常系: sub がUUIDでない", header: "Bearer " + signToken(t, testSecret, badSub), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Caller
			h := JWTAuthMiddleware(testSecret)(captureCaller(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCaller != nil {
				assert.Equal(t, *tt.wantCaller, got)
			}
		})
	}
}

func TestDevCallerMiddleware(t *testing.T) {
	userID := uuid.New()

	var got model.Caller
	h := DevCallerMiddleware(captureCaller(&got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", userID.String())
	req.Header.Set("X-Admin", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, model.Caller{UserID: userID, IsAdmin: true}, got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "bad")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetCallerFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

type verifierFunc func(ctx context.Context, caller model.Caller) error

func (f verifierFunc) VerifyCaller(ctx context.Context, caller model.Caller) error { return f(ctx, caller) }

func TestRequireKnownCaller(t *testing.T) {
	known := uuid.New()
	verifier := verifierFunc(func(_ context.Context, caller model.Caller) error {
		if caller.UserID == known {
			return nil
		}
		return model.NewAppError("UNKNOWN_USER", "User no longer exists.", "", model.ErrUnauthorized)
	})

	var got model.Caller
	h := DevCallerMiddleware(RequireKnownCaller(verifier)(captureCaller(&got)))

	tests := []struct {
		name         string
		userID       uuid.UUID
		expectedCode int
	}{
		{name: "正常系: 既知のユーザー", userID: known, expectedCode: http.StatusNoContent},
		{name: "異常系: 削除済みユーザー", userID: uuid.New(), expectedCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-User-ID", tt.userID.String())
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
	assert.Equal(t, known, got.UserID)
}
