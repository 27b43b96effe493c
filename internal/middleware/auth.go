package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_flashcards/internal/model"
	"go_flashcards/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// callerClaims は発行側が付与するクレーム。sub がユーザーID
type callerClaims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

func unauthorized(message string) error {
	return model.NewAppError("UNAUTHORIZED", message, "", model.ErrUnauthorized)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// 呼び出し元をコンテキストに格納する
func JWTAuthMiddleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, unauthorized("Authorization header is required."))
				return
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, unauthorized("Authorization header must be 'Bearer <token>'."))
				return
			}

			// 署名と有効期限(exp)は jwt.ParseWithClaims が検証する
			claims := &callerClaims{}
			_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return key, nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, unauthorized("Token is invalid."))
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, unauthorized("Token subject is invalid."))
				return
			}

			caller := model.Caller{UserID: userID, IsAdmin: claims.IsAdmin}
			next.ServeHTTP(w, r.WithContext(withCaller(r.Context(), caller)))
		})
	}
}

// withCaller は呼び出し元とそれを付与したロガーをコンテキストに格納する
func withCaller(ctx context.Context, caller model.Caller) context.Context {
	ctx = context.WithValue(ctx, model.CallerKey, caller)
	logger := GetLogger(ctx).With("user_id", caller.UserID.String())
	return WithLogger(ctx, logger)
}

// GetCallerFromContext は認証ミドルウェアが格納した呼び出し元を返す
func GetCallerFromContext(ctx context.Context) (model.Caller, error) {
	caller, ok := ctx.Value(model.CallerKey).(model.Caller)
	if !ok {
		return model.Caller{}, unauthorized("Caller identity not found.")
	}
	return caller, nil
}

// CallerVerifier は呼び出し元がユーザーとして実在するか確認する
type CallerVerifier interface {
	VerifyCaller(ctx context.Context, caller model.Caller) error
}

// RequireKnownCaller は認証ミドルウェアの後に置き、存在しないユーザーを拒否する
func RequireKnownCaller(v CallerVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			caller, err := GetCallerFromContext(r.Context())
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			if err := v.VerifyCaller(r.Context(), caller); err != nil {
				logger.Warn("Caller verification failed", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
