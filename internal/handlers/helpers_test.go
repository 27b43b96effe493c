package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_flashcards/internal/config"
	"go_flashcards/internal/handlers"
	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/repository/testutil"
	"go_flashcards/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockServices struct {
	decks    *mocks.MockDeckService
	cards    *mocks.MockCardService
	learning *mocks.MockLearningService
	users    *mocks.MockUserService
}

// newMockRouter は本番と同じルーティングにモックサービスを差し込む
func newMockRouter(t *testing.T) (http.Handler, *mockServices) {
	t.Helper()
	m := &mockServices{
		decks:    mocks.NewMockDeckService(t),
		cards:    mocks.NewMockCardService(t),
		learning: mocks.NewMockLearningService(t),
		users:    mocks.NewMockUserService(t),
	}
	router := handlers.NewRouter(handlers.Router{
		Decks:    handlers.NewDeckHandler(m.decks, testLogger),
		Cards:    handlers.NewCardHandler(m.cards, testLogger),
		Learning: handlers.NewLearningHandler(m.learning, testLogger),
		Users:    handlers.NewUserHandler(m.users, testLogger),
		Health:   handlers.NewHealthHandler(testutil.DB(t), testLogger),
		Auth:     middleware.DevCallerMiddleware,
	}, config.CORSConfig{}, testLogger)
	return router, m
}

// doRequest は userID が nil なら X-User-ID ヘッダーを付けない
func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, target, body)
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	return serveRequest(h, req)
}

// newRequest は body が string ならそのまま、それ以外は JSON にして送る
func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(b)
		}
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serveRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}

func int64Ptr(v int64) *int64 { return &v }
