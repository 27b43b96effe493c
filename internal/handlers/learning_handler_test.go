package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLearningHandler_GetNextCard(t *testing.T) {
	userID := uuid.New()
	caller := model.Caller{UserID: userID}
	deckID := uuid.New()
	previous := uuid.New()
	base := "/api/v1/decks/" + deckID.String() + "/learn"

	t.Run("正常系: 前のカードが渡る", func(t *testing.T) {
		router, m := newMockRouter(t)
		next := &model.CardView{ID: uuid.New(), DeckID: deckID, Question: "q"}
		m.learning.On("GetNextCard", mock.Anything, caller, deckID, &previous).Return(next, nil).Once()

		rr := doRequest(t, router, http.MethodGet, base+"?previousCardId="+previous.String(), nil, &userID)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var got model.CardView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, next.ID, got.ID)
	})

	t.Run("正常系: 前のカードなし", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.learning.On("GetNextCard", mock.Anything, caller, deckID, (*uuid.UUID)(nil)).
			Return(&model.CardView{ID: uuid.New()}, nil).Once()
		rr := doRequest(t, router, http.MethodGet, base, nil, &userID)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: previousCardId がUUIDでない", func(t *testing.T) {
		router, _ := newMockRouter(t)
		rr := doRequest(t, router, http.MethodGet, base+"?previousCardId=abc", nil, &userID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "previousCardId", decodeError(t, rr).Field)
	})

	t.Run("異常系: 空のデッキは 404", func(t *testing.T) {
		router, m := newMockRouter(t)
		m.learning.On("GetNextCard", mock.Anything, caller, deckID, (*uuid.UUID)(nil)).
			Return(nil, model.NewAppError("DECK_EMPTY", "Deck has no cards.", "", model.ErrNotFound)).Once()
		rr := doRequest(t, router, http.MethodGet, base, nil, &userID)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "DECK_EMPTY", decodeError(t, rr).Code)
	})
}

func TestLearningHandler_SubmitGrade(t *testing.T) {
	userID := uuid.New()
	caller := model.Caller{UserID: userID}
	cardID := uuid.New()
	target := "/api/v1/cards/" + cardID.String() + "/grade"

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mockServices)
		expectedStatus int
		expectedCode   string
		retryable      bool
	}{
		{
			name: "正常系: 次のカードが返る",
			body: model.SubmitGradeRequest{Grade: 4},
			setupMock: func(m *mockServices) {
				m.learning.On("SubmitGrade", mock.Anything, caller, cardID, 4).
					Return(&model.CardView{ID: uuid.New()}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 評価が 6",
			body:           `{"grade":6}`,
			setupMock:      func(*mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: 評価なし",
			body:           `{}`,
			setupMock:      func(*mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "異常系: JSONでない",
			body:           `grade=3`,
			setupMock:      func(*mockServices) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 記録失敗はリトライ可能",
			body: model.SubmitGradeRequest{Grade: 2},
			setupMock: func(m *mockServices) {
				m.learning.On("SubmitGrade", mock.Anything, caller, cardID, 2).
					Return(nil, model.NewRetryableError("GRADE_NOT_RECORDED", "Grade could not be recorded.", errors.New("deadlock"))).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "GRADE_NOT_RECORDED",
			retryable:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockRouter(t)
			tt.setupMock(m)

			rr := doRequest(t, router, http.MethodPost, target, tt.body, &userID)
			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tt.expectedCode, detail.Code)
				assert.Equal(t, tt.retryable, detail.Retryable)
			}
		})
	}
}
