package query

import (
	"errors"
	"strings"
	"testing"

	"go_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSentinel(t *testing.T) {
	caller := model.Caller{UserID: uuid.New()}
	other := uuid.New()

	got, err := ResolveSentinel("", caller, "authorId")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ResolveSentinel(CallerSentinel, caller, "authorId")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, caller.UserID, *got)

	got, err = ResolveSentinel(other.String(), caller, "authorId")
	require.NoError(t, err)
	assert.Equal(t, other, *got)

	_, err = ResolveSentinel("me", caller, "favoritedBy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "favoritedBy", appErr.Detail.Field)
}

func TestDeckFilter_Conditions(t *testing.T) {
	callerID := uuid.New()

	t.Run("可視性条件は常に含まれる", func(t *testing.T) {
		conds := DeckFilter{Caller: model.Caller{UserID: callerID}}.Conditions()
		require.Len(t, conds, 1)
		assert.Equal(t, VisibilityPredicate(callerID), conds[0])
		assert.Equal(t, []any{false, true, callerID}, conds[0].Args)
	})

	t.Run("他の条件と AND で連結される", func(t *testing.T) {
		author := uuid.New()
		min, max := int64(2), int64(10)
		conds := DeckFilter{
			Caller:        model.Caller{UserID: callerID},
			AuthorID:      &author,
			FavoritedBy:   &callerID,
			Name:          "Go",
			MinCardsCount: &min,
			MaxCardsCount: &max,
		}.Conditions()
		require.Len(t, conds, 6)
		assert.Contains(t, conds[0].SQL, "decks.is_private")
		for _, c := range conds {
			assert.Equal(t, strings.Count(c.SQL, "?"), len(c.Args), c.SQL)
		}
	})

	t.Run("管理者は可視性条件を外す", func(t *testing.T) {
		conds := DeckFilter{Caller: model.Caller{UserID: callerID, IsAdmin: true}}.Conditions()
		assert.Empty(t, conds)
	})

	t.Run("検索文字列はバインド変数としてエスケープされる", func(t *testing.T) {
		conds := DeckFilter{Caller: model.Caller{UserID: callerID}, Name: `50%_O'Brien\`}.Conditions()
		require.Len(t, conds, 2)
		nameCond := conds[1]
		assert.NotContains(t, nameCond.SQL, "Brien")
		assert.Equal(t, []any{`%50\%\_o'brien\\%`}, nameCond.Args)
	})
}

func TestCardFilter_Conditions(t *testing.T) {
	deckID := uuid.New()
	conds := CardFilter{DeckID: deckID, Question: "Capital", Answer: "paris"}.Conditions()
	require.Len(t, conds, 3)
	assert.Equal(t, []any{deckID}, conds[0].Args)
	assert.Equal(t, []any{"%capital%"}, conds[1].Args)
	assert.Equal(t, []any{"%paris%"}, conds[2].Args)
}
