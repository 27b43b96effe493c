package service

import (
	"math/rand/v2"
	"testing"

	"go_flashcards/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource は常に同じ値を返す
type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

func newCard(grade int) *model.CardView {
	return &model.CardView{ID: uuid.New(), Grade: grade}
}

func seededSelector(maxRedraws int) *CardSelector {
	return NewCardSelector(rand.New(rand.NewPCG(42, 1024)), maxRedraws)
}

func TestCardWeight(t *testing.T) {
	assert.Equal(t, 6, CardWeight(0))
	assert.Equal(t, 5, CardWeight(1))
	assert.Equal(t, 1, CardWeight(5))
	assert.Equal(t, 6, CardWeight(-3))
	assert.Equal(t, 1, CardWeight(9))
}

func TestCardSelector_Distribution(t *testing.T) {
	ungraded := newCard(0)
	mastered := newCard(5)
	cards := []*model.CardView{ungraded, mastered}
	s := seededSelector(10)

	counts := map[uuid.UUID]int{}
	for i := 0; i < 10000; i++ {
		c, err := s.Select(cards, nil)
		require.NoError(t, err)
		counts[c.ID]++
	}

	ratio := float64(counts[ungraded.ID]) / float64(counts[mastered.ID])
	assert.InDelta(t, 6.0, ratio, 1.0, "ungraded=%d mastered=%d", counts[ungraded.ID], counts[mastered.ID])
}

func TestCardSelector_NoImmediateRepeat(t *testing.T) {
	a, b := newCard(0), newCard(5)
	cards := []*model.CardView{a, b}
	s := seededSelector(10)

	for i := 0; i < 1000; i++ {
		c, err := s.Select(cards, &a.ID)
		require.NoError(t, err)
		require.Equal(t, b.ID, c.ID)
	}
}

func TestCardSelector_SingleCard(t *testing.T) {
	only := newCard(3)
	c, err := seededSelector(10).Select([]*model.CardView{only}, &only.ID)
	require.NoError(t, err)
	assert.Equal(t, only.ID, c.ID)
}

func TestCardSelector_EmptyDeck(t *testing.T) {
	_, err := seededSelector(10).Select(nil, nil)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCardSelector_FallbackAfterRedraws(t *testing.T) {
	prev := newCard(0)
	weak := newCard(4)
	strong := newCard(0)
	cards := []*model.CardView{prev, weak, strong}

	// 常にプールの先頭 (= prev) を引くので、再抽選を使い切って決定的に選ぶ
	s := NewCardSelector(constSource(0), 3)
	c, err := s.Select(cards, &prev.ID)
	require.NoError(t, err)
	assert.Equal(t, strong.ID, c.ID)

	// 再抽選 0 回でも直前のカードは返さない
	s = NewCardSelector(constSource(0), 0)
	c, err = s.Select(cards, &prev.ID)
	require.NoError(t, err)
	assert.NotEqual(t, prev.ID, c.ID)
}
