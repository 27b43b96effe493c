package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"go_flashcards/internal/model"

	"github.com/google/uuid"
)

// RandSource は [0, n) の一様乱数を返す。*rand.Rand が満たす
type RandSource interface {
	IntN(n int) int
}

// CardSelector は評価の低いカードほど出やすい重み付きランダムで次のカードを選ぶ
type CardSelector struct {
	mu         sync.Mutex
	rng        RandSource
	maxRedraws int
}

func NewCardSelector(rng RandSource, maxRedraws int) *CardSelector {
	if maxRedraws < 0 {
		maxRedraws = 0
	}
	return &CardSelector{rng: rng, maxRedraws: maxRedraws}
}

// NewDefaultCardSelector は時刻でシードした PCG を使う
func NewDefaultCardSelector(maxRedraws int) *CardSelector {
	seed := uint64(time.Now().UnixNano())
	return NewCardSelector(rand.New(rand.NewPCG(seed, rand.Uint64())), maxRedraws)
}

// CardWeight は 6 - grade。未評価 (0) は最大の 6
func CardWeight(grade int) int {
	switch {
	case grade < 0:
		grade = 0
	case grade > model.MaxGrade:
		grade = model.MaxGrade
	}
	return model.MaxGrade + 1 - grade
}

func (s *CardSelector) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Select はカードを1枚選ぶ。2枚以上あれば直前のカードは選ばない。
// 再抽選が maxRedraws 回続いた場合は、直前以外で重みが最大の先頭のカードを返す
func (s *CardSelector) Select(cards []*model.CardView, previous *uuid.UUID) (*model.CardView, error) {
	switch len(cards) {
	case 0:
		return nil, model.NewAppError("DECK_EMPTY", "The deck has no cards.", "", model.ErrNotFound)
	case 1:
		return cards[0], nil
	}

	pool := make([]int, 0, len(cards)*CardWeight(0))
	for i, c := range cards {
		for w := CardWeight(c.Grade); w > 0; w-- {
			pool = append(pool, i)
		}
	}

	isPrevious := func(c *model.CardView) bool {
		return previous != nil && c.ID == *previous
	}

	for draw := 0; draw <= s.maxRedraws; draw++ {
		c := cards[pool[s.intN(len(pool))]]
		if !isPrevious(c) {
			return c, nil
		}
	}

	var best *model.CardView
	for _, c := range cards {
		if isPrevious(c) {
			continue
		}
		if best == nil || CardWeight(c.Grade) > CardWeight(best.Grade) {
			best = c
		}
	}
	return best, nil
}
