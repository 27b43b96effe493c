// internal/query/filter.go
package query

import (
	"fmt"
	"strings"

	"go_flashcards/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallerSentinel は authorId / favoritedBy で呼び出し元自身を指す
const CallerSentinel = "~caller"

// ResolveSentinel はフィルタ合成の前に ~caller を呼び出し元のIDへ置き換える。
// 空文字は nil、それ以外はUUIDでなければならない
func ResolveSentinel(raw string, caller model.Caller, field string) (*uuid.UUID, error) {
	switch raw {
	case "":
		return nil, nil
	case CallerSentinel:
		id := caller.UserID
		return &id, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, model.NewAppError(
			"INVALID_ID",
			fmt.Sprintf("%s must be a UUID or %q", field, CallerSentinel),
			field,
			model.ErrInvalidInput,
		)
	}
	return &id, nil
}

// Predicate はバインド変数付きの WHERE 条件1つ
type Predicate struct {
	SQL  string
	Args []any
}

type Conditions []Predicate

// Apply はすべての条件を AND で連結する
func (c Conditions) Apply(db *gorm.DB) *gorm.DB {
	for _, p := range c {
		db = db.Where(p.SQL, p.Args...)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern は大文字小文字を区別しない部分一致のパターンを返す
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func containsPredicate(column, s string) Predicate {
	return Predicate{
		SQL:  fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column),
		Args: []any{containsPattern(s)},
	}
}

// VisibilityPredicate は公開デッキか呼び出し元所有の非公開デッキに限定する
func VisibilityPredicate(callerID uuid.UUID) Predicate {
	return Predicate{
		SQL:  "(decks.is_private = ? OR (decks.is_private = ? AND decks.owner_id = ?))",
		Args: []any{false, true, callerID},
	}
}

// DeckFilter はデッキ一覧の絞り込み条件。センチネルは解決済みであること
type DeckFilter struct {
	Caller        model.Caller
	AuthorID      *uuid.UUID
	FavoritedBy   *uuid.UUID
	Name          string
	MinCardsCount *int64
	MaxCardsCount *int64
}

// Conditions は可視性条件を常に含める。外せるのは管理者の一覧のみ
func (f DeckFilter) Conditions() Conditions {
	var conds Conditions
	if !f.Caller.IsAdmin {
		conds = append(conds, VisibilityPredicate(f.Caller.UserID))
	}
	if f.AuthorID != nil {
		conds = append(conds, Predicate{SQL: "decks.owner_id = ?", Args: []any{*f.AuthorID}})
	}
	if f.FavoritedBy != nil {
		conds = append(conds, Predicate{
			SQL:  "EXISTS (SELECT 1 FROM favorite_decks WHERE favorite_decks.deck_id = decks.id AND favorite_decks.user_id = ?)",
			Args: []any{*f.FavoritedBy},
		})
	}
	if f.Name != "" {
		conds = append(conds, containsPredicate("decks.name", f.Name))
	}
	if f.MinCardsCount != nil {
		conds = append(conds, Predicate{SQL: CardsCountExpr + " >= ?", Args: []any{*f.MinCardsCount}})
	}
	if f.MaxCardsCount != nil {
		conds = append(conds, Predicate{SQL: CardsCountExpr + " <= ?", Args: []any{*f.MaxCardsCount}})
	}
	return conds
}

// CardFilter はデッキ内カード一覧の絞り込み条件
type CardFilter struct {
	DeckID   uuid.UUID
	Question string
	Answer   string
}

func (f CardFilter) Conditions() Conditions {
	conds := Conditions{{SQL: "cards.deck_id = ?", Args: []any{f.DeckID}}}
	if f.Question != "" {
		conds = append(conds, containsPredicate("cards.question", f.Question))
	}
	if f.Answer != "" {
		conds = append(conds, containsPredicate("cards.answer", f.Answer))
	}
	return conds
}
