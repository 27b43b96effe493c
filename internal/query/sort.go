// internal/query/sort.go
package query

import (
	"fmt"
	"strings"

	"go_flashcards/internal/model"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec は "field-direction" または "relation.field-direction" を解析した結果
type SortSpec struct {
	Relation  string
	Field     string
	Direction Direction
}

// Key は許可リストの照合に使うキー (例: "author.name")
func (s SortSpec) Key() string {
	if s.Relation == "" {
		return s.Field
	}
	return s.Relation + "." + s.Field
}

func (s SortSpec) String() string {
	return s.Key() + "-" + string(s.Direction)
}

// AllowList はソートキーから固定のSQL式への対応表。
// 呼び出し元の文字列が識別子としてSQLに入ることはない
type AllowList map[string]string

var (
	DeckSortColumns = AllowList{
		"cardsCount":  CardsCountExpr,
		"updated":     "decks.updated_at",
		"name":        "decks.name",
		"author.name": "users.name",
		"created":     "decks.created_at",
	}
	CardSortColumns = AllowList{
		"question": "cards.question",
		"answer":   "cards.answer",
		"created":  "cards.created_at",
		"updated":  "cards.updated_at",
		"grade":    GradeExpr,
	}

	DefaultSort = SortSpec{Field: "updated", Direction: Desc}
)

// 集計・結合で求める列の式
const (
	CardsCountExpr = "COALESCE(deck_card_counts.cards_count, 0)"
	// 未評価は 0 扱い。desc では末尾、asc では先頭に並ぶ
	GradeExpr = "COALESCE(grades.grade, 0)"
)

func invalidSort(raw, reason string) error {
	return model.NewAppError(
		"INVALID_SORT",
		fmt.Sprintf("invalid orderBy %q: %s", raw, reason),
		"orderBy",
		model.ErrInvalidInput,
	)
}

// ParseSort は orderBy を解析する。空文字または "null" は nil (既定の並び順) を返す
func ParseSort(raw string, allow AllowList) (*SortSpec, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	if strings.Count(raw, "-") != 1 {
		return nil, invalidSort(raw, "expected <field>-<asc|desc>")
	}
	key, dir, _ := strings.Cut(raw, "-")

	direction := Direction(dir)
	if direction != Asc && direction != Desc {
		return nil, invalidSort(raw, "direction must be asc or desc")
	}

	spec := &SortSpec{Direction: direction}
	switch strings.Count(key, ".") {
	case 0:
		spec.Field = key
	case 1:
		spec.Relation, spec.Field, _ = strings.Cut(key, ".")
		if spec.Relation == "" {
			return nil, invalidSort(raw, "empty relation")
		}
	default:
		return nil, invalidSort(raw, "field may contain at most one dot")
	}
	if spec.Field == "" {
		return nil, invalidSort(raw, "empty field")
	}

	if _, ok := allow[spec.Key()]; !ok {
		return nil, invalidSort(raw, "unsupported sort field")
	}
	return spec, nil
}

// OrderBy は ORDER BY 句を組み立てる。spec が nil なら fallback を使い、
// 最後に主キー昇順を付けてページ境界を安定させる
func (a AllowList) OrderBy(spec *SortSpec, fallback SortSpec, primaryKey string) string {
	s := fallback
	if spec != nil {
		s = *spec
	}
	expr, ok := a[s.Key()]
	if !ok {
		expr = a[fallback.Key()]
		s.Direction = fallback.Direction
	}
	return fmt.Sprintf("%s %s, %s ASC", expr, strings.ToUpper(string(s.Direction)), primaryKey)
}
