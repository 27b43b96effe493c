// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Card は1つのデッキに属する問題と解答
type Card struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID        uuid.UUID `gorm:"type:uuid;not null;index" json:"deckId"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null" json:"authorId"`
	Question      string    `gorm:"not null" json:"question"`
	Answer        string    `gorm:"not null" json:"answer"`
	QuestionImg   *string   `json:"questionImg"`
	AnswerImg     *string   `json:"answerImg"`
	QuestionVideo *string   `json:"questionVideo"`
	AnswerVideo   *string   `json:"answerVideo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Card) TableName() string {
	return "cards"
}

// CardView は呼び出し元の評価・試行回数を付与したカード
// Grade は未評価なら 0
type CardView struct {
	ID            uuid.UUID `json:"id"`
	DeckID        uuid.UUID `json:"deckId"`
	AuthorID      uuid.UUID `json:"authorId"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	QuestionImg   *string   `json:"questionImg"`
	AnswerImg     *string   `json:"answerImg"`
	QuestionVideo *string   `json:"questionVideo"`
	AnswerVideo   *string   `json:"answerVideo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Grade         int       `json:"grade"`
	AttemptCount  int       `json:"attemptCount"`
}

type PaginatedCards struct {
	Items      []*CardView `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// カード一覧のクエリパラメータ
type ListCardsParams struct {
	Question     string
	Answer       string
	OrderBy      string
	CurrentPage  int
	ItemsPerPage int
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	Question      string  `json:"question" validate:"required,min=1,max=500"`
	Answer        string  `json:"answer" validate:"required,min=1,max=500"`
	QuestionImg   *string `json:"questionImg,omitempty" validate:"omitempty,url"`
	AnswerImg     *string `json:"answerImg,omitempty" validate:"omitempty,url"`
	QuestionVideo *string `json:"questionVideo,omitempty" validate:"omitempty,url"`
	AnswerVideo   *string `json:"answerVideo,omitempty" validate:"omitempty,url"`
}

// カード更新リクエストDTO。nil のフィールドは変更しない。画像・動画は "" で削除
type UpdateCardRequest struct {
	Question      *string `json:"question,omitempty" validate:"omitnil,min=1,max=500"`
	Answer        *string `json:"answer,omitempty" validate:"omitnil,min=1,max=500"`
	QuestionImg   *string `json:"questionImg,omitempty" validate:"omitnil,eq=|url"`
	AnswerImg     *string `json:"answerImg,omitempty" validate:"omitnil,eq=|url"`
	QuestionVideo *string `json:"questionVideo,omitempty" validate:"omitnil,eq=|url"`
	AnswerVideo   *string `json:"answerVideo,omitempty" validate:"omitnil,eq=|url"`
}
