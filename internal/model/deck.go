// internal/model/deck.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Deck はカードの集合。cardsCount は保存せず集計で求める
type Deck struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Name      string    `gorm:"not null" json:"name"`
	IsPrivate bool      `gorm:"not null;default:false" json:"isPrivate"`
	Cover     *string   `json:"cover"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Deck) TableName() string {
	return "decks"
}

// VisibleTo は公開デッキか、呼び出し元が所有者の場合に true
func (d *Deck) VisibleTo(caller Caller) bool {
	return !d.IsPrivate || d.OwnerID == caller.UserID
}

// FavoriteDeck はユーザーごとのお気に入り
type FavoriteDeck struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeckID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

func (FavoriteDeck) TableName() string {
	return "favorite_decks"
}

// DeckView は一覧用に作成者名・カード数を付与した行
type DeckView struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Name       string    `json:"name"`
	IsPrivate  bool      `json:"isPrivate"`
	Cover      *string   `json:"cover"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	AuthorName string    `json:"-"`
	CardsCount int64     `json:"cardsCount"`
	IsFavorite bool      `json:"isFavorite"`
	Author     Author    `gorm:"-" json:"author"`
}

type PaginatedDecks struct {
	Items         []*DeckView `json:"items"`
	Pagination    Pagination  `json:"pagination"`
	MaxCardsCount int64       `json:"maxCardsCount"`
}

type MinMaxCards struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// デッキ一覧のクエリパラメータ
type ListDecksParams struct {
	Name          string
	AuthorID      string
	FavoritedBy   string
	MinCardsCount *int64
	MaxCardsCount *int64
	OrderBy       string
	CurrentPage   int
	ItemsPerPage  int
}

// デッキ作成リクエストDTO
type CreateDeckRequest struct {
	Name      string  `json:"name" validate:"required,min=3,max=30"`
	IsPrivate bool    `json:"isPrivate"`
	Cover     *string `json:"cover,omitempty" validate:"omitempty,url"`
}

// VisibleTo は Deck.VisibleTo と同じ規則
func (d *DeckView) VisibleTo(caller Caller) bool {
	return !d.IsPrivate || d.OwnerID == caller.UserID
}

// デッキ更新リクエストDTO。nil のフィールドは変更しない。cover は "" で削除
type UpdateDeckRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitnil,min=3,max=30"`
	IsPrivate *bool   `json:"isPrivate,omitempty"`
	Cover     *string `json:"cover,omitempty" validate:"omitnil,eq=|url"`
}
