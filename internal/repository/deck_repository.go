//go:generate mockery --name DeckRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckRepository interface {
	Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindByID(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.Deck, error)
	FindViewByID(ctx context.Context, db *gorm.DB, callerID, deckID uuid.UUID) (*model.DeckView, error)
	Update(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	Delete(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error
	List(ctx context.Context, db *gorm.DB, filter query.DeckFilter, sort *query.SortSpec, page query.Page) ([]*model.DeckView, int64, error)
	MinMaxCardsCount(ctx context.Context, db *gorm.DB) (*model.MinMaxCards, error)
	AddFavorite(ctx context.Context, tx *gorm.DB, userID, deckID uuid.UUID) error
	RemoveFavorite(ctx context.Context, tx *gorm.DB, userID, deckID uuid.UUID) error
}

type gormDeckRepository struct{}

func NewGormDeckRepository() DeckRepository {
	return &gormDeckRepository{}
}

// cardCountsJoin はデッキごとのカード数を集計する固定のサブクエリ
const cardCountsJoin = "LEFT JOIN (SELECT deck_id, COUNT(*) AS cards_count FROM cards GROUP BY deck_id) AS deck_card_counts ON deck_card_counts.deck_id = decks.id"

// deckViewColumns の ? には呼び出し元のユーザーIDを渡す
const deckViewColumns = "decks.*, users.name AS author_name, " + query.CardsCountExpr + " AS cards_count, " +
	"EXISTS (SELECT 1 FROM favorite_decks WHERE favorite_decks.deck_id = decks.id AND favorite_decks.user_id = ?) AS is_favorite"

// listScope は件数取得と行取得で共通の FROM/JOIN/WHERE を毎回新しく組み立てる
func (r *gormDeckRepository) listScope(ctx context.Context, db *gorm.DB, filter query.DeckFilter) *gorm.DB {
	q := db.WithContext(ctx).
		Table("decks").
		Joins("LEFT JOIN users ON users.id = decks.owner_id").
		Joins(cardCountsJoin)
	return filter.Conditions().Apply(q)
}

func (r *gormDeckRepository) Create(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(deck)
	if result.Error != nil {
		logger.Error("Error creating deck in DB",
			"error", result.Error,
			"owner_id", deck.OwnerID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDeckRepository) FindByID(ctx context.Context, db *gorm.DB, deckID uuid.UUID) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	var deck model.Deck
	result := db.WithContext(ctx).Where("id = ?", deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding deck by ID in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindByID: %w", result.Error)
	}
	return &deck, nil
}

// FindViewByID は一覧と同じ形 (作成者名・カード数・お気に入り) で1件返す。可視性は判定しない
func (r *gormDeckRepository) FindViewByID(ctx context.Context, db *gorm.DB, callerID, deckID uuid.UUID) (*model.DeckView, error) {
	logger := middleware.GetLogger(ctx)
	decks := []*model.DeckView{}
	err := db.WithContext(ctx).
		Table("decks").
		Joins("LEFT JOIN users ON users.id = decks.owner_id").
		Joins(cardCountsJoin).
		Select(deckViewColumns, callerID).
		Where("decks.id = ?", deckID).
		Limit(1).
		Scan(&decks).Error
	if err != nil {
		logger.Error("Error finding deck view by ID in DB",
			"error", err,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormDeckRepository.FindViewByID: %w", err)
	}
	if len(decks) == 0 {
		return nil, model.ErrNotFound
	}
	d := decks[0]
	d.Author = model.Author{ID: d.OwnerID, Name: d.AuthorName}
	return d, nil
}

// Update は名前・公開設定・カバーを書き換える
func (r *gormDeckRepository) Update(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	logger := middleware.GetLogger(ctx)
	deck.UpdatedAt = time.Now()
	result := tx.WithContext(ctx).
		Model(deck).
		Select("name", "is_private", "cover", "updated_at").
		Updates(deck)
	if result.Error != nil {
		logger.Error("Error updating deck in DB",
			"error", result.Error,
			"deck_id", deck.ID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はデッキと、そのカード・評価・試行・お気に入りをまとめて削除する。
// 呼び出し側でトランザクションを張ること
func (r *gormDeckRepository) Delete(ctx context.Context, tx *gorm.DB, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx = tx.WithContext(ctx)

	cardIDs := tx.Model(&model.Card{}).Select("id").Where("deck_id = ?", deckID)
	steps := []struct {
		name string
		run  func() error
	}{
		{"attempts", func() error { return tx.Where("card_id IN (?)", cardIDs).Delete(&model.Attempt{}).Error }},
		{"grades", func() error { return tx.Where("deck_id = ?", deckID).Delete(&model.Grade{}).Error }},
		{"cards", func() error { return tx.Where("deck_id = ?", deckID).Delete(&model.Card{}).Error }},
		{"favorites", func() error { return tx.Where("deck_id = ?", deckID).Delete(&model.FavoriteDeck{}).Error }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			logger.Error("Error deleting deck dependents in DB",
				"error", err,
				"deck_id", deckID.String(),
				"step", step.name,
			)
			return fmt.Errorf("gormDeckRepository.Delete(%s): %w", step.name, err)
		}
	}

	result := tx.Where("id = ?", deckID).Delete(&model.Deck{})
	if result.Error != nil {
		logger.Error("Error deleting deck in DB",
			"error", result.Error,
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeckRepository) List(ctx context.Context, db *gorm.DB, filter query.DeckFilter, sort *query.SortSpec, page query.Page) ([]*model.DeckView, int64, error) {
	logger := middleware.GetLogger(ctx)

	var total int64
	if err := r.listScope(ctx, db, filter).Count(&total).Error; err != nil {
		logger.Error("Error counting decks in DB",
			"error", err,
			"caller_id", filter.Caller.UserID.String(),
		)
		return nil, 0, fmt.Errorf("gormDeckRepository.List(count): %w", err)
	}

	decks := []*model.DeckView{}
	if total == 0 || int64(page.Offset()) >= total {
		return decks, total, nil
	}

	err := r.listScope(ctx, db, filter).
		Select(deckViewColumns, filter.Caller.UserID).
		Order(query.DeckSortColumns.OrderBy(sort, query.DefaultSort, "decks.id")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Scan(&decks).Error
	if err != nil {
		logger.Error("Error listing decks in DB",
			"error", err,
			"caller_id", filter.Caller.UserID.String(),
		)
		return nil, 0, fmt.Errorf("gormDeckRepository.List: %w", err)
	}

	for _, d := range decks {
		d.Author = model.Author{ID: d.OwnerID, Name: d.AuthorName}
	}
	return decks, total, nil
}

// MinMaxCardsCount は全デッキのカード数の最小・最大。カードのないデッキは 0 として数える
func (r *gormDeckRepository) MinMaxCardsCount(ctx context.Context, db *gorm.DB) (*model.MinMaxCards, error) {
	logger := middleware.GetLogger(ctx)
	var res model.MinMaxCards
	err := db.WithContext(ctx).Raw(`
		SELECT COALESCE(MIN(c), 0) AS min, COALESCE(MAX(c), 0) AS max
		FROM (
			SELECT COUNT(cards.id) AS c
			FROM decks LEFT JOIN cards ON cards.deck_id = decks.id
			GROUP BY decks.id
		) AS per_deck`).Scan(&res).Error
	if err != nil {
		logger.Error("Error aggregating cards count in DB", "error", err)
		return nil, fmt.Errorf("gormDeckRepository.MinMaxCardsCount: %w", err)
	}
	return &res, nil
}

func (r *gormDeckRepository) AddFavorite(ctx context.Context, tx *gorm.DB, userID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	fav := &model.FavoriteDeck{UserID: userID, DeckID: deckID}
	if err := tx.WithContext(ctx).Create(fav).Error; err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		logger.Error("Error adding favorite deck in DB",
			"error", err,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.AddFavorite: %w", err)
	}
	return nil
}

func (r *gormDeckRepository) RemoveFavorite(ctx context.Context, tx *gorm.DB, userID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := tx.WithContext(ctx).
		Where("user_id = ? AND deck_id = ?", userID, deckID).
		Delete(&model.FavoriteDeck{}).Error
	if err != nil {
		logger.Error("Error removing favorite deck in DB",
			"error", err,
			"user_id", userID.String(),
			"deck_id", deckID.String(),
		)
		return fmt.Errorf("gormDeckRepository.RemoveFavorite: %w", err)
	}
	return nil
}
