//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
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

type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	FindViewByID(ctx context.Context, db *gorm.DB, callerID, cardID uuid.UUID) (*model.CardView, error)
	Update(ctx context.Context, tx *gorm.DB, card *model.Card) error
	Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error
	List(ctx context.Context, db *gorm.DB, callerID uuid.UUID, filter query.CardFilter, sort *query.SortSpec, page query.Page) ([]*model.CardView, int64, error)
	// FindForLearning はデッキ内の全カードを作成順で返す
	FindForLearning(ctx context.Context, db *gorm.DB, callerID, deckID uuid.UUID) ([]*model.CardView, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

const cardViewColumns = "cards.*, " + query.GradeExpr + " AS grade, COALESCE(card_attempts.attempt_count, 0) AS attempt_count"

// withCallerProgress は呼び出し元の評価・試行の行だけを LEFT JOIN する
func withCallerProgress(ctx context.Context, db *gorm.DB, callerID uuid.UUID) *gorm.DB {
	return db.WithContext(ctx).
		Table("cards").
		Joins("LEFT JOIN grades ON grades.card_id = cards.id AND grades.user_id = ?", callerID).
		Joins("LEFT JOIN card_attempts ON card_attempts.card_id = cards.id AND card_attempts.user_id = ?", callerID)
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"deck_id", card.DeckID.String(),
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("id = ?", cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

// FindViewByID は呼び出し元の評価・試行回数付きで1件返す
func (r *gormCardRepository) FindViewByID(ctx context.Context, db *gorm.DB, callerID, cardID uuid.UUID) (*model.CardView, error) {
	logger := middleware.GetLogger(ctx)
	cards := []*model.CardView{}
	err := withCallerProgress(ctx, db, callerID).
		Select(cardViewColumns).
		Where("cards.id = ?", cardID).
		Limit(1).
		Scan(&cards).Error
	if err != nil {
		logger.Error("Error finding card view by ID in DB",
			"error", err,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindViewByID: %w", err)
	}
	if len(cards) == 0 {
		return nil, model.ErrNotFound
	}
	return cards[0], nil
}

// Update は問題・解答と添付メディアを書き換える
func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	card.UpdatedAt = time.Now()
	result := tx.WithContext(ctx).
		Model(card).
		Select("question", "answer", "question_img", "answer_img", "question_video", "answer_video", "updated_at").
		Updates(card)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"card_id", card.ID.String(),
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はカードとその評価・試行を削除する。呼び出し側でトランザクションを張ること
func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	tx = tx.WithContext(ctx)

	if err := tx.Where("card_id = ?", cardID).Delete(&model.Attempt{}).Error; err != nil {
		logger.Error("Error deleting card attempts in DB", "error", err, "card_id", cardID.String())
		return fmt.Errorf("gormCardRepository.Delete(attempts): %w", err)
	}
	if err := tx.Where("card_id = ?", cardID).Delete(&model.Grade{}).Error; err != nil {
		logger.Error("Error deleting card grades in DB", "error", err, "card_id", cardID.String())
		return fmt.Errorf("gormCardRepository.Delete(grades): %w", err)
	}

	result := tx.Where("id = ?", cardID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) List(ctx context.Context, db *gorm.DB, callerID uuid.UUID, filter query.CardFilter, sort *query.SortSpec, page query.Page) ([]*model.CardView, int64, error) {
	logger := middleware.GetLogger(ctx)
	conds := filter.Conditions()

	var total int64
	if err := conds.Apply(withCallerProgress(ctx, db, callerID)).Count(&total).Error; err != nil {
		logger.Error("Error counting cards in DB",
			"error", err,
			"deck_id", filter.DeckID.String(),
		)
		return nil, 0, fmt.Errorf("gormCardRepository.List(count): %w", err)
	}

	cards := []*model.CardView{}
	if total == 0 || int64(page.Offset()) >= total {
		return cards, total, nil
	}

	err := conds.Apply(withCallerProgress(ctx, db, callerID)).
		Select(cardViewColumns).
		Order(query.CardSortColumns.OrderBy(sort, query.DefaultSort, "cards.id")).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Scan(&cards).Error
	if err != nil {
		logger.Error("Error listing cards in DB",
			"error", err,
			"deck_id", filter.DeckID.String(),
		)
		return nil, 0, fmt.Errorf("gormCardRepository.List: %w", err)
	}
	return cards, total, nil
}

func (r *gormCardRepository) FindForLearning(ctx context.Context, db *gorm.DB, callerID, deckID uuid.UUID) ([]*model.CardView, error) {
	logger := middleware.GetLogger(ctx)
	cards := []*model.CardView{}
	err := withCallerProgress(ctx, db, callerID).
		Select(cardViewColumns).
		Where("cards.deck_id = ?", deckID).
		Order("cards.created_at ASC, cards.id ASC").
		Scan(&cards).Error
	if err != nil {
		logger.Error("Error loading cards for learning in DB",
			"error", err,
			"deck_id", deckID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindForLearning: %w", err)
	}
	return cards, nil
}
