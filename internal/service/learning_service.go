//go:generate mockery --name LearningService --output ./mocks --outpkg mocks --case=underscore --structname MockLearningService
package service

import (
	"context"
	"fmt"
	"time"

	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningService は学習セッションの出題と評価を扱う。
// セッションの状態は持たず、評価と試行の行だけから次のカードを決める
type LearningService interface {
	GetNextCard(ctx context.Context, caller model.Caller, deckID uuid.UUID, previousCardID *uuid.UUID) (*model.CardView, error)
	RecordGrade(ctx context.Context, caller model.Caller, cardID uuid.UUID, grade int) (*model.Card, error)
	SubmitGrade(ctx context.Context, caller model.Caller, cardID uuid.UUID, grade int) (*model.CardView, error)
}

type learningService struct {
	db        *gorm.DB
	deckRepo  repository.DeckRepository
	cardRepo  repository.CardRepository
	gradeRepo repository.GradeRepository
	selector  *CardSelector
	now       func() time.Time
}

func NewLearningService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.CardRepository, gradeRepo repository.GradeRepository, selector *CardSelector) LearningService {
	return &learningService{
		db:        db,
		deckRepo:  deckRepo,
		cardRepo:  cardRepo,
		gradeRepo: gradeRepo,
		selector:  selector,
		now:       time.Now,
	}
}

// visibleDeck は存在しなければ NotFound、見えなければ Forbidden を返す
func (s *learningService) visibleDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID) (*model.Deck, error) {
	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return nil, lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if !deck.VisibleTo(caller) {
		return nil, errDeckPrivate
	}
	return deck, nil
}

func (s *learningService) GetNextCard(ctx context.Context, caller model.Caller, deckID uuid.UUID, previousCardID *uuid.UUID) (*model.CardView, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	if _, err := s.visibleDeck(ctx, caller, deckID); err != nil {
		logger.Warn("Next card request rejected", "error", err)
		return nil, err
	}

	cards, err := s.cardRepo.FindForLearning(ctx, s.db, caller.UserID, deckID)
	if err != nil {
		logger.Error("Failed to load cards for learning", "error", err)
		return nil, internalError("Failed to load cards.", err)
	}

	card, err := s.selector.Select(cards, previousCardID)
	if err != nil {
		logger.Info("No card to select", "error", err)
		return nil, err
	}

	logger.Debug("Next card selected", "card_id", card.ID.String(), "grade", card.Grade, "pool", len(cards))
	return card, nil
}

// RecordGrade は評価の上書きと試行回数の加算を1トランザクションで行う
func (s *learningService) RecordGrade(ctx context.Context, caller model.Caller, cardID uuid.UUID, grade int) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID.String())

	if grade < model.MinGrade || grade > model.MaxGrade {
		return nil, model.NewAppError(
			"INVALID_GRADE",
			fmt.Sprintf("grade must be between %d and %d.", model.MinGrade, model.MaxGrade),
			"grade",
			model.ErrInvalidInput,
		)
	}

	card, err := s.cardRepo.FindByID(ctx, s.db, cardID)
	if err != nil {
		return nil, lookupError(err, errCardNotFound, "Failed to load card.")
	}
	if _, err := s.visibleDeck(ctx, caller, card.DeckID); err != nil {
		logger.Warn("Grade rejected", "error", err)
		return nil, err
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g := &model.Grade{
			UserID: caller.UserID,
			CardID: card.ID,
			DeckID: card.DeckID,
			Grade:  grade,
		}
		if err := s.gradeRepo.UpsertGrade(ctx, tx, g); err != nil {
			return err
		}
		return s.gradeRepo.IncrementAttempt(ctx, tx, caller.UserID, card.ID, now)
	})
	if err != nil {
		logger.Error("Grade transaction aborted", "error", err)
		return nil, model.NewRetryableError("GRADE_NOT_RECORDED", "Failed to record grade. Please retry.", err)
	}

	logger.Info("Grade recorded", "grade", grade)
	return card, nil
}

func (s *learningService) SubmitGrade(ctx context.Context, caller model.Caller, cardID uuid.UUID, grade int) (*model.CardView, error) {
	card, err := s.RecordGrade(ctx, caller, cardID, grade)
	if err != nil {
		return nil, err
	}
	return s.GetNextCard(ctx, caller, card.DeckID, &card.ID)
}
