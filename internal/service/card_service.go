//go:generate mockery --name CardService --output ./mocks --outpkg mocks --case=underscore --structname MockCardService
package service

import (
	"context"

	"go_flashcards/internal/config"
	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/query"
	"go_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardService interface {
	ListCards(ctx context.Context, caller model.Caller, deckID uuid.UUID, params model.ListCardsParams) (*model.PaginatedCards, error)
	GetCard(ctx context.Context, caller model.Caller, cardID uuid.UUID) (*model.CardView, error)
	CreateCard(ctx context.Context, caller model.Caller, deckID uuid.UUID, req *model.CreateCardRequest) (*model.Card, error)
	UpdateCard(ctx context.Context, caller model.Caller, cardID uuid.UUID, req *model.UpdateCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, caller model.Caller, cardID uuid.UUID) error
}

type cardService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	cardRepo repository.CardRepository
	cache    repository.DeckStatsCache
	cfg      config.AppConfig
}

func NewCardService(db *gorm.DB, deckRepo repository.DeckRepository, cardRepo repository.CardRepository, cache repository.DeckStatsCache, cfg config.AppConfig) CardService {
	if cache == nil {
		cache = repository.NopDeckStatsCache{}
	}
	return &cardService{
		db:       db,
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		cache:    cache,
		cfg:      cfg,
	}
}

// ListCards はデッキが見える場合のみ、呼び出し元の評価付きで一覧を返す
func (s *cardService) ListCards(ctx context.Context, caller model.Caller, deckID uuid.UUID, params model.ListCardsParams) (*model.PaginatedCards, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	sort, err := query.ParseSort(params.OrderBy, query.CardSortColumns)
	if err != nil {
		return nil, err
	}
	page, err := query.NewPage(params.CurrentPage, params.ItemsPerPage, s.cfg.DefaultItemsPerPage, s.cfg.MaxItemsPerPage)
	if err != nil {
		return nil, err
	}

	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return nil, lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if !deck.VisibleTo(caller) {
		return nil, errDeckPrivate
	}

	filter := query.CardFilter{DeckID: deckID, Question: params.Question, Answer: params.Answer}
	cards, total, err := s.cardRepo.List(ctx, s.db, caller.UserID, filter, sort, page)
	if err != nil {
		logger.Error("Failed to list cards", "error", err)
		return nil, internalError("Failed to list cards.", err)
	}

	return &model.PaginatedCards{
		Items:      cards,
		Pagination: page.Result(total),
	}, nil
}

// GetCard はデッキが見える場合のみ、呼び出し元の評価付きで返す
func (s *cardService) GetCard(ctx context.Context, caller model.Caller, cardID uuid.UUID) (*model.CardView, error) {
	card, err := s.cardRepo.FindViewByID(ctx, s.db, caller.UserID, cardID)
	if err != nil {
		return nil, lookupError(err, errCardNotFound, "Failed to load card.")
	}
	deck, err := s.deckRepo.FindByID(ctx, s.db, card.DeckID)
	if err != nil {
		return nil, lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if !deck.VisibleTo(caller) {
		return nil, errDeckPrivate
	}
	return card, nil
}

// CreateCard はデッキの所有者のみ
func (s *cardService) CreateCard(ctx context.Context, caller model.Caller, deckID uuid.UUID, req *model.CreateCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return nil, lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if deck.OwnerID != caller.UserID {
		return nil, errNotOwner
	}

	card := &model.Card{
		ID:            uuid.New(),
		DeckID:        deckID,
		AuthorID:      caller.UserID,
		Question:      req.Question,
		Answer:        req.Answer,
		QuestionImg:   req.QuestionImg,
		AnswerImg:     req.AnswerImg,
		QuestionVideo: req.QuestionVideo,
		AnswerVideo:   req.AnswerVideo,
	}
	if err := s.cardRepo.Create(ctx, s.db, card); err != nil {
		logger.Error("Failed to create card", "error", err)
		return nil, internalError("Failed to create card.", err)
	}
	s.cache.Invalidate(ctx)

	logger.Info("Card created", "card_id", card.ID.String())
	return card, nil
}

// UpdateCard はデッキの所有者のみ。指定されたフィールドだけ書き換える
func (s *cardService) UpdateCard(ctx context.Context, caller model.Caller, cardID uuid.UUID, req *model.UpdateCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID.String())

	var updated *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return lookupError(err, errCardNotFound, "Failed to load card.")
		}
		deck, err := s.deckRepo.FindByID(ctx, tx, card.DeckID)
		if err != nil {
			return lookupError(err, errDeckNotFound, "Failed to load deck.")
		}
		if deck.OwnerID != caller.UserID {
			return errNotOwner
		}

		if req.Question != nil {
			card.Question = *req.Question
		}
		if req.Answer != nil {
			card.Answer = *req.Answer
		}
		for _, f := range []struct {
			src *string
			dst **string
		}{
			{req.QuestionImg, &card.QuestionImg},
			{req.AnswerImg, &card.AnswerImg},
			{req.QuestionVideo, &card.QuestionVideo},
			{req.AnswerVideo, &card.AnswerVideo},
		} {
			if f.src != nil {
				*f.dst = optionalURL(*f.src)
			}
		}

		if err := s.cardRepo.Update(ctx, tx, card); err != nil {
			return lookupError(err, errCardNotFound, "Failed to update card.")
		}
		updated = card
		return nil
	})
	if err != nil {
		logger.Warn("Card update failed", "error", err)
		return nil, asAppError(err, "Failed to update card.")
	}
	s.cache.Invalidate(ctx)

	logger.Info("Card updated")
	return updated, nil
}

// DeleteCard はデッキの所有者のみ。評価と試行も削除する
func (s *cardService) DeleteCard(ctx context.Context, caller model.Caller, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("card_id", cardID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			return lookupError(err, errCardNotFound, "Failed to load card.")
		}
		deck, err := s.deckRepo.FindByID(ctx, tx, card.DeckID)
		if err != nil {
			return lookupError(err, errDeckNotFound, "Failed to load deck.")
		}
		if deck.OwnerID != caller.UserID {
			return errNotOwner
		}
		if err := s.cardRepo.Delete(ctx, tx, cardID); err != nil {
			return lookupError(err, errCardNotFound, "Failed to delete card.")
		}
		return nil
	})
	if err != nil {
		logger.Warn("Card deletion failed", "error", err)
		return asAppError(err, "Failed to delete card.")
	}
	s.cache.Invalidate(ctx)

	logger.Info("Card deleted")
	return nil
}

// optionalURL は空文字を「削除」として nil にする
func optionalURL(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
