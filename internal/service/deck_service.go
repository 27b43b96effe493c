//go:generate mockery --name DeckService --output ./mocks --outpkg mocks --case=underscore --structname MockDeckService
package service

import (
	"context"
	"errors"

	"go_flashcards/internal/config"
	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/query"
	"go_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeckService interface {
	ListDecks(ctx context.Context, caller model.Caller, params model.ListDecksParams) (*model.PaginatedDecks, error)
	GetMinMaxCards(ctx context.Context) (*model.MinMaxCards, error)
	GetDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID) (*model.DeckView, error)
	CreateDeck(ctx context.Context, caller model.Caller, req *model.CreateDeckRequest) (*model.Deck, error)
	UpdateDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID, req *model.UpdateDeckRequest) (*model.Deck, error)
	DeleteDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID) error
	AddFavorite(ctx context.Context, caller model.Caller, deckID uuid.UUID) error
	RemoveFavorite(ctx context.Context, caller model.Caller, deckID uuid.UUID) error
}

type deckService struct {
	db       *gorm.DB
	deckRepo repository.DeckRepository
	cache    repository.DeckStatsCache
	cfg      config.AppConfig
}

func NewDeckService(db *gorm.DB, deckRepo repository.DeckRepository, cache repository.DeckStatsCache, cfg config.AppConfig) DeckService {
	if cache == nil {
		cache = repository.NopDeckStatsCache{}
	}
	return &deckService{
		db:       db,
		deckRepo: deckRepo,
		cache:    cache,
		cfg:      cfg,
	}
}

// ListDecks は ~caller を解決してからフィルタを組み立てる
func (s *deckService) ListDecks(ctx context.Context, caller model.Caller, params model.ListDecksParams) (*model.PaginatedDecks, error) {
	logger := middleware.GetLogger(ctx)

	sort, err := query.ParseSort(params.OrderBy, query.DeckSortColumns)
	if err != nil {
		return nil, err
	}
	authorID, err := query.ResolveSentinel(params.AuthorID, caller, "authorId")
	if err != nil {
		return nil, err
	}
	favoritedBy, err := query.ResolveSentinel(params.FavoritedBy, caller, "favoritedBy")
	if err != nil {
		return nil, err
	}
	page, err := query.NewPage(params.CurrentPage, params.ItemsPerPage, s.cfg.DefaultItemsPerPage, s.cfg.MaxItemsPerPage)
	if err != nil {
		return nil, err
	}

	filter := query.DeckFilter{
		Caller:        caller,
		AuthorID:      authorID,
		FavoritedBy:   favoritedBy,
		Name:          params.Name,
		MinCardsCount: params.MinCardsCount,
		MaxCardsCount: params.MaxCardsCount,
	}
	decks, total, err := s.deckRepo.List(ctx, s.db, filter, sort, page)
	if err != nil {
		logger.Error("Failed to list decks", "error", err)
		return nil, internalError("Failed to list decks.", err)
	}

	stats, err := s.GetMinMaxCards(ctx)
	if err != nil {
		return nil, err
	}

	return &model.PaginatedDecks{
		Items:         decks,
		Pagination:    page.Result(total),
		MaxCardsCount: stats.Max,
	}, nil
}

func (s *deckService) GetMinMaxCards(ctx context.Context) (*model.MinMaxCards, error) {
	if v, ok := s.cache.GetMinMax(ctx); ok {
		return v, nil
	}
	v, err := s.deckRepo.MinMaxCardsCount(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to aggregate cards count", "error", err)
		return nil, internalError("Failed to load deck statistics.", err)
	}
	s.cache.SetMinMax(ctx, v)
	return v, nil
}

// GetDeck は見えるデッキのみ返す。管理者でも他人の非公開デッキは見えない
func (s *deckService) GetDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID) (*model.DeckView, error) {
	deck, err := s.deckRepo.FindViewByID(ctx, s.db, caller.UserID, deckID)
	if err != nil {
		return nil, lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if !deck.VisibleTo(caller) {
		return nil, errDeckPrivate
	}
	return deck, nil
}

func (s *deckService) CreateDeck(ctx context.Context, caller model.Caller, req *model.CreateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx)

	deck := &model.Deck{
		ID:        uuid.New(),
		OwnerID:   caller.UserID,
		Name:      req.Name,
		IsPrivate: req.IsPrivate,
		Cover:     req.Cover,
	}
	if err := s.deckRepo.Create(ctx, s.db, deck); err != nil {
		logger.Error("Failed to create deck", "error", err)
		return nil, internalError("Failed to create deck.", err)
	}
	s.cache.Invalidate(ctx)

	logger.Info("Deck created", "deck_id", deck.ID.String())
	return deck, nil
}

// UpdateDeck は所有者のみ。指定されたフィールドだけ書き換える
func (s *deckService) UpdateDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID, req *model.UpdateDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	var updated *model.Deck
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deck, err := s.deckRepo.FindByID(ctx, tx, deckID)
		if err != nil {
			return lookupError(err, errDeckNotFound, "Failed to load deck.")
		}
		if deck.OwnerID != caller.UserID {
			return errNotOwner
		}

		if req.Name != nil {
			deck.Name = *req.Name
		}
		if req.IsPrivate != nil {
			deck.IsPrivate = *req.IsPrivate
		}
		if req.Cover != nil {
			deck.Cover = optionalURL(*req.Cover)
		}

		if err := s.deckRepo.Update(ctx, tx, deck); err != nil {
			return lookupError(err, errDeckNotFound, "Failed to update deck.")
		}
		updated = deck
		return nil
	})
	if err != nil {
		logger.Warn("Deck update failed", "error", err)
		return nil, asAppError(err, "Failed to update deck.")
	}
	s.cache.Invalidate(ctx)

	logger.Info("Deck updated", "is_private", updated.IsPrivate)
	return updated, nil
}

// DeleteDeck は所有者のみ。カード・評価・試行・お気に入りも削除する
func (s *deckService) DeleteDeck(ctx context.Context, caller model.Caller, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deck, err := s.deckRepo.FindByID(ctx, tx, deckID)
		if err != nil {
			return lookupError(err, errDeckNotFound, "Failed to load deck.")
		}
		if deck.OwnerID != caller.UserID {
			return errNotOwner
		}
		if err := s.deckRepo.Delete(ctx, tx, deckID); err != nil {
			return lookupError(err, errDeckNotFound, "Failed to delete deck.")
		}
		return nil
	})
	if err != nil {
		logger.Warn("Deck deletion failed", "error", err)
		return asAppError(err, "Failed to delete deck.")
	}
	s.cache.Invalidate(ctx)

	logger.Info("Deck deleted")
	return nil
}

// AddFavorite は見えるデッキのみ。既に登録済みなら Conflict
func (s *deckService) AddFavorite(ctx context.Context, caller model.Caller, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("deck_id", deckID.String())

	deck, err := s.deckRepo.FindByID(ctx, s.db, deckID)
	if err != nil {
		return lookupError(err, errDeckNotFound, "Failed to load deck.")
	}
	if !deck.VisibleTo(caller) {
		return errDeckPrivate
	}

	if err := s.deckRepo.AddFavorite(ctx, s.db, caller.UserID, deckID); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.NewAppError("ALREADY_FAVORITE", "Deck is already in favorites.", "", model.ErrConflict)
		}
		logger.Error("Failed to add favorite", "error", err)
		return internalError("Failed to add favorite.", err)
	}
	logger.Info("Deck added to favorites")
	return nil
}

// RemoveFavorite は未登録でも成功する
func (s *deckService) RemoveFavorite(ctx context.Context, caller model.Caller, deckID uuid.UUID) error {
	if err := s.deckRepo.RemoveFavorite(ctx, s.db, caller.UserID, deckID); err != nil {
		middleware.GetLogger(ctx).Error("Failed to remove favorite", "error", err, "deck_id", deckID.String())
		return internalError("Failed to remove favorite.", err)
	}
	return nil
}
