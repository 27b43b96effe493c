package testutil

import (
	"context"
	"fmt"
	"testing"

	"go_flashcards/internal/model"
	"go_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB はテストごとに独立したインメモリ SQLite を返す
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	// 同一のインメモリDBを共有するため接続は1本に限定
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := repository.Migrate(context.Background(), db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB, name string) *model.User {
	tb.Helper()
	u := &model.User{
		ID:    uuid.New(),
		Name:  name,
		Email: uuid.NewString() + "@example.com",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedDeck(tb testing.TB, db *gorm.DB, owner uuid.UUID, name string, private bool) *model.Deck {
	tb.Helper()
	d := &model.Deck{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      name,
		IsPrivate: private,
	}
	if err := db.Create(d).Error; err != nil {
		tb.Fatalf("seed deck: %v", err)
	}
	return d
}

func SeedCard(tb testing.TB, db *gorm.DB, deck *model.Deck, question, answer string) *model.Card {
	tb.Helper()
	c := &model.Card{
		ID:       uuid.New(),
		DeckID:   deck.ID,
		AuthorID: deck.OwnerID,
		Question: question,
		Answer:   answer,
	}
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed card: %v", err)
	}
	return c
}

func SeedGrade(tb testing.TB, db *gorm.DB, userID uuid.UUID, card *model.Card, grade int) {
	tb.Helper()
	g := &model.Grade{UserID: userID, CardID: card.ID, DeckID: card.DeckID, Grade: grade}
	if err := db.Create(g).Error; err != nil {
		tb.Fatalf("seed grade: %v", err)
	}
}

func SeedFavorite(tb testing.TB, db *gorm.DB, userID, deckID uuid.UUID) {
	tb.Helper()
	if err := db.Create(&model.FavoriteDeck{UserID: userID, DeckID: deckID}).Error; err != nil {
		tb.Fatalf("seed favorite: %v", err)
	}
}
