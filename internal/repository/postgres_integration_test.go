package repository_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_flashcards/internal/config"
	"go_flashcards/internal/model"
	"go_flashcards/internal/query"
	"go_flashcards/internal/repository"
	"go_flashcards/internal/repository/testutil"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostgresRepositoryTestSuite は TEST_DATABASE_URL が指す PostgreSQL に対して実行する
type PostgresRepositoryTestSuite struct {
	suite.Suite
	db     *gorm.DB
	decks  repository.DeckRepository
	grades repository.GradeRepository
}

func TestPostgresRepositories(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL is not set; skipping PostgreSQL integration tests")
	}
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB(config.DatabaseConfig{
		Driver:          "postgres",
		URL:             os.Getenv("TEST_DATABASE_URL"),
		MaxIdleConns:    2,
		MaxOpenConns:    5,
		ConnMaxLifetime: time.Minute,
	}, logger)
	s.Require().NoError(err)
	s.Require().NoError(repository.Migrate(context.Background(), db))

	s.db = db
	s.decks = repository.NewGormDeckRepository()
	s.grades = repository.NewGormGradeRepository()
}

// 各テストの前に全テーブルを空にする
func (s *PostgresRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE TABLE card_attempts, grades, favorite_decks, cards, decks, users CASCADE",
	).Error)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *PostgresRepositoryTestSuite) TestDeckList_CardsCountSortAndRange() {
	ctx := context.Background()
	t := s.T()
	u := testutil.SeedUser(t, s.db, "alice")
	small := testutil.SeedDeck(t, s.db, u.ID, "small", false)
	large := testutil.SeedDeck(t, s.db, u.ID, "large", false)
	testutil.SeedDeck(t, s.db, u.ID, "empty", false)
	testutil.SeedCard(t, s.db, small, "q1", "a1")
	for i := 0; i < 3; i++ {
		testutil.SeedCard(t, s.db, large, "q", "a")
	}

	sort, err := query.ParseSort("cardsCount-desc", query.DeckSortColumns)
	s.Require().NoError(err)
	minCards := int64(1)

	decks, total, err := s.decks.List(ctx, s.db,
		query.DeckFilter{Caller: model.Caller{UserID: u.ID}, MinCardsCount: &minCards},
		sort, query.Page{CurrentPage: 1, ItemsPerPage: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(decks, 2)
	s.Equal(large.ID, decks[0].ID)
	s.Equal(int64(3), decks[0].CardsCount)
	s.Equal("alice", decks[0].AuthorName)

	mm, err := s.decks.MinMaxCardsCount(ctx, s.db)
	s.Require().NoError(err)
	s.Equal(int64(0), mm.Min)
	s.Equal(int64(3), mm.Max)
}

func (s *PostgresRepositoryTestSuite) TestFavorite_DuplicateIsConflict() {
	ctx := context.Background()
	t := s.T()
	u := testutil.SeedUser(t, s.db, "bob")
	d := testutil.SeedDeck(t, s.db, u.ID, "fav", false)

	s.Require().NoError(s.decks.AddFavorite(ctx, s.db, u.ID, d.ID))
	s.ErrorIs(s.decks.AddFavorite(ctx, s.db, u.ID, d.ID), model.ErrConflict)
	s.Require().NoError(s.decks.RemoveFavorite(ctx, s.db, u.ID, d.ID))
	s.NoError(s.decks.RemoveFavorite(ctx, s.db, u.ID, d.ID))
}

func (s *PostgresRepositoryTestSuite) TestGradeLedger_UpsertKeepsSingleRow() {
	ctx := context.Background()
	t := s.T()
	u := testutil.SeedUser(t, s.db, "carol")
	d := testutil.SeedDeck(t, s.db, u.ID, "ledger", false)
	c := testutil.SeedCard(t, s.db, d, "q", "a")

	for _, g := range []int{1, 4} {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.grades.UpsertGrade(ctx, tx, &model.Grade{UserID: u.ID, CardID: c.ID, DeckID: d.ID, Grade: g}); err != nil {
				return err
			}
			return s.grades.IncrementAttempt(ctx, tx, u.ID, c.ID, time.Now())
		})
		s.Require().NoError(err)
	}

	grade, err := s.grades.FindGrade(ctx, s.db, u.ID, c.ID)
	s.Require().NoError(err)
	s.Equal(4, grade.Grade)

	attempt, err := s.grades.FindAttempt(ctx, s.db, u.ID, c.ID)
	s.Require().NoError(err)
	s.Equal(2, attempt.AttemptCount)
}
