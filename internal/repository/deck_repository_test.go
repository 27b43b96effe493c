package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go_flashcards/internal/model"
	"go_flashcards/internal/query"
	"go_flashcards/internal/repository"
	"go_flashcards/internal/repository/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deckIDs(decks []*model.DeckView) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(decks))
	for _, d := range decks {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestGormDeckRepository_List_Visibility(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	u1 := testutil.SeedUser(t, db, "alice")
	u2 := testutil.SeedUser(t, db, "bob")
	public := testutil.SeedDeck(t, db, u1.ID, "public deck", false)
	private := testutil.SeedDeck(t, db, u1.ID, "private deck", true)

	page := query.Page{CurrentPage: 1, ItemsPerPage: 10}

	t.Run("他人の非公開デッキは含まれない", func(t *testing.T) {
		decks, total, err := repo.List(ctx, db, query.DeckFilter{Caller: model.Caller{UserID: u2.ID}}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []uuid.UUID{public.ID}, deckIDs(decks))
	})

	t.Run("作成者で絞っても他人の非公開デッキは含まれない", func(t *testing.T) {
		decks, total, err := repo.List(ctx, db, query.DeckFilter{Caller: model.Caller{UserID: u2.ID}, AuthorID: &u1.ID}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.NotContains(t, deckIDs(decks), private.ID)
	})

	t.Run("所有者には非公開デッキも見える", func(t *testing.T) {
		_, total, err := repo.List(ctx, db, query.DeckFilter{Caller: model.Caller{UserID: u1.ID}}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("管理者はすべて見える", func(t *testing.T) {
		_, total, err := repo.List(ctx, db, query.DeckFilter{Caller: model.Caller{UserID: u2.ID, IsAdmin: true}}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestGormDeckRepository_List_Pagination(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	owner := testutil.SeedUser(t, db, "owner")
	for i := 0; i < 25; i++ {
		testutil.SeedDeck(t, db, owner.ID, fmt.Sprintf("deck %02d", i), false)
	}
	filter := query.DeckFilter{Caller: model.Caller{UserID: owner.ID}}
	sort := &query.SortSpec{Field: "name", Direction: query.Asc}

	seen := map[uuid.UUID]bool{}
	for pageNo, want := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
		page := query.Page{CurrentPage: pageNo, ItemsPerPage: 10}
		decks, total, err := repo.List(ctx, db, filter, sort, page)
		require.NoError(t, err)
		assert.Len(t, decks, want, "page %d", pageNo)
		assert.Equal(t, int64(25), total)
		assert.Equal(t, 3, page.Result(total).TotalPages)
		for _, d := range decks {
			assert.False(t, seen[d.ID], "deck appears on two pages")
			seen[d.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestGormDeckRepository_List_SortAndFilter(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	zed := testutil.SeedUser(t, db, "zed")
	amy := testutil.SeedUser(t, db, "amy")
	big := testutil.SeedDeck(t, db, zed.ID, "Big Deck", false)
	small := testutil.SeedDeck(t, db, amy.ID, "small_deck", false)
	empty := testutil.SeedDeck(t, db, amy.ID, "Empty 100%", false)
	for i := 0; i < 3; i++ {
		testutil.SeedCard(t, db, big, fmt.Sprintf("q%d", i), "a")
	}
	testutil.SeedCard(t, db, small, "q", "a")
	testutil.SeedFavorite(t, db, zed.ID, small.ID)

	caller := model.Caller{UserID: zed.ID}
	page := query.Page{CurrentPage: 1, ItemsPerPage: 10}

	t.Run("カード数の降順", func(t *testing.T) {
		decks, _, err := repo.List(ctx, db, query.DeckFilter{Caller: caller}, &query.SortSpec{Field: "cardsCount", Direction: query.Desc}, page)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{big.ID, small.ID, empty.ID}, deckIDs(decks))
		assert.Equal(t, int64(3), decks[0].CardsCount)
		assert.Equal(t, int64(0), decks[2].CardsCount)
	})

	t.Run("作成者名の昇順", func(t *testing.T) {
		decks, _, err := repo.List(ctx, db, query.DeckFilter{Caller: caller}, &query.SortSpec{Relation: "author", Field: "name", Direction: query.Asc}, page)
		require.NoError(t, err)
		require.Len(t, decks, 3)
		assert.Equal(t, "amy", decks[0].Author.Name)
		assert.Equal(t, "zed", decks[2].Author.Name)
		assert.Equal(t, zed.ID, decks[2].Author.ID)
	})

	t.Run("名前の部分一致は大文字小文字を区別しない", func(t *testing.T) {
		decks, _, err := repo.List(ctx, db, query.DeckFilter{Caller: caller, Name: "big"}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{big.ID}, deckIDs(decks))
	})

	t.Run("ワイルドカード文字はリテラルとして扱う", func(t *testing.T) {
		decks, _, err := repo.List(ctx, db, query.DeckFilter{Caller: caller, Name: "_"}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{small.ID}, deckIDs(decks))

		decks, _, err = repo.List(ctx, db, query.DeckFilter{Caller: caller, Name: "%"}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{empty.ID}, deckIDs(decks))
	})

	t.Run("カード数の範囲", func(t *testing.T) {
		min, max := int64(1), int64(2)
		decks, _, err := repo.List(ctx, db, query.DeckFilter{Caller: caller, MinCardsCount: &min, MaxCardsCount: &max}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{small.ID}, deckIDs(decks))
	})

	t.Run("お気に入り", func(t *testing.T) {
		decks, total, err := repo.List(ctx, db, query.DeckFilter{Caller: caller, FavoritedBy: &zed.ID}, nil, page)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, decks, 1)
		assert.True(t, decks[0].IsFavorite)
	})
}

func TestGormDeckRepository_MinMaxCardsCount(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	got, err := repo.MinMaxCardsCount(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, &model.MinMaxCards{Min: 0, Max: 0}, got)

	owner := testutil.SeedUser(t, db, "owner")
	a := testutil.SeedDeck(t, db, owner.ID, "a", false)
	testutil.SeedDeck(t, db, owner.ID, "b", false)
	for i := 0; i < 4; i++ {
		testutil.SeedCard(t, db, a, "q", "a")
	}

	got, err = repo.MinMaxCardsCount(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, &model.MinMaxCards{Min: 0, Max: 4}, got)
}

func TestGormDeckRepository_Favorites(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	u := testutil.SeedUser(t, db, "u")
	d := testutil.SeedDeck(t, db, u.ID, "d", false)

	require.NoError(t, repo.AddFavorite(ctx, db, u.ID, d.ID))
	err := repo.AddFavorite(ctx, db, u.ID, d.ID)
	assert.True(t, errors.Is(err, model.ErrConflict))

	require.NoError(t, repo.RemoveFavorite(ctx, db, u.ID, d.ID))
	require.NoError(t, repo.RemoveFavorite(ctx, db, u.ID, d.ID))
}

func TestGormDeckRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()
	grades := repository.NewGormGradeRepository()

	u := testutil.SeedUser(t, db, "u")
	d := testutil.SeedDeck(t, db, u.ID, "d", false)
	c := testutil.SeedCard(t, db, d, "q", "a")
	testutil.SeedGrade(t, db, u.ID, c, 3)
	testutil.SeedFavorite(t, db, u.ID, d.ID)

	require.NoError(t, repo.Delete(ctx, db, d.ID))

	_, err := repo.FindByID(ctx, db, d.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = grades.FindGrade(ctx, db, u.ID, c.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	var cards int64
	require.NoError(t, db.Model(&model.Card{}).Where("deck_id = ?", d.ID).Count(&cards).Error)
	assert.Zero(t, cards)

	assert.ErrorIs(t, repo.Delete(ctx, db, d.ID), model.ErrNotFound)
}

func TestGormDeckRepository_FindViewByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	u := testutil.SeedUser(t, db, "alice")
	other := testutil.SeedUser(t, db, "bob")
	d := testutil.SeedDeck(t, db, u.ID, "kanji", true)
	testutil.SeedCard(t, db, d, "q1", "a1")
	testutil.SeedCard(t, db, d, "q2", "a2")
	testutil.SeedFavorite(t, db, other.ID, d.ID)

	t.Run("正常系: 集計とお気に入りが付く", func(t *testing.T) {
		got, err := repo.FindViewByID(ctx, db, other.ID, d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
		assert.True(t, got.IsPrivate)
		assert.Equal(t, int64(2), got.CardsCount)
		assert.True(t, got.IsFavorite)
		assert.Equal(t, model.Author{ID: u.ID, Name: "alice"}, got.Author)
	})

	t.Run("正常系: お気に入りは呼び出し元ごと", func(t *testing.T) {
		got, err := repo.FindViewByID(ctx, db, u.ID, d.ID)
		require.NoError(t, err)
		assert.False(t, got.IsFavorite)
	})

	t.Run("異常系: 存在しない", func(t *testing.T) {
		_, err := repo.FindViewByID(ctx, db, u.ID, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestGormDeckRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := repository.NewGormDeckRepository()

	u := testutil.SeedUser(t, db, "u")
	d := testutil.SeedDeck(t, db, u.ID, "before", true)
	cover := "https://example.com/c.png"
	require.NoError(t, db.Model(d).Update("cover", cover).Error)

	d.Name = "after"
	d.IsPrivate = false
	d.Cover = nil
	require.NoError(t, repo.Update(ctx, db, d))

	got, err := repo.FindByID(ctx, db, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.False(t, got.IsPrivate)
	assert.Nil(t, got.Cover)
	assert.Equal(t, u.ID, got.OwnerID)

	missing := &model.Deck{ID: uuid.New(), Name: "x"}
	assert.ErrorIs(t, repo.Update(ctx, db, missing), model.ErrNotFound)
}
