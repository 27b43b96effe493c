package query

import (
	"errors"
	"testing"

	"go_flashcards/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	p, err := NewPage(0, 0, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, Page{CurrentPage: 1, ItemsPerPage: 10}, p)

	p, err = NewPage(3, 500, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, p.ItemsPerPage)

	_, err = NewPage(-1, 10, 10, 100)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = NewPage(1, -5, 10, 100)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestPage_Result(t *testing.T) {
	tests := []struct {
		page       int
		wantOffset int
	}{
		{page: 1, wantOffset: 0},
		{page: 2, wantOffset: 10},
		{page: 3, wantOffset: 20},
		{page: 4, wantOffset: 30},
	}
	for _, tt := range tests {
		p := Page{CurrentPage: tt.page, ItemsPerPage: 10}
		assert.Equal(t, tt.wantOffset, p.Offset())
		res := p.Result(25)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, int64(25), res.TotalItems)
	}

	assert.Equal(t, 0, Page{CurrentPage: 1, ItemsPerPage: 10}.Result(0).TotalPages)
	assert.Equal(t, 1, Page{CurrentPage: 1, ItemsPerPage: 10}.Result(10).TotalPages)
}
