package query

import (
	"go_flashcards/internal/model"
)

// Page は1始まりのページ指定
type Page struct {
	CurrentPage  int
	ItemsPerPage int
}

// NewPage は 0 を未指定として既定値で補い、上限を超えるサイズは maxSize に丸める
func NewPage(currentPage, itemsPerPage, defaultSize, maxSize int) (Page, error) {
	if currentPage < 0 {
		return Page{}, model.NewAppError("INVALID_PAGINATION", "currentPage must be >= 1", "currentPage", model.ErrInvalidInput)
	}
	if itemsPerPage < 0 {
		return Page{}, model.NewAppError("INVALID_PAGINATION", "itemsPerPage must be >= 1", "itemsPerPage", model.ErrInvalidInput)
	}
	if currentPage == 0 {
		currentPage = 1
	}
	if itemsPerPage == 0 {
		itemsPerPage = defaultSize
	}
	if maxSize > 0 && itemsPerPage > maxSize {
		itemsPerPage = maxSize
	}
	return Page{CurrentPage: currentPage, ItemsPerPage: itemsPerPage}, nil
}

func (p Page) Offset() int {
	return (p.CurrentPage - 1) * p.ItemsPerPage
}

func (p Page) Limit() int {
	return p.ItemsPerPage
}

// Result は総件数から Pagination を組み立てる
func (p Page) Result(totalItems int64) model.Pagination {
	size := int64(p.ItemsPerPage)
	return model.Pagination{
		CurrentPage:  p.CurrentPage,
		ItemsPerPage: p.ItemsPerPage,
		TotalItems:   totalItems,
		TotalPages:   int((totalItems + size - 1) / size),
	}
}
