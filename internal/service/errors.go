package service

import (
	"errors"

	"go_flashcards/internal/model"
)

var (
	errDeckNotFound = model.NewAppError("DECK_NOT_FOUND", "Deck not found.", "", model.ErrNotFound)
	errCardNotFound = model.NewAppError("CARD_NOT_FOUND", "Card not found.", "", model.ErrNotFound)
	errDeckPrivate  = model.NewAppError("DECK_FORBIDDEN", "You do not have access to this deck.", "", model.ErrForbidden)
	errNotOwner     = model.NewAppError("NOT_OWNER", "Only the deck owner can do this.", "", model.ErrForbidden)
)

// lookupError はリポジトリの NotFound を notFound に、それ以外を内部エラーに変換する
func lookupError(err error, notFound *model.AppError, message string) error {
	if errors.Is(err, model.ErrNotFound) {
		return notFound
	}
	return internalError(message, err)
}

func internalError(message string, err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

// asAppError は既に AppError であればそのまま返す
func asAppError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return internalError(message, err)
}
