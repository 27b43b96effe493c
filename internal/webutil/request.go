package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go_flashcards/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DecodeJSONBody はリクエストボディをデコードし、validate タグで検証します
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err))
	}

	if err := Validator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

// URLParamUUID はパスパラメータをUUIDとして取得します
func URLParamUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", fmt.Sprintf("%s must be a UUID.", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryPositiveInt は未指定なら 0 を返し、指定があれば 1 以上の整数でなければならない
func QueryPositiveInt(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%s must be an integer >= 1.", name), name, model.ErrInvalidInput)
	}
	return n, nil
}

// QueryOptionalInt64 は未指定なら nil を返す
func QueryOptionalInt64(q url.Values, name string) (*int64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%s must be a non-negative integer.", name), name, model.ErrInvalidInput)
	}
	return &n, nil
}

// QueryOptionalUUID は未指定なら nil を返す
func QueryOptionalUUID(q url.Values, name string) (*uuid.UUID, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%s must be a UUID.", name), name, model.ErrInvalidInput)
	}
	return &id, nil
}
