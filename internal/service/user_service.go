//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore --structname MockUserService
package service

import (
	"context"
	"errors"
	"strings"

	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"
	"go_flashcards/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	// VerifyCaller は認証済みの呼び出し元がユーザーとして存在するか確認する
	VerifyCaller(ctx context.Context, caller model.Caller) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewUserService(db *gorm.DB, repo repository.UserRepository) UserService {
	return &userService{db: db, userRepo: repo}
}

var errUserNotFound = model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)

func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	user := &model.User{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if user.Name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "name is required.", "name", model.ErrInvalidInput)
	}

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("EMAIL_TAKEN", "Email is already registered.", "email", model.ErrConflict)
		}
		return nil, internalError("Failed to create user.", err)
	}

	middleware.GetLogger(ctx).Info("User created", "user_id", user.ID.String())
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, lookupError(err, errUserNotFound, "Failed to load user.")
	}
	return user, nil
}

// VerifyCaller は削除済みユーザーのトークンを 401 にする
func (s *userService) VerifyCaller(ctx context.Context, caller model.Caller) error {
	_, err := s.userRepo.FindByID(ctx, s.db, caller.UserID)
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("UNKNOWN_USER", "User no longer exists.", "", model.ErrUnauthorized)
	}
	return internalError("Failed to verify caller.", err)
}
