//go:generate mockery --name GradeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_flashcards/internal/middleware"
	"go_flashcards/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GradeRepository は評価と試行回数の台帳
type GradeRepository interface {
	UpsertGrade(ctx context.Context, tx *gorm.DB, grade *model.Grade) error
	IncrementAttempt(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID, at time.Time) error
	FindGrade(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Grade, error)
	FindAttempt(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Attempt, error)
}

type gormGradeRepository struct{}

func NewGormGradeRepository() GradeRepository {
	return &gormGradeRepository{}
}

var userCardConflict = []clause.Column{{Name: "user_id"}, {Name: "card_id"}}

// UpsertGrade は (user_id, card_id) の評価を作成または上書きする
func (r *gormGradeRepository) UpsertGrade(ctx context.Context, tx *gorm.DB, grade *model.Grade) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   userCardConflict,
		DoUpdates: clause.AssignmentColumns([]string{"grade", "deck_id", "updated_at"}),
	}).Create(grade)
	if result.Error != nil {
		logger.Error("Error upserting grade in DB",
			"error", result.Error,
			"user_id", grade.UserID.String(),
			"card_id", grade.CardID.String(),
		)
		return fmt.Errorf("gormGradeRepository.UpsertGrade: %w", result.Error)
	}
	return nil
}

// IncrementAttempt は初回なら 1 で作成し、以降は DB 側で +1 する
func (r *gormGradeRepository) IncrementAttempt(ctx context.Context, tx *gorm.DB, userID, cardID uuid.UUID, at time.Time) error {
	logger := middleware.GetLogger(ctx)
	attempt := &model.Attempt{
		UserID:        userID,
		CardID:        cardID,
		AttemptCount:  1,
		LastAttemptAt: at,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: userCardConflict,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"attempt_count":   gorm.Expr("card_attempts.attempt_count + 1"),
			"last_attempt_at": at,
		}),
	}).Create(attempt)
	if result.Error != nil {
		logger.Error("Error incrementing attempt in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormGradeRepository.IncrementAttempt: %w", result.Error)
	}
	return nil
}

func (r *gormGradeRepository) FindGrade(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Grade, error) {
	var grade model.Grade
	result := db.WithContext(ctx).Where("user_id = ? AND card_id = ?", userID, cardID).First(&grade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding grade in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormGradeRepository.FindGrade: %w", result.Error)
	}
	return &grade, nil
}

func (r *gormGradeRepository) FindAttempt(ctx context.Context, db *gorm.DB, userID, cardID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	result := db.WithContext(ctx).Where("user_id = ? AND card_id = ?", userID, cardID).First(&attempt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding attempt in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormGradeRepository.FindAttempt: %w", result.Error)
	}
	return &attempt, nil
}
