// internal/model/grade.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinGrade = 1
	MaxGrade = 5
)

// Grade は (user_id, card_id) ごとに1行。再評価で上書き
type Grade struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	DeckID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Grade     int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Grade) TableName() string {
	return "grades"
}

// Attempt は評価の累計回数。リセットしない
type Attempt struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID        uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	AttemptCount  int       `gorm:"not null;default:0"`
	LastAttemptAt time.Time `gorm:"not null"`
}

func (Attempt) TableName() string {
	return "card_attempts"
}

// 評価リクエストDTO
type SubmitGradeRequest struct {
	Grade int `json:"grade" validate:"required,min=1,max=5"`
}
