package model

import (
	"time"

	"github.com/google/uuid"
)

// User はデッキ・カードの作成者。登録は CLI の user create で行う
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	CallerKey ContextKey = "caller"
)

// Caller はリクエスト元の利用者
type Caller struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Author はレスポンスに埋め込む作成者情報
type Author struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ユーザー作成リクエストDTO
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Email string `json:"email" validate:"required,email"`
}
