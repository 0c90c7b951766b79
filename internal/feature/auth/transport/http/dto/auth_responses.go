package dto

import (
	"time"

	"survey_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public-facing representation of a user.
// The password hash is deliberately never serialized.
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRes is the response for a successful login.
type LoginRes struct {
	Token string  `json:"token"`
	User  UserRes `json:"user"`
}

// ErrorRes is the generic error envelope used by all handlers.
type ErrorRes struct {
	Error string `json:"error"`
}

// MessageRes is the generic success envelope for ack-only endpoints.
type MessageRes struct {
	Message string `json:"message"`
}

// NewUserRes はエンティティからレスポンスDTOを生成します。
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
