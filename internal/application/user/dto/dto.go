package dto

import (
	"time"

	"github.com/litrevu/litrevu/internal/domain/user"
)

type UserDTO struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	out := &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		BirthDate: u.BirthDate(),
		CreatedAt: u.CreatedAt(),
	}
	if g := u.Gender(); g != nil {
		out.Gender = string(*g)
	}
	return out
}

// AuthResult is returned by register and login. Token goes into the session
// cookie and is never rendered.
type AuthResult struct {
	User      *UserDTO  `json:"user"`
	Token     string    `json:"-"`
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
