package dto

import (
	"time"

	"github.com/litrevu/litrevu/internal/domain/follow"
)

// FollowDTO is one edge seen from the listing user: UserID and Username name
// the other side.
type FollowDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type FollowsDTO struct {
	Following []FollowDTO `json:"followed_users"`
	Followers []FollowDTO `json:"followers"`
}

type AddFollowResultDTO struct {
	Outcome  follow.Outcome `json:"outcome"`
	Username string         `json:"username"`
	Message  string         `json:"message"`
	EdgeID   uint           `json:"edge_id,omitempty"`
}
