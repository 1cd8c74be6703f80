// Package follow models directed "follower follows followed" edges.
package follow

import (
	"errors"
	"fmt"
	"time"

	"github.com/litrevu/litrevu/internal/shared/biztime"
)

// ErrSelfFollow is returned when a user tries to follow themself.
var ErrSelfFollow = errors.New("users cannot follow themselves")

type Edge struct {
	id             uint
	userID         uint
	followedUserID uint
	createdAt      time.Time
}

func NewEdge(followerID, followedID uint) (*Edge, error) {
	if followerID == 0 || followedID == 0 {
		return nil, fmt.Errorf("both users are required")
	}
	if followerID == followedID {
		return nil, ErrSelfFollow
	}
	return &Edge{
		userID:         followerID,
		followedUserID: followedID,
		createdAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructEdge(id, followerID, followedID uint, createdAt time.Time) (*Edge, error) {
	if id == 0 {
		return nil, fmt.Errorf("follow edge ID cannot be zero")
	}
	return &Edge{
		id:             id,
		userID:         followerID,
		followedUserID: followedID,
		createdAt:      createdAt,
	}, nil
}

func (e *Edge) ID() uint             { return e.id }
func (e *Edge) FollowerID() uint     { return e.userID }
func (e *Edge) FollowedID() uint     { return e.followedUserID }
func (e *Edge) CreatedAt() time.Time { return e.createdAt }

func (e *Edge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("follow edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("follow edge ID cannot be zero")
	}
	e.id = id
	return nil
}
