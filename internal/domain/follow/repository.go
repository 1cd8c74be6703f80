package follow

import "context"

type Repository interface {
	// Create inserts the edge. A duplicate pair surfaces as a duplicate-key error.
	Create(ctx context.Context, edge *Edge) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	// FollowedIDs returns the ids of users followerID follows.
	FollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	// ListFollowing returns edges where userID is the follower.
	ListFollowing(ctx context.Context, userID uint) ([]*Edge, error)
	// ListFollowers returns edges where userID is followed.
	ListFollowers(ctx context.Context, userID uint) ([]*Edge, error)
	// DeleteOwned removes edge id only when followerID owns it and reports
	// whether a row was removed.
	DeleteOwned(ctx context.Context, id, followerID uint) (bool, error)
}
