// Package permission defines the ownership gate applied before every edit or
// delete of user-authored content.
package permission

import "context"

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Resource kinds as they appear in policies.
const (
	ResourceTicket  = "ticket"
	ResourceComment = "comment"
	ResourceReview  = "review"
)

// SubjectOwner is the policy subject matched when the actor owns the resource.
const SubjectOwner = "owner"

// Owned is implemented by every user-authored record.
type Owned interface {
	OwnerID() uint
	ResourceKind() string
}

// OwnershipGate returns nil when actorID may perform action on resource, and a
// Forbidden error otherwise.
type OwnershipGate interface {
	AssertOwner(ctx context.Context, actorID uint, resource Owned, action Action) error
}
