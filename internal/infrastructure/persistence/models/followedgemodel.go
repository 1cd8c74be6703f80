package models

import (
	"time"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

// FollowEdgeModel stores "UserID follows FollowedUserID"; each ordered pair once.
type FollowEdgeModel struct {
	ID             uint       `gorm:"primaryKey"`
	UserID         uint       `gorm:"not null;uniqueIndex:uk_follow_pair,priority:1"`
	User           *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FollowedUserID uint       `gorm:"not null;uniqueIndex:uk_follow_pair,priority:2;index"`
	FollowedUser   *UserModel `gorm:"foreignKey:FollowedUserID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time  `gorm:"not null"`
}

func (FollowEdgeModel) TableName() string {
	return constants.TableFollowEdges
}
