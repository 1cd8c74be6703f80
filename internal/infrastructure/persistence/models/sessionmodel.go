package models

import (
	"time"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID             string     `gorm:"primarykey;size:64"`
	UserID         uint       `gorm:"not null;index"`
	User           *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	IPAddress      string     `gorm:"size:45"`
	UserAgent      string     `gorm:"size:512"`
	ExpiresAt      time.Time  `gorm:"not null;index"`
	LastActivityAt time.Time  `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
