package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint            `gorm:"primarykey"`
	Username     string          `gorm:"uniqueIndex;not null;size:150"`
	Email        string          `gorm:"uniqueIndex;not null;size:254"`
	BirthDate    *datatypes.Date `gorm:"type:date"`
	Gender       *string         `gorm:"size:1"`
	PasswordHash string          `gorm:"not null;size:255"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
