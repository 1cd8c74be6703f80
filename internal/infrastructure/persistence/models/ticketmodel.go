package models

import (
	"time"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

type TicketModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"not null;index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"size:128;not null"`
	Description string     `gorm:"size:2048;not null;default:''"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint         `gorm:"primaryKey"`
	TicketID  uint         `gorm:"not null;index"`
	Ticket    *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	UserID    uint         `gorm:"not null;index"`
	User      *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Body      string       `gorm:"size:2048;not null"`
	CreatedAt time.Time    `gorm:"not null;index"`
	UpdatedAt time.Time    `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
