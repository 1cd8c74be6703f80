package models

import (
	"time"

	"github.com/litrevu/litrevu/internal/shared/constants"
)

type ReviewModel struct {
	ID        uint         `gorm:"primaryKey"`
	TicketID  uint         `gorm:"not null;index"`
	Ticket    *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	UserID    uint         `gorm:"not null;index"`
	User      *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int          `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 0 AND 5"`
	Headline  string       `gorm:"size:128;not null"`
	Body      string       `gorm:"type:text;not null"`
	CreatedAt time.Time    `gorm:"not null;index"`
}

func (ReviewModel) TableName() string {
	return constants.TableReviews
}
