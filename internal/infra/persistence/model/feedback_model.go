package model

import (
	"github.com/google/uuid"
)

// FeedbackMessageModel is the GORM-specific struct for the 'feedback_messages'
// table. Rows are append-only.
type FeedbackMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID    string    `gorm:"type:varchar(255);not null;index"`
	MessageDate string    `gorm:"type:char(10);not null"`
	MessageTime string    `gorm:"type:char(8);not null"`
	Message     string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackMessageModel) TableName() string {
	return "feedback_messages"
}

// FeedbackRatingModel is the GORM-specific struct for the 'feedback_ratings'
// table. Rows are append-only.
type FeedbackRatingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID   string    `gorm:"type:varchar(255);not null;index"`
	RatingDate string    `gorm:"type:char(10);not null"`
	RatingTime string    `gorm:"type:char(8);not null"`
	Rating     string    `gorm:"type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackRatingModel) TableName() string {
	return "feedback_ratings"
}
