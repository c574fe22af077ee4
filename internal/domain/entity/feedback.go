package entity

import "github.com/google/uuid"

// Rating is a user star rating. Only the fixed enumerated values are accepted.
type Rating string

// The accepted rating values, exactly as the client sends them.
const (
	RatingOneStar    Rating = "1 Star"
	RatingTwoStars   Rating = "2 Stars"
	RatingThreeStars Rating = "3 Stars"
	RatingFourStars  Rating = "4 Stars"
	RatingFiveStars  Rating = "5 Stars"
	RatingNone       Rating = "No rating provided"
)

// Valid reports whether the rating is one of the enumerated values.
func (r Rating) Valid() bool {
	switch r {
	case RatingOneStar, RatingTwoStars, RatingThreeStars, RatingFourStars, RatingFiveStars, RatingNone:
		return true
	}

	return false
}

// FeedbackMessage is one free-text feedback entry. Rows are append-only;
// there is no update or delete operation.
type FeedbackMessage struct {
	ID          uuid.UUID `json:"id"`
	DeviceID    string    `json:"device_id"`
	MessageDate string    `json:"message_date"` // UTC date, YYYY-MM-DD.
	MessageTime string    `json:"message_time"` // UTC time, HH:MM:SS.
	Message     string    `json:"message"`
}

// FeedbackRating is one star-rating entry. Rows are append-only.
type FeedbackRating struct {
	ID         uuid.UUID `json:"id"`
	DeviceID   string    `json:"device_id"`
	RatingDate string    `json:"rating_date"` // UTC date, YYYY-MM-DD.
	RatingTime string    `json:"rating_time"` // UTC time, HH:MM:SS.
	Rating     Rating    `json:"rating"`
}
