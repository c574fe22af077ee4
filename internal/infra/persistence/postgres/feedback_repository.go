package postgres

import (
	"context"

	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	"linkscan/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// AppendMessage stores one free-text feedback row.
func (repo *feedbackRepository) AppendMessage(ctx context.Context, msg *entity.FeedbackMessage) error {
	msgM := fromFeedbackMessageDomain(msg)

	if err := repo.db.WithContext(ctx).Create(msgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append feedback message")
	}

	msg.ID = msgM.ID

	return nil
}

// AppendRating stores one star-rating row.
func (repo *feedbackRepository) AppendRating(ctx context.Context, rating *entity.FeedbackRating) error {
	ratingM := fromFeedbackRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append feedback rating")
	}

	rating.ID = ratingM.ID

	return nil
}

// --- Mapper Functions ---

// fromFeedbackMessageDomain converts a domain FeedbackMessage to a GORM FeedbackMessageModel.
func fromFeedbackMessageDomain(data *entity.FeedbackMessage) *model.FeedbackMessageModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackMessageModel{
		ID:          data.ID,
		DeviceID:    data.DeviceID,
		MessageDate: data.MessageDate,
		MessageTime: data.MessageTime,
		Message:     data.Message,
	}
}

// fromFeedbackRatingDomain converts a domain FeedbackRating to a GORM FeedbackRatingModel.
func fromFeedbackRatingDomain(data *entity.FeedbackRating) *model.FeedbackRatingModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackRatingModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		RatingDate: data.RatingDate,
		RatingTime: data.RatingTime,
		Rating:     string(data.Rating),
	}
}
