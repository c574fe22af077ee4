package impl

import (
	"context"
	"strings"
	"time"

	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	"linkscan/internal/errors"
	"linkscan/internal/usecase"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	deviceRepo   repository.DeviceRepository
}

// NewFeedbackService creates the feedback submission service.
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	deviceRepo repository.DeviceRepository,
) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		deviceRepo:   deviceRepo,
	}
}

// Submit validates the feedback, lazily registers the device, and appends the
// message and/or rating rows. The writes are independent, non-transactional
// operations: a failure after the device row is committed leaves it committed.
func (s *feedbackService) Submit(ctx context.Context, input *usecase.FeedbackInput) error {
	message := strings.TrimSpace(input.Message)
	rating := strings.TrimSpace(input.Rating)

	if message == "" && rating == "" {
		return domainerrors.ErrFeedbackEmpty
	}

	if rating != "" && !entity.Rating(rating).Valid() {
		return domainerrors.ErrInvalidRating
	}

	if err := s.ensureDevice(ctx, input.DeviceID, input.UserName); err != nil {
		return err
	}

	date, clock := entity.ScanTimestamp(time.Now())

	if message != "" {
		msg := &entity.FeedbackMessage{
			DeviceID:    input.DeviceID,
			MessageDate: date,
			MessageTime: clock,
			Message:     message,
		}
		if err := s.feedbackRepo.AppendMessage(ctx, msg); err != nil {
			return errors.Wrap(err, "failed to append feedback message")
		}
	}

	if rating != "" {
		row := &entity.FeedbackRating{
			DeviceID:   input.DeviceID,
			RatingDate: date,
			RatingTime: clock,
			Rating:     entity.Rating(rating),
		}
		if err := s.feedbackRepo.AppendRating(ctx, row); err != nil {
			return errors.Wrap(err, "failed to append feedback rating")
		}
	}

	return nil
}

// ensureDevice lazily creates the device row on its first feedback event.
func (s *feedbackService) ensureDevice(ctx context.Context, deviceID, userName string) error {
	_, err := s.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return errors.Wrap(err, "failed to look up device")
	}

	if strings.TrimSpace(userName) == "" {
		userName = entity.DefaultUserName
	}

	device := &entity.Device{
		DeviceID:     deviceID,
		UserName:     userName,
		RegisteredOn: time.Now().UTC(),
	}

	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	return nil
}
