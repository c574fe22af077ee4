package impl

import (
	"context"
	"testing"

	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	mockRepo "linkscan/internal/mocks/repository"
	"linkscan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// feedbackServiceFixtures holds all test dependencies for feedback service tests.
type feedbackServiceFixtures struct {
	service      usecase.FeedbackUsecase
	feedbackRepo *mockRepo.MockFeedbackRepository
	deviceRepo   *mockRepo.MockDeviceRepository
}

func createTestFeedbackService(t *testing.T) feedbackServiceFixtures {
	feedbackRepo := mockRepo.NewMockFeedbackRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewFeedbackService(feedbackRepo, deviceRepo)

	return feedbackServiceFixtures{
		service:      svc,
		feedbackRepo: feedbackRepo,
		deviceRepo:   deviceRepo,
	}
}

func TestFeedbackService_Submit_MessageAndRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "device-123").
		Return(&entity.Device{DeviceID: "device-123", UserName: "Alice"}, nil)

	fx.feedbackRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.FeedbackMessage")).
		Run(func(_ context.Context, msg *entity.FeedbackMessage) {
			assert.Equal(t, "device-123", msg.DeviceID)
			assert.Equal(t, "Great app!", msg.Message)
		}).
		Return(nil)

	fx.feedbackRepo.EXPECT().
		AppendRating(ctx, mock.AnythingOfType("*entity.FeedbackRating")).
		Run(func(_ context.Context, row *entity.FeedbackRating) {
			assert.Equal(t, entity.RatingFiveStars, row.Rating)
		}).
		Return(nil)

	err := fx.service.Submit(ctx, &usecase.FeedbackInput{
		DeviceID: "device-123",
		Message:  "Great app!",
		Rating:   "5 Stars",
	})
	require.NoError(t, err)
}

func TestFeedbackService_Submit_MessageOnly(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "device-123").
		Return(&entity.Device{DeviceID: "device-123"}, nil)

	// A message without a rating must not write a rating row.
	fx.feedbackRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.FeedbackMessage")).
		Return(nil)

	err := fx.service.Submit(ctx, &usecase.FeedbackInput{
		DeviceID: "device-123",
		Message:  "  needs dark mode  ",
	})
	require.NoError(t, err)
}

func TestFeedbackService_Submit_BothEmpty(t *testing.T) {
	fx := createTestFeedbackService(t)

	err := fx.service.Submit(context.Background(), &usecase.FeedbackInput{
		DeviceID: "device-123",
		Message:  "   ",
		Rating:   "",
	})
	assert.Equal(t, domainerrors.ErrFeedbackEmpty, err)
}

func TestFeedbackService_Submit_InvalidRating(t *testing.T) {
	fx := createTestFeedbackService(t)

	for _, rating := range []string{"6 Stars", "five", "0 Stars"} {
		err := fx.service.Submit(context.Background(), &usecase.FeedbackInput{
			DeviceID: "device-123",
			Rating:   rating,
		})
		assert.Equal(t, domainerrors.ErrInvalidRating, err, "rating %q", rating)
	}
}

func TestFeedbackService_Submit_RegistersUnknownDevice(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "device-new").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, device *entity.Device) {
			assert.Equal(t, "device-new", device.DeviceID)
			assert.Equal(t, entity.DefaultUserName, device.UserName)
		}).
		Return(nil)

	fx.feedbackRepo.EXPECT().
		AppendRating(ctx, mock.AnythingOfType("*entity.FeedbackRating")).
		Return(nil)

	err := fx.service.Submit(ctx, &usecase.FeedbackInput{
		DeviceID: "device-new",
		Rating:   "No rating provided",
	})
	require.NoError(t, err)
}

func TestFeedbackService_Submit_DeviceLookupError(t *testing.T) {
	fx := createTestFeedbackService(t)

	ctx := context.Background()
	expectedErr := errors.New("database error")

	fx.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "device-123").
		Return(nil, expectedErr)

	err := fx.service.Submit(ctx, &usecase.FeedbackInput{
		DeviceID: "device-123",
		Message:  "hello",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up device")
}
