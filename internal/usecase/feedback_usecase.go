package usecase

import "context"

// FeedbackInput carries one feedback submission. Message and Rating are both
// optional, but at least one must be present.
type FeedbackInput struct {
	DeviceID string
	UserName string
	Message  string
	Rating   string
}

// FeedbackUsecase defines the user feedback use cases.
type FeedbackUsecase interface {
	// Submit validates the feedback, lazily registers the device, and appends
	// the message and/or rating rows. The writes are independent; a failure
	// after the device row is committed does not roll it back.
	Submit(ctx context.Context, input *FeedbackInput) error
}
