package usecase

import "context"

// PreferenceInput carries a full replacement of a device's settings.
type PreferenceInput struct {
	DeviceID        string
	BeepEnabled     bool
	PreferredEngine *string
	AutoCopyEnabled bool
}

// PreferenceUsecase defines the per-device preference use cases.
type PreferenceUsecase interface {
	// Update replaces the device's preferences as a whole. Creating and
	// re-applying identical input are both valid; last writer wins.
	Update(ctx context.Context, input *PreferenceInput) error
}
