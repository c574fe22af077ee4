package impl

import (
	"context"

	"linkscan/internal/domain/entity"
	"linkscan/internal/domain/repository"
	"linkscan/internal/errors"
	"linkscan/internal/usecase"
)

type preferenceService struct {
	prefRepo repository.PreferenceRepository
}

// NewPreferenceService creates the device preference service.
func NewPreferenceService(prefRepo repository.PreferenceRepository) usecase.PreferenceUsecase {
	return &preferenceService{
		prefRepo: prefRepo,
	}
}

// Update replaces the device's preferences as a whole. There is no merge:
// omitted fields take their zero values and the last writer wins.
func (s *preferenceService) Update(ctx context.Context, input *usecase.PreferenceInput) error {
	prefs := &entity.Preferences{
		DeviceID:        input.DeviceID,
		BeepEnabled:     input.BeepEnabled,
		PreferredEngine: input.PreferredEngine,
		AutoCopyEnabled: input.AutoCopyEnabled,
	}

	if err := s.prefRepo.Upsert(ctx, prefs); err != nil {
		return errors.Wrap(err, "failed to upsert preferences")
	}

	return nil
}
