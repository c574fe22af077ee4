package impl

import (
	"context"
	"testing"

	"linkscan/internal/domain/entity"
	mockRepo "linkscan/internal/mocks/repository"
	"linkscan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_Update(t *testing.T) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(prefRepo)

	ctx := context.Background()
	engine := "DuckDuckGo"

	prefRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Preferences")).
		Run(func(_ context.Context, prefs *entity.Preferences) {
			assert.Equal(t, "device-123", prefs.DeviceID)
			assert.True(t, prefs.BeepEnabled)
			require.NotNil(t, prefs.PreferredEngine)
			assert.Equal(t, engine, *prefs.PreferredEngine)
			assert.False(t, prefs.AutoCopyEnabled)
		}).
		Return(nil)

	err := svc.Update(ctx, &usecase.PreferenceInput{
		DeviceID:        "device-123",
		BeepEnabled:     true,
		PreferredEngine: &engine,
	})
	require.NoError(t, err)
}

func TestPreferenceService_Update_OmittedFieldsZeroed(t *testing.T) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(prefRepo)

	ctx := context.Background()

	// The row is replaced wholesale: an update that omits every field
	// resets the device to defaults.
	prefRepo.EXPECT().
		Upsert(ctx, &entity.Preferences{DeviceID: "device-123"}).
		Return(nil)

	require.NoError(t, svc.Update(ctx, &usecase.PreferenceInput{DeviceID: "device-123"}))
}

func TestPreferenceService_Update_RepoError(t *testing.T) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(prefRepo)

	prefRepo.EXPECT().
		Upsert(mock.Anything, mock.Anything).
		Return(errors.New("database error"))

	err := svc.Update(context.Background(), &usecase.PreferenceInput{DeviceID: "device-123"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert preferences")
}
