package postgres

import (
	"context"

	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	"linkscan/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// Upsert replaces the device's preference row as a whole, creating it if
// absent. Applying the same input twice leaves an identical row.
func (repo *preferenceRepository) Upsert(ctx context.Context, prefs *entity.Preferences) error {
	prefsM := fromPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			UpdateAll: true,
		}).
		Create(prefsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device preferences")
	}

	return nil
}

// --- Mapper Functions ---

// fromPreferencesDomain converts a domain Preferences entity to a GORM PreferenceModel.
func fromPreferencesDomain(data *entity.Preferences) *model.PreferenceModel {
	if data == nil {
		return nil
	}

	return &model.PreferenceModel{
		DeviceID:        data.DeviceID,
		BeepEnabled:     data.BeepEnabled,
		PreferredEngine: data.PreferredEngine,
		AutoCopyEnabled: data.AutoCopyEnabled,
	}
}
