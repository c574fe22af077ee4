package repository

import (
	"context"

	"linkscan/internal/domain/entity"
)

// PreferenceRepository defines the interface for per-device preference storage.
type PreferenceRepository interface {
	// Upsert replaces the device's preference row as a whole, creating it if
	// absent. Last writer wins.
	Upsert(ctx context.Context, prefs *entity.Preferences) error
}
