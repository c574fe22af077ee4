package repository

import (
	"context"

	"linkscan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device row.
	Create(ctx context.Context, device *entity.Device) error

	// FindByDeviceID retrieves a device by its client-supplied identifier.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)

	// TouchLastScan updates the device's last scan time. Devices register
	// lazily, so a missing row is not an error here.
	TouchLastScan(ctx context.Context, deviceID string, scanTime string) error
}
