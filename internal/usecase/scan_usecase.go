// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"linkscan/internal/domain/entity"

	"github.com/google/uuid"
)

// AddURLInput carries the fields for saving a new scan history entry.
type AddURLInput struct {
	DeviceID string
	URL      string
	Status   entity.ScanStatus // Optional; defaults to Not Checked.
}

// ScanOutcome is the result of one run of the scan workflow.
// A non-completed outcome means the upstream analysis did not resolve within
// the polling budget; it is not an error and the record keeps its stored status.
type ScanOutcome struct {
	Completed bool
	Status    entity.ScanStatus // Secure or Insecure when completed.
	Analysis  map[string]any    // Raw provider payload when completed.
}

// ScanUsecase defines the scan history and scan workflow use cases.
type ScanUsecase interface {
	// AddURL saves a new scan record and stamps the device's last scan time.
	AddURL(ctx context.Context, input *AddURLInput) (*entity.ScanRecord, error)

	// RunScan submits the URL upstream, polls until the analysis completes or
	// the attempt budget is exhausted, and persists the resolved status onto
	// the record.
	RunScan(ctx context.Context, recordID uuid.UUID, url string) (*ScanOutcome, error)

	// MarkVisited flags the record's URL as opened by the user.
	MarkVisited(ctx context.Context, recordID uuid.UUID) error

	// Delete soft-deletes the record, hiding it from history.
	Delete(ctx context.Context, recordID uuid.UUID) error

	// History returns the device's non-deleted records, newest first.
	History(ctx context.Context, deviceID string) ([]*entity.ScanRecord, error)
}
