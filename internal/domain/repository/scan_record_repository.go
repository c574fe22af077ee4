// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"linkscan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for scan record persistence.
var (
	// ErrScanRecordNotFound is returned when a scan record is not found.
	ErrScanRecordNotFound = errors.New("scan record not found")
)

// ScanRecordRepository defines the interface for scan history database operations.
type ScanRecordRepository interface {
	// Create persists a new scan record and fills in the store-assigned ID.
	Create(ctx context.Context, record *entity.ScanRecord) error

	// UpdateStatus sets the scan status of the record with the given ID.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScanStatus) error

	// MarkVisited sets the record's status to Visited.
	MarkVisited(ctx context.Context, id uuid.UUID) error

	// MarkDeleted soft-deletes the record. The row is kept but excluded from
	// all history queries.
	MarkDeleted(ctx context.Context, id uuid.UUID) error

	// ListHistory returns the device's non-deleted records ordered by
	// (scanned_date DESC, scanned_time DESC).
	ListHistory(ctx context.Context, deviceID string) ([]*entity.ScanRecord, error)
}
