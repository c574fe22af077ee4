// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	"linkscan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scanRecordRepository implements the repository.ScanRecordRepository interface.
type scanRecordRepository struct {
	db *gorm.DB
}

// NewScanRecordRepository is the constructor for scanRecordRepository.
func NewScanRecordRepository(db *gorm.DB) repository.ScanRecordRepository {
	return &scanRecordRepository{
		db: db,
	}
}

// Create persists a new scan record and fills in the store-assigned ID.
func (repo *scanRecordRepository) Create(ctx context.Context, record *entity.ScanRecord) error {
	recordM := fromScanRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required scan record fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create scan record")
	}

	record.ID = recordM.ID

	return nil
}

// UpdateStatus sets the scan status of the record with the given ID.
func (repo *scanRecordRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScanStatus) error {
	return repo.updateColumn(ctx, id, "status", string(status))
}

// MarkVisited sets the record's status to Visited.
func (repo *scanRecordRepository) MarkVisited(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumn(ctx, id, "status", string(entity.StatusVisited))
}

// MarkDeleted soft-deletes the record. The row stays in the table.
func (repo *scanRecordRepository) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumn(ctx, id, "deleted", true)
}

// ListHistory returns the device's non-deleted records ordered newest first.
func (repo *scanRecordRepository) ListHistory(ctx context.Context, deviceID string) ([]*entity.ScanRecord, error) {
	var recordModels []*model.ScanRecordModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND deleted = ?", deviceID, false).
		Order("scanned_date DESC, scanned_time DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list scan history")
	}

	records := make([]*entity.ScanRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toScanRecordDomain(recordM))
	}

	return records, nil
}

func (repo *scanRecordRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScanRecordModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update scan record %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrScanRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toScanRecordDomain converts a GORM ScanRecordModel to a domain ScanRecord entity.
func toScanRecordDomain(data *model.ScanRecordModel) *entity.ScanRecord {
	if data == nil {
		return nil
	}

	return &entity.ScanRecord{
		ID:          data.ID,
		DeviceID:    data.DeviceID,
		URL:         data.URL,
		Status:      entity.ScanStatus(data.Status),
		ScannedDate: data.ScannedDate,
		ScannedTime: data.ScannedTime,
		Deleted:     data.Deleted,
	}
}

// fromScanRecordDomain converts a domain ScanRecord entity to a GORM ScanRecordModel.
func fromScanRecordDomain(data *entity.ScanRecord) *model.ScanRecordModel {
	if data == nil {
		return nil
	}

	return &model.ScanRecordModel{
		ID:          data.ID,
		DeviceID:    data.DeviceID,
		URL:         data.URL,
		Status:      string(data.Status),
		ScannedDate: data.ScannedDate,
		ScannedTime: data.ScannedTime,
		Deleted:     data.Deleted,
	}
}
