package postgres

import (
	"context"
	"path/filepath"
	"testing"

	"linkscan/internal/domain/entity"
	"linkscan/internal/domain/repository"
	"linkscan/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a throwaway SQLite database with the scan schema. The
// table is created with explicit DDL because the model's uuid_generate_v7
// column default only exists on PostgreSQL; the repository itself issues
// portable SQL and behaves the same on both.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	ddl := `CREATE TABLE ` + model.ScanRecordModel{}.TableName() + ` (
		id TEXT PRIMARY KEY,
		device_id TEXT NOT NULL,
		url TEXT NOT NULL,
		status TEXT NOT NULL,
		scanned_date TEXT NOT NULL,
		scanned_time TEXT NOT NULL,
		deleted BOOLEAN NOT NULL DEFAULT FALSE
	)`
	require.NoError(t, db.Exec(ddl).Error)

	return db
}

func insertScanRecord(t *testing.T, repo repository.ScanRecordRepository, deviceID, url, date, clock string) uuid.UUID {
	t.Helper()

	record := &entity.ScanRecord{
		ID:          uuid.New(),
		DeviceID:    deviceID,
		URL:         url,
		Status:      entity.StatusNotChecked,
		ScannedDate: date,
		ScannedTime: clock,
	}
	require.NoError(t, repo.Create(context.Background(), record))

	return record.ID
}

func TestScanRecordRepository_ListHistory_ExcludesSoftDeleted(t *testing.T) {
	repo := NewScanRecordRepository(newTestDB(t))
	ctx := context.Background()

	keptID := insertScanRecord(t, repo, "device-123", "https://a.example.com", "2026-03-01", "10:00:00")
	deletedID := insertScanRecord(t, repo, "device-123", "https://b.example.com", "2026-03-01", "11:00:00")
	insertScanRecord(t, repo, "device-other", "https://c.example.com", "2026-03-01", "12:00:00")

	require.NoError(t, repo.MarkDeleted(ctx, deletedID))

	records, err := repo.ListHistory(ctx, "device-123")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, keptID, records[0].ID)

	// The soft-deleted row is hidden, not gone: deleting it again still
	// finds a row to flag.
	require.NoError(t, repo.MarkDeleted(ctx, deletedID))
}

func TestScanRecordRepository_ListHistory_OrdersNewestFirst(t *testing.T) {
	repo := NewScanRecordRepository(newTestDB(t))
	ctx := context.Background()

	// Inserted deliberately out of order.
	insertScanRecord(t, repo, "device-123", "https://mid.example.com", "2026-03-01", "10:00:00")
	insertScanRecord(t, repo, "device-123", "https://oldest.example.com", "2026-02-28", "23:59:59")
	insertScanRecord(t, repo, "device-123", "https://newest.example.com", "2026-03-02", "11:00:00")
	insertScanRecord(t, repo, "device-123", "https://earlier-same-day.example.com", "2026-03-02", "09:00:00")

	records, err := repo.ListHistory(ctx, "device-123")
	require.NoError(t, err)
	require.Len(t, records, 4)

	var urls []string
	for _, record := range records {
		urls = append(urls, record.URL)
	}
	assert.Equal(t, []string{
		"https://newest.example.com",
		"https://earlier-same-day.example.com",
		"https://mid.example.com",
		"https://oldest.example.com",
	}, urls)
}

func TestScanRecordRepository_ListHistory_UnknownDeviceIsEmpty(t *testing.T) {
	repo := NewScanRecordRepository(newTestDB(t))

	records, err := repo.ListHistory(context.Background(), "device-unknown")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestScanRecordRepository_MarkVisited_SetsStatus(t *testing.T) {
	repo := NewScanRecordRepository(newTestDB(t))
	ctx := context.Background()

	id := insertScanRecord(t, repo, "device-123", "https://a.example.com", "2026-03-01", "10:00:00")

	require.NoError(t, repo.MarkVisited(ctx, id))

	records, err := repo.ListHistory(ctx, "device-123")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.StatusVisited, records[0].Status)
}

func TestScanRecordRepository_UpdateColumn_MissingRow(t *testing.T) {
	repo := NewScanRecordRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.UpdateStatus(ctx, uuid.New(), entity.StatusSecure)
	assert.ErrorIs(t, err, repository.ErrScanRecordNotFound)

	err = repo.MarkVisited(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrScanRecordNotFound)

	err = repo.MarkDeleted(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrScanRecordNotFound)
}
