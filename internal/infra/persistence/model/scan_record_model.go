// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"github.com/google/uuid"
)

// ScanRecordModel is the GORM-specific struct for the 'scan_records' table.
// Soft delete is an explicit column: deleted rows stay in the table and are
// filtered out of history queries, they are never physically removed.
type ScanRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID    string    `gorm:"type:varchar(255);not null;index"`
	URL         string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(32);not null"`
	ScannedDate string    `gorm:"type:char(10);not null"`
	ScannedTime string    `gorm:"type:char(8);not null"`
	Deleted     bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ScanRecordModel) TableName() string {
	return "scan_records"
}
