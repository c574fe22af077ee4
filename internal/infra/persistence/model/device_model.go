package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// The client-supplied device_id is the primary key; rows are created lazily.
type DeviceModel struct {
	DeviceID     string    `gorm:"type:varchar(255);primary_key"`
	UserName     string    `gorm:"type:varchar(255);not null"`
	RegisteredOn time.Time `gorm:"not null"`
	LastScanTime string    `gorm:"type:char(8)"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
