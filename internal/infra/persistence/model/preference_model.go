package model

// PreferenceModel is the GORM-specific struct for the 'device_preferences' table.
type PreferenceModel struct {
	DeviceID        string  `gorm:"type:varchar(255);primary_key"`
	BeepEnabled     bool    `gorm:"not null;default:false"`
	PreferredEngine *string `gorm:"type:varchar(255)"`
	AutoCopyEnabled bool    `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "device_preferences"
}
