package entity

import "time"

// DefaultUserName is stored when a device registers without a user name.
const DefaultUserName = "Anonymous"

// Device represents one app installation. The device_id is a client-supplied
// opaque string, not an authenticated identity. Rows are created lazily on the
// first feedback or scan event that needs one.
type Device struct {
	DeviceID     string    `json:"device_id"`      // Unique client-supplied identifier.
	UserName     string    `json:"user_name"`      // Display name, defaults to Anonymous.
	RegisteredOn time.Time `json:"registered_on"`  // Timestamp of lazy registration.
	LastScanTime string    `json:"last_scan_time"` // UTC time of the most recent scan submission, HH:MM:SS.
}
