package entity

// Preferences holds per-device app settings. The row is replaced as a whole
// on every update call; there is no field-level merge.
type Preferences struct {
	DeviceID        string  `json:"device_id"`               // Unique client-supplied identifier.
	BeepEnabled     bool    `json:"beep_enabled"`            // Play a sound when a scan resolves.
	PreferredEngine *string `json:"preferred_search_engine"` // Preferred search engine, nil when unset.
	AutoCopyEnabled bool    `json:"auto_copy_to_clipboard"`  // Copy scanned URLs to the clipboard automatically.
}
