// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanStatus is the lifecycle status of a scan record. The string values are
// part of the wire contract with the mobile client and must not change.
type ScanStatus string

const (
	// StatusNotChecked marks a record that was saved without running a scan.
	StatusNotChecked ScanStatus = "Not Checked"
	// StatusSecure marks a record whose scan completed with no malicious verdicts.
	StatusSecure ScanStatus = "Secure"
	// StatusInsecure marks a record whose scan completed with at least one malicious verdict.
	StatusInsecure ScanStatus = "Insecure"
	// StatusPending marks a record whose scan has been submitted but not resolved.
	StatusPending ScanStatus = "Pending"
	// StatusVisited marks a record whose URL the user opened from the history view.
	StatusVisited ScanStatus = "Visited"
)

// Valid reports whether the status is one of the known lifecycle values.
func (s ScanStatus) Valid() bool {
	switch s {
	case StatusNotChecked, StatusSecure, StatusInsecure, StatusPending, StatusVisited:
		return true
	}

	return false
}

// ScanRecord represents one URL check attempt and its current status.
// Deleted records stay in the store but are hidden from every history query.
type ScanRecord struct {
	ID          uuid.UUID  `json:"id"`           // Store-assigned identifier, opaque to the client.
	DeviceID    string     `json:"device_id"`    // Client-supplied device identifier.
	URL         string     `json:"url"`          // The scanned URL as submitted.
	Status      ScanStatus `json:"status"`       // Current scan status.
	ScannedDate string     `json:"scanned_date"` // UTC date of submission, YYYY-MM-DD.
	ScannedTime string     `json:"scanned_time"` // UTC time of submission, HH:MM:SS.
	Deleted     bool       `json:"deleted"`      // Soft-delete flag; never physically removed.
}

// ScanTimestamp formats t into the stored date and time parts.
// The ISO forms keep string ordering identical to chronological ordering.
func ScanTimestamp(t time.Time) (date, clock string) {
	utc := t.UTC()

	return utc.Format("2006-01-02"), utc.Format("15:04:05")
}
