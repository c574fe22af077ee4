// Package service defines interfaces for external collaborators.
package service

import (
	"context"
)

// AnalysisStatusCompleted is the upstream status that ends the polling loop.
// Any other status means the analysis is still being processed.
const AnalysisStatusCompleted = "completed"

// Analysis is the result of one poll against the upstream scanner.
type Analysis struct {
	Status         string         // Upstream analysis status, e.g. "queued" or "completed".
	MaliciousCount int            // Number of engines that flagged the URL as malicious.
	Raw            map[string]any // Decoded provider payload, passed through to the client.
}

// Completed reports whether the analysis has resolved upstream.
func (a *Analysis) Completed() bool {
	return a.Status == AnalysisStatusCompleted
}

// ReputationScanner wraps the external two-call scan protocol.
// Both calls are single network round trips with no internal retry;
// the scan workflow owns the polling loop.
type ReputationScanner interface {
	// Submit sends the URL for analysis and returns the upstream scan ID.
	Submit(ctx context.Context, url string) (string, error)

	// FetchAnalysis retrieves the current analysis state for a scan ID.
	FetchAnalysis(ctx context.Context, scanID string) (*Analysis, error)
}
