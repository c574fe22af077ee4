// Package response holds the wire shapes the mobile client expects. The
// client predates this server, so field names here are load-bearing.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the plain acknowledgement body: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a bare acknowledgement with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// Created is Message with an extra url_id field, used by /add-url.
type Created struct {
	Message string `json:"message"`
	URLID   string `json:"url_id"`
}

// ScanResult is the completed-scan body for /check-url.
type ScanResult struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ScanPending is the 202 body while the upstream analysis is still running.
type ScanPending struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// History wraps the device's scan records for /get-history.
type History struct {
	History any `json:"history"`
}

// Version is the /version-status body.
type Version struct {
	LatestVersion string `json:"latest_version"`
}
