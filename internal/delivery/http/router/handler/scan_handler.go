// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"linkscan/internal/delivery/http/response"
	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScanHandler holds dependencies for the scan and history endpoints.
type ScanHandler struct {
	uc     usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler, injected by Fx.
func NewScanHandler(uc usecase.ScanUsecase, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		uc:     uc,
		logger: logger,
	}
}

type addURLRequest struct {
	DeviceID   string `json:"device_id" validate:"required"`
	URL        string `json:"url" validate:"required"`
	ScanStatus string `json:"scan_status"`
}

// AddURL records a scan result row and stamps the device's last scan time.
func (h *ScanHandler) AddURL(c echo.Context) error {
	var req addURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Device ID and result are required.")
	}

	record, err := h.uc.AddURL(c.Request().Context(), &usecase.AddURLInput{
		DeviceID: req.DeviceID,
		URL:      req.URL,
		Status:   entity.ScanStatus(req.ScanStatus),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.Created{
		Message: "Result added with status.",
		URLID:   record.ID.String(),
	})
}

type checkURLRequest struct {
	URLID string `json:"url_id" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

// CheckURL submits the URL to the reputation provider and blocks on the
// bounded poll. A still-running analysis is a 202, not a failure.
func (h *ScanHandler) CheckURL(c echo.Context) error {
	var req checkURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "URL ID and URL are required.")
	}

	recordID, err := parseRecordID(req.URLID)
	if err != nil {
		return err
	}

	outcome, err := h.uc.RunScan(c.Request().Context(), recordID, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	if !outcome.Completed {
		return c.JSON(http.StatusAccepted, response.ScanPending{
			Status:  "loading",
			Message: "Scan is still in progress. Please try again shortly.",
		})
	}

	return c.JSON(http.StatusOK, response.ScanResult{
		Status: string(outcome.Status),
		Data:   outcome.Analysis,
	})
}

type recordIDRequest struct {
	URLID string `json:"url_id" validate:"required"`
}

// MarkVisited flags a stored URL as opened by the user.
func (h *ScanHandler) MarkVisited(c echo.Context) error {
	var req recordIDRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "URL ID is required.")
	}

	recordID, err := parseRecordID(req.URLID)
	if err != nil {
		return err
	}

	if err := h.uc.MarkVisited(c.Request().Context(), recordID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "URL marked as visited.")
}

// DeleteURL soft-deletes a stored URL so it no longer shows in history.
func (h *ScanHandler) DeleteURL(c echo.Context) error {
	var req recordIDRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "A valid URL ID is required.")
	}

	recordID, err := parseRecordID(req.URLID)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), recordID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "URL marked as deleted.")
}

// GetHistory returns the device's non-deleted scan records, newest first.
func (h *ScanHandler) GetHistory(c echo.Context) error {
	deviceID := c.Param("device_id")

	records, err := h.uc.History(c.Request().Context(), deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	if records == nil {
		records = []*entity.ScanRecord{}
	}

	return c.JSON(http.StatusOK, response.History{History: records})
}

// parseRecordID maps a malformed ID to the same 404 a missing row gets: a
// record with an unparseable ID cannot exist.
func parseRecordID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrScanRecordNotFound
	}

	return id, nil
}
