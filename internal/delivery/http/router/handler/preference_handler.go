package handler

import (
	"net/http"

	"linkscan/internal/delivery/http/response"
	"linkscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PreferenceHandler holds dependencies for the device preference endpoint.
type PreferenceHandler struct {
	uc usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler, injected by Fx.
func NewPreferenceHandler(uc usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

type preferenceRequest struct {
	DeviceID        string  `json:"device_id" validate:"required"`
	BeepEnabled     bool    `json:"beep_enabled"`
	PreferredEngine *string `json:"preferred_search_engine"`
	AutoCopyEnabled bool    `json:"auto_copy_to_clipboard"`
}

// Update replaces the device's preference row. Omitted fields reset to their
// defaults; there is no field-level merge.
func (h *PreferenceHandler) Update(c echo.Context) error {
	var req preferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Device ID is required.")
	}

	err := h.uc.Update(c.Request().Context(), &usecase.PreferenceInput{
		DeviceID:        req.DeviceID,
		BeepEnabled:     req.BeepEnabled,
		PreferredEngine: req.PreferredEngine,
		AutoCopyEnabled: req.AutoCopyEnabled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Permissions updated successfully.")
}
