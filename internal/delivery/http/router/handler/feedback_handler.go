package handler

import (
	"net/http"

	"linkscan/internal/delivery/http/response"
	"linkscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for the feedback endpoint.
type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

type feedbackRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
	Message  string `json:"message"`
	Rating   string `json:"rating"`
	UserName string `json:"user_name"`
}

// Submit stores a feedback message and/or star rating for a device.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Invalid request payload.")
	}

	if err := c.Validate(&req); err != nil {
		return response.Message(c, http.StatusBadRequest, "Device ID is required.")
	}

	err := h.uc.Submit(c.Request().Context(), &usecase.FeedbackInput{
		DeviceID: req.DeviceID,
		UserName: req.UserName,
		Message:  req.Message,
		Rating:   req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User feedback submitted successfully.")
}
