package handler

import (
	"net/http"
	"testing"

	domainerrors "linkscan/internal/domain/errors"
	mockUsecase "linkscan/internal/mocks/usecase"
	"linkscan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFeedbackHandler_Submit(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	e := newTestEcho()
	e.POST("/api/user_feedback", NewFeedbackHandler(uc).Submit)

	uc.EXPECT().
		Submit(mock.Anything, &usecase.FeedbackInput{
			DeviceID: "device-123",
			UserName: "Alice",
			Message:  "Great app!",
			Rating:   "5 Stars",
		}).
		Return(nil)

	rec := postJSON(e, "/api/user_feedback",
		`{"device_id":"device-123","user_name":"Alice","message":"Great app!","rating":"5 Stars"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User feedback submitted successfully.")
}

func TestFeedbackHandler_Submit_RunsRegisteredValidator(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	e := newTestEcho()
	e.Validator = rejectAllValidator{}
	e.POST("/api/user_feedback", NewFeedbackHandler(uc).Submit)

	rec := postJSON(e, "/api/user_feedback",
		`{"device_id":"device-123","message":"Great app!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device ID is required.")
}

func TestFeedbackHandler_Submit_MissingDeviceID(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	e := newTestEcho()
	e.POST("/api/user_feedback", NewFeedbackHandler(uc).Submit)

	rec := postJSON(e, "/api/user_feedback", `{"message":"hello"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device ID is required.")
}

func TestFeedbackHandler_Submit_EmptyFeedback(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	e := newTestEcho()
	e.POST("/api/user_feedback", NewFeedbackHandler(uc).Submit)

	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*usecase.FeedbackInput")).
		Return(domainerrors.ErrFeedbackEmpty)

	rec := postJSON(e, "/api/user_feedback", `{"device_id":"device-123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "At least one of message or rating must be provided.")
}

func TestFeedbackHandler_Submit_InvalidRating(t *testing.T) {
	uc := mockUsecase.NewMockFeedbackUsecase(t)
	e := newTestEcho()
	e.POST("/api/user_feedback", NewFeedbackHandler(uc).Submit)

	uc.EXPECT().
		Submit(mock.Anything, mock.AnythingOfType("*usecase.FeedbackInput")).
		Return(domainerrors.ErrInvalidRating)

	rec := postJSON(e, "/api/user_feedback",
		`{"device_id":"device-123","rating":"6 Stars"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid rating value.")
}
