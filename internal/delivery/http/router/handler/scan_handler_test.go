package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkscan/internal/delivery/http/middleware"
	"linkscan/internal/delivery/http/validator"
	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	mockUsecase "linkscan/internal/mocks/usecase"
	"linkscan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the production error handler and
// validator so tests observe the exact bodies the client sees.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// rejectAllValidator fails every request it sees.
type rejectAllValidator struct{}

func (rejectAllValidator) Validate(any) error {
	return domainerrors.ErrValidationFailed
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestScanHandler_AddURL(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/add-url", NewScanHandler(uc, slog.Default()).AddURL)

	recordID := uuid.New()
	uc.EXPECT().
		AddURL(mock.Anything, &usecase.AddURLInput{
			DeviceID: "device-123",
			URL:      "https://example.com",
			Status:   entity.StatusSecure,
		}).
		Return(&entity.ScanRecord{ID: recordID, DeviceID: "device-123"}, nil)

	rec := postJSON(e, "/add-url",
		`{"device_id":"device-123","url":"https://example.com","scan_status":"Secure"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Result added with status."`)
	assert.Contains(t, rec.Body.String(), `"url_id":"`+recordID.String()+`"`)
}

func TestScanHandler_AddURL_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/add-url", NewScanHandler(uc, slog.Default()).AddURL)

	rec := postJSON(e, "/add-url", `{"device_id":"device-123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device ID and result are required.")
}

func TestScanHandler_AddURL_RunsRegisteredValidator(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.Validator = rejectAllValidator{}
	e.POST("/add-url", NewScanHandler(uc, slog.Default()).AddURL)

	// The payload is well-formed, so a 400 here can only come from the
	// registered validator being consulted.
	rec := postJSON(e, "/add-url",
		`{"device_id":"device-123","url":"https://example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Device ID and result are required.")
}

func TestScanHandler_CheckURL_Completed(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/check-url", NewScanHandler(uc, slog.Default()).CheckURL)

	recordID := uuid.New()
	uc.EXPECT().
		RunScan(mock.Anything, recordID, "https://example.com").
		Return(&usecase.ScanOutcome{
			Completed: true,
			Status:    entity.StatusSecure,
			Analysis:  map[string]any{"data": map[string]any{"id": "scan-abc"}},
		}, nil)

	rec := postJSON(e, "/check-url",
		`{"url_id":"`+recordID.String()+`","url":"https://example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Secure"`)
	assert.Contains(t, rec.Body.String(), `"scan-abc"`)
}

func TestScanHandler_CheckURL_StillLoading(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/check-url", NewScanHandler(uc, slog.Default()).CheckURL)

	recordID := uuid.New()
	uc.EXPECT().
		RunScan(mock.Anything, recordID, "https://example.com").
		Return(&usecase.ScanOutcome{Completed: false, Status: entity.StatusPending}, nil)

	rec := postJSON(e, "/check-url",
		`{"url_id":"`+recordID.String()+`","url":"https://example.com"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"loading"`)
	assert.Contains(t, rec.Body.String(), "Scan is still in progress. Please try again shortly.")
}

func TestScanHandler_CheckURL_InvalidURL(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/check-url", NewScanHandler(uc, slog.Default()).CheckURL)

	recordID := uuid.New()
	uc.EXPECT().
		RunScan(mock.Anything, recordID, "not-a-url").
		Return(nil, domainerrors.ErrInvalidURL)

	rec := postJSON(e, "/check-url", `{"url_id":"`+recordID.String()+`","url":"not-a-url"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid URL format.")
}

func TestScanHandler_CheckURL_MissingFields(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/check-url", NewScanHandler(uc, slog.Default()).CheckURL)

	rec := postJSON(e, "/check-url", `{"url":"https://example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL ID and URL are required.")
}

func TestScanHandler_MarkVisited_NotFound(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/mark-url-visited", NewScanHandler(uc, slog.Default()).MarkVisited)

	recordID := uuid.New()
	uc.EXPECT().
		MarkVisited(mock.Anything, recordID).
		Return(domainerrors.ErrScanRecordNotFound)

	rec := postJSON(e, "/mark-url-visited", `{"url_id":"`+recordID.String()+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL not found.")
}

func TestScanHandler_MarkVisited_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/mark-url-visited", NewScanHandler(uc, slog.Default()).MarkVisited)

	// No usecase expectation: a malformed ID never reaches it.
	rec := postJSON(e, "/mark-url-visited", `{"url_id":"not-a-uuid"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL not found.")
}

func TestScanHandler_DeleteURL(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/delete-url", NewScanHandler(uc, slog.Default()).DeleteURL)

	recordID := uuid.New()
	uc.EXPECT().
		Delete(mock.Anything, recordID).
		Return(nil)

	rec := postJSON(e, "/delete-url", `{"url_id":"`+recordID.String()+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL marked as deleted.")
}

func TestScanHandler_GetHistory(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.GET("/get-history/:device_id", NewScanHandler(uc, slog.Default()).GetHistory)

	records := []*entity.ScanRecord{
		{ID: uuid.New(), DeviceID: "device-123", URL: "https://example.com", Status: entity.StatusSecure},
	}

	uc.EXPECT().
		History(mock.Anything, "device-123").
		Return(records, nil)

	req := httptest.NewRequest(http.MethodGet, "/get-history/device-123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"history":[`)
	assert.Contains(t, rec.Body.String(), `"https://example.com"`)
}

func TestScanHandler_GetHistory_Empty(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.GET("/get-history/:device_id", NewScanHandler(uc, slog.Default()).GetHistory)

	uc.EXPECT().
		History(mock.Anything, "device-unknown").
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/get-history/device-unknown", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// An unknown device yields an empty list, not null and not an error.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"history":[]`)
}

func TestScanHandler_AddURL_UsecaseError(t *testing.T) {
	uc := mockUsecase.NewMockScanUsecase(t)
	e := newTestEcho()
	e.POST("/add-url", NewScanHandler(uc, slog.Default()).AddURL)

	uc.EXPECT().
		AddURL(mock.Anything, mock.AnythingOfType("*usecase.AddURLInput")).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed"))

	rec := postJSON(e, "/add-url",
		`{"device_id":"device-123","url":"https://example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
