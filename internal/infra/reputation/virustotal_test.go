package reputation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkscan/config"
	domainerrors "linkscan/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(t *testing.T, handler http.Handler) *virusTotalScanner {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Scanner: &config.ScannerConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewVirusTotalScanner(cfg, logger).(*virusTotalScanner)
}

func TestVirusTotalScanner_Submit(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/urls", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-apikey"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "http://example.com", r.PostForm.Get("url"))

		w.Write([]byte(`{"data":{"id":"scan-abc","type":"analysis"}}`))
	}))

	scanID, err := scanner.Submit(context.Background(), "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, "scan-abc", scanID)
}

func TestVirusTotalScanner_Submit_UpstreamFailure(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := scanner.Submit(context.Background(), "http://example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_SCANNER", appErr.ErrorCode())
}

func TestVirusTotalScanner_Submit_MissingScanID(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))

	_, err := scanner.Submit(context.Background(), "http://example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_SCANNER", appErr.ErrorCode())
}

func TestVirusTotalScanner_FetchAnalysis_Completed(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/analyses/scan-abc", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-apikey"))

		w.Write([]byte(`{"data":{"attributes":{"status":"completed","stats":{"malicious":3,"harmless":70}}}}`))
	}))

	analysis, err := scanner.FetchAnalysis(context.Background(), "scan-abc")
	require.NoError(t, err)
	assert.True(t, analysis.Completed())
	assert.Equal(t, 3, analysis.MaliciousCount)
	assert.NotNil(t, analysis.Raw["data"])
}

func TestVirusTotalScanner_FetchAnalysis_Queued(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"attributes":{"status":"queued","stats":{}}}}`))
	}))

	analysis, err := scanner.FetchAnalysis(context.Background(), "scan-abc")
	require.NoError(t, err)
	assert.False(t, analysis.Completed())
	assert.Equal(t, 0, analysis.MaliciousCount)
}

func TestVirusTotalScanner_FetchAnalysis_MalformedBody(t *testing.T) {
	scanner := newTestScanner(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	_, err := scanner.FetchAnalysis(context.Background(), "scan-abc")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UPSTREAM_SCANNER", appErr.ErrorCode())
}
