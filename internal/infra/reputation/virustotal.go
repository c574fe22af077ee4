// Package reputation implements the upstream URL reputation scanner client.
package reputation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkscan/config"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/service"

	"github.com/pkg/errors"
)

const apiKeyHeader = "x-apikey"

// virusTotalScanner implements service.ReputationScanner against the
// VirusTotal v3 API. Each method is a single network round trip; the scan
// workflow owns retries and polling.
type virusTotalScanner struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewVirusTotalScanner creates a scanner client from configuration.
func NewVirusTotalScanner(cfg *config.Config, logger *slog.Logger) service.ReputationScanner {
	return &virusTotalScanner{
		apiKey:  cfg.Scanner.APIKey,
		baseURL: strings.TrimRight(cfg.Scanner.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Scanner.Timeout,
		},
		logger: logger,
	}
}

// submitResponse is the subset of the submission payload we consume.
type submitResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// analysisResponse mirrors the analysis payload. The full decoded body is
// passed through to the client as the raw analysis data.
type analysisResponse struct {
	Data struct {
		Attributes struct {
			Status string `json:"status"`
			Stats  struct {
				Malicious int `json:"malicious"`
			} `json:"stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// Submit sends the URL for analysis and returns the upstream scan ID.
func (s *virusTotalScanner) Submit(ctx context.Context, target string) (string, error) {
	form := url.Values{}
	form.Set("url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/urls", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set(apiKeyHeader, s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := s.do(req)
	if err != nil {
		return "", err
	}

	var parsed submitResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", domainerrors.ErrUpstreamScanner.WithDetails("malformed submission response")
	}
	if parsed.Data.ID == "" {
		return "", domainerrors.ErrUpstreamScanner.WithDetails("submission response missing scan ID")
	}

	return parsed.Data.ID, nil
}

// FetchAnalysis retrieves the current analysis state for a scan ID.
func (s *virusTotalScanner) FetchAnalysis(ctx context.Context, scanID string) (*service.Analysis, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/analyses/"+url.PathEscape(scanID), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set(apiKeyHeader, s.apiKey)

	body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var parsed analysisResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, domainerrors.ErrUpstreamScanner.WithDetails("malformed analysis response")
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainerrors.ErrUpstreamScanner.WithDetails("malformed analysis response")
	}

	return &service.Analysis{
		Status:         parsed.Data.Attributes.Status,
		MaliciousCount: parsed.Data.Attributes.Stats.Malicious,
		Raw:            raw,
	}, nil
}

// do executes the request and returns the body of a successful response.
// Transport failures and non-2xx statuses both map to the upstream error.
func (s *virusTotalScanner) do(req *http.Request) ([]byte, error) {
	start := time.Now()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Scanner request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Path),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrUpstreamScanner.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrUpstreamScanner.WithDetails(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("Scanner returned non-success status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
		)

		return nil, domainerrors.ErrUpstreamScanner.WithDetails("upstream status " + resp.Status)
	}

	return body, nil
}
