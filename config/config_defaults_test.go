package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyScannerDefaults(t *testing.T) {
	cfg := &Config{}

	applyScannerDefaults(cfg)

	assert.Equal(t, defaultScannerBaseURL, cfg.Scanner.BaseURL)
	assert.Equal(t, 20, cfg.Scanner.PollAttempts)
	assert.Equal(t, 15*time.Second, cfg.Scanner.PollInterval)
	assert.Equal(t, defaultScannerTimeout, cfg.Scanner.Timeout)
}

func TestApplyScannerDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Scanner: &ScannerConfig{
			APIKey:       "key",
			BaseURL:      "http://localhost:9000",
			Timeout:      5 * time.Second,
			PollAttempts: 3,
			PollInterval: time.Second,
		},
	}

	applyScannerDefaults(cfg)

	assert.Equal(t, "http://localhost:9000", cfg.Scanner.BaseURL)
	assert.Equal(t, 3, cfg.Scanner.PollAttempts)
	assert.Equal(t, time.Second, cfg.Scanner.PollInterval)
}

func TestApplyRateLimitDefaults(t *testing.T) {
	cfg := &Config{}

	applyRateLimitDefaults(cfg)

	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
}
