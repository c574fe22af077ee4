// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"linkscan/config"
	"linkscan/internal/domain/entity"
	domainerrors "linkscan/internal/domain/errors"
	"linkscan/internal/domain/repository"
	"linkscan/internal/domain/service"
	"linkscan/internal/errors"
	"linkscan/internal/usecase"

	"github.com/google/uuid"
)

type scanService struct {
	scanRepo   repository.ScanRecordRepository
	deviceRepo repository.DeviceRepository
	scanner    service.ReputationScanner
	logger     *slog.Logger

	pollAttempts int
	pollInterval time.Duration
}

// NewScanService creates the scan workflow service.
func NewScanService(
	scanRepo repository.ScanRecordRepository,
	deviceRepo repository.DeviceRepository,
	scanner service.ReputationScanner,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ScanUsecase {
	// At least one fetch always happens, whatever the config says.
	pollAttempts := cfg.Scanner.PollAttempts
	if pollAttempts < 1 {
		pollAttempts = 1
	}

	return &scanService{
		scanRepo:     scanRepo,
		deviceRepo:   deviceRepo,
		scanner:      scanner,
		logger:       logger,
		pollAttempts: pollAttempts,
		pollInterval: cfg.Scanner.PollInterval,
	}
}

// AddURL saves a new scan record and stamps the device's last scan time.
func (s *scanService) AddURL(ctx context.Context, input *usecase.AddURLInput) (*entity.ScanRecord, error) {
	status := input.Status
	if status == "" {
		status = entity.StatusNotChecked
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown scan status")
	}

	date, clock := entity.ScanTimestamp(time.Now())

	record := &entity.ScanRecord{
		DeviceID:    input.DeviceID,
		URL:         input.URL,
		Status:      status,
		ScannedDate: date,
		ScannedTime: clock,
	}

	if err := s.scanRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create scan record")
	}

	if err := s.deviceRepo.TouchLastScan(ctx, input.DeviceID, clock); err != nil {
		return nil, errors.Wrap(err, "failed to touch device last scan time")
	}

	return record, nil
}

// RunScan submits the URL upstream and polls until the analysis completes or
// the attempt budget is exhausted.
func (s *scanService) RunScan(ctx context.Context, recordID uuid.UUID, rawURL string) (*usecase.ScanOutcome, error) {
	if err := validateScanURL(rawURL); err != nil {
		return nil, err
	}

	scanID, err := s.scanner.Submit(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Scan submitted",
		slog.String("record_id", recordID.String()),
		slog.String("scan_id", scanID),
	)

	analysis, err := s.pollAnalysis(ctx, scanID)
	if err != nil {
		return nil, err
	}

	if !analysis.Completed() {
		// Exhausted the budget; the record keeps its stored status and the
		// client is told the scan is still processing.
		s.logger.Info("Scan did not complete within polling budget",
			slog.String("record_id", recordID.String()),
			slog.String("scan_id", scanID),
			slog.Int("attempts", s.pollAttempts),
		)

		return &usecase.ScanOutcome{Completed: false, Status: entity.StatusPending}, nil
	}

	status := entity.StatusSecure
	if analysis.MaliciousCount > 0 {
		status = entity.StatusInsecure
	}

	if err := s.scanRepo.UpdateStatus(ctx, recordID, status); err != nil {
		if errors.Is(err, repository.ErrScanRecordNotFound) {
			return nil, domainerrors.ErrScanRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to persist scan status")
	}

	return &usecase.ScanOutcome{
		Completed: true,
		Status:    status,
		Analysis:  analysis.Raw,
	}, nil
}

// pollAnalysis fetches the analysis up to pollAttempts times, waiting
// pollInterval between attempts. The wait parks on a timer and honors
// context cancellation, so an aborted request releases its slot.
func (s *scanService) pollAnalysis(ctx context.Context, scanID string) (*service.Analysis, error) {
	var analysis *service.Analysis

	for attempt := 0; attempt < s.pollAttempts; attempt++ {
		var err error

		analysis, err = s.scanner.FetchAnalysis(ctx, scanID)
		if err != nil {
			return nil, err
		}

		if analysis.Completed() || attempt == s.pollAttempts-1 {
			break
		}

		timer := time.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}
	}

	return analysis, nil
}

// MarkVisited flags the record's URL as opened by the user.
func (s *scanService) MarkVisited(ctx context.Context, recordID uuid.UUID) error {
	if err := s.scanRepo.MarkVisited(ctx, recordID); err != nil {
		if errors.Is(err, repository.ErrScanRecordNotFound) {
			return domainerrors.ErrScanRecordNotFound
		}

		return errors.Wrap(err, "failed to mark record visited")
	}

	return nil
}

// Delete soft-deletes the record, hiding it from history.
func (s *scanService) Delete(ctx context.Context, recordID uuid.UUID) error {
	if err := s.scanRepo.MarkDeleted(ctx, recordID); err != nil {
		if errors.Is(err, repository.ErrScanRecordNotFound) {
			return domainerrors.ErrScanRecordNotFound
		}

		return errors.Wrap(err, "failed to mark record deleted")
	}

	return nil
}

// History returns the device's non-deleted records, newest first.
func (s *scanService) History(ctx context.Context, deviceID string) ([]*entity.ScanRecord, error) {
	records, err := s.scanRepo.ListHistory(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scan history")
	}

	return records, nil
}

// validateScanURL checks that the string is a syntactically valid absolute
// http(s) URL before anything is sent upstream.
func validateScanURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return domainerrors.ErrInvalidURL.WithDetails(err.Error())
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domainerrors.ErrInvalidURL
	}

	return nil
}
