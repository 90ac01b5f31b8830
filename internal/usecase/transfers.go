package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"inventory-transfers/internal/domain"
)

// TransferUseCase orchestrates loading a snapshot, computing the transfer
// report and exporting it.
type TransferUseCase struct {
	repo     SnapshotRepository
	exporter ReportExporter
	logger   *logrus.Logger
	columns  domain.Columns
	names    domain.ExportNames
	now      func() time.Time
	newID    func() string
}

// Option customizes a TransferUseCase.
type Option func(*TransferUseCase)

// WithColumns overrides the required header names.
func WithColumns(cols domain.Columns) Option {
	return func(uc *TransferUseCase) { uc.columns = cols }
}

// WithExportNames overrides the export file names.
func WithExportNames(names domain.ExportNames) Option {
	return func(uc *TransferUseCase) { uc.names = names }
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(uc *TransferUseCase) { uc.logger = logger }
}

// WithClock sets the time source used to stamp suggestions.
func WithClock(now func() time.Time) Option {
	return func(uc *TransferUseCase) { uc.now = now }
}

// WithIDGenerator sets the run identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(uc *TransferUseCase) { uc.newID = newID }
}

// NewTransferUseCase creates a new instance of the usecase.
func NewTransferUseCase(repo SnapshotRepository, exporter ReportExporter, opts ...Option) *TransferUseCase {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	uc := &TransferUseCase{
		repo:     repo,
		exporter: exporter,
		logger:   discard,
		columns:  domain.DefaultColumns(),
		names:    domain.DefaultExportNames(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Load reads the snapshot at path without validating it, so callers can
// preview the raw rows even when analysis later fails.
func (uc *TransferUseCase) Load(ctx context.Context, path string) (*domain.Snapshot, error) {
	snapshot, err := uc.repo.GetSnapshot(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not load snapshot: %w", err)
	}
	return snapshot, nil
}

// Analyze computes the transfer report for snapshot.
func (uc *TransferUseCase) Analyze(ctx context.Context, snapshot *domain.Snapshot) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := ComputeReport(*snapshot, uc.columns, uc.now().Truncate(time.Second))
	if err != nil {
		var schemaErr *domain.SchemaError
		if errors.As(err, &schemaErr) {
			uc.logger.WithFields(logrus.Fields{
				"source":  snapshot.Source,
				"missing": schemaErr.Missing,
			}).Warn("snapshot rejected")
		}
		return nil, fmt.Errorf("could not analyze %s: %w", snapshot.Source, err)
	}
	report.RunID = uc.newID()

	uc.logger.WithFields(logrus.Fields{
		"run_id":        report.RunID,
		"unlisted_flag": report.Dropped.UnlistedFlag,
		"blank":         report.Dropped.Blank,
	}).Debug("rows dropped before analysis")
	uc.logger.WithFields(logrus.Fields{
		"run_id":      report.RunID,
		"source":      report.Source,
		"shortages":   len(report.Shortages),
		"surpluses":   len(report.Surpluses),
		"suggestions": len(report.Suggestions),
	}).Info("transfer report computed")

	return report, nil
}

// Run loads and analyzes the snapshot at path.
func (uc *TransferUseCase) Run(ctx context.Context, path string) (*domain.Snapshot, *domain.Report, error) {
	snapshot, err := uc.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	report, err := uc.Analyze(ctx, snapshot)
	if err != nil {
		return snapshot, nil, err
	}
	return snapshot, report, nil
}

// Tables renders the display/export tables for report under filter f.
func (uc *TransferUseCase) Tables(report *domain.Report, f domain.SuggestionFilter) []domain.Table {
	return ReportTables(report, f, uc.names)
}

// Export writes the filtered suggestions, all shortages and all surpluses into dir.
func (uc *TransferUseCase) Export(ctx context.Context, report *domain.Report, f domain.SuggestionFilter, dir string) ([]string, error) {
	if uc.exporter == nil {
		return nil, errors.New("no exporter configured")
	}

	paths, err := uc.exporter.Export(ctx, dir, uc.Tables(report, f))
	if err != nil {
		return nil, fmt.Errorf("could not export report %s: %w", report.RunID, err)
	}

	uc.logger.WithFields(logrus.Fields{
		"run_id": report.RunID,
		"dir":    dir,
		"files":  len(paths),
	}).Info("report exported")

	return paths, nil
}
