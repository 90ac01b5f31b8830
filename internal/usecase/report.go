package usecase

import (
	"time"

	"inventory-transfers/internal/domain"
)

// ComputeReport runs the whole pipeline over one snapshot: classify, extract,
// match. It holds no state and performs no I/O; now stamps every suggestion.
// A *domain.SchemaError or *domain.ParseError aborts before any matching.
func ComputeReport(snapshot domain.Snapshot, cols domain.Columns, now time.Time) (*domain.Report, error) {
	classified, err := Classify(snapshot, cols)
	if err != nil {
		return nil, err
	}

	shortages, surpluses := Extract(classified.Records)

	return &domain.Report{
		Source:      snapshot.Source,
		GeneratedAt: now,
		Retained:    len(classified.Records),
		Dropped:     classified.Dropped,
		Shortages:   shortages,
		Surpluses:   surpluses,
		Suggestions: Match(shortages, surpluses, now),
	}, nil
}

// ReportTables renders the filtered suggestions plus the full shortage and
// surplus lists, in export order.
func ReportTables(report *domain.Report, f domain.SuggestionFilter, names domain.ExportNames) []domain.Table {
	filtered := NewSuggestionAggregator(report).Filter(f)
	return []domain.Table{
		domain.SuggestionTable(names.Suggestions, filtered),
		domain.ShortageTable(names.Shortages, report.Shortages),
		domain.SurplusTable(names.Surpluses, report.Surpluses),
	}
}
