package usecase

import (
	"sort"

	"inventory-transfers/internal/domain"
)

// SuggestionAggregator answers selector and summary queries over a report.
// It never mutates the report.
type SuggestionAggregator struct {
	report *domain.Report
}

// NewSuggestionAggregator wraps report.
func NewSuggestionAggregator(report *domain.Report) *SuggestionAggregator {
	return &SuggestionAggregator{report: report}
}

// BranchesWithShortage returns the distinct recipient branches of all
// suggestions, sorted ascending. The "all" sentinel is a UI concern and is
// not included.
func (a *SuggestionAggregator) BranchesWithShortage() []string {
	return distinctSorted(a.report.Suggestions, func(s domain.TransferSuggestion) string {
		return s.RecipientBranch
	})
}

// ItemCodes returns the distinct item codes of all suggestions, sorted ascending.
func (a *SuggestionAggregator) ItemCodes() []string {
	return distinctSorted(a.report.Suggestions, func(s domain.TransferSuggestion) string {
		return s.ItemCode
	})
}

// Filter returns the suggestions matching f, in report order.
func (a *SuggestionAggregator) Filter(f domain.SuggestionFilter) []domain.TransferSuggestion {
	filtered := make([]domain.TransferSuggestion, 0, len(a.report.Suggestions))
	for _, s := range a.report.Suggestions {
		if f.Matches(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SummaryCounts counts shortages, surpluses and the suggestions left after f.
func (a *SuggestionAggregator) SummaryCounts(f domain.SuggestionFilter) domain.SummaryCounts {
	counts := domain.SummaryCounts{
		Shortages: len(a.report.Shortages),
		Surpluses: len(a.report.Surpluses),
	}
	for _, s := range a.report.Suggestions {
		if f.Matches(s) {
			counts.Suggestions++
		}
	}
	return counts
}

func distinctSorted(suggestions []domain.TransferSuggestion, key func(domain.TransferSuggestion) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, s := range suggestions {
		k := key(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}
