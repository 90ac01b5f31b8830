package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"inventory-transfers/internal/domain"
	"inventory-transfers/internal/tui/components"
	"inventory-transfers/internal/usecase"
)

const maxColumnWidth = 40

// reportOutput is the JSON document printed on stdout.
type reportOutput struct {
	RunID       string                  `json:"run_id"`
	Source      string                  `json:"source"`
	GeneratedAt string                  `json:"generated_at"`
	Filter      domain.SuggestionFilter `json:"filter"`
	Summary     domain.SummaryCounts    `json:"summary"`
	Dropped     domain.DroppedRows      `json:"dropped"`
	Suggestions []suggestionOutput      `json:"suggestions"`
	Shortages   []domain.ShortageRecord `json:"shortages"`
	Surpluses   []domain.SurplusRecord  `json:"surpluses"`
}

// suggestionOutput shadows GeneratedAt so every timestamp in the document
// uses domain.TimestampLayout.
type suggestionOutput struct {
	domain.TransferSuggestion
	GeneratedAt string `json:"generated_at"`
}

func marshalOutput(report *domain.Report, aggregator *usecase.SuggestionAggregator, filter domain.SuggestionFilter) ([]byte, error) {
	filtered := aggregator.Filter(filter)
	suggestions := make([]suggestionOutput, len(filtered))
	for i, s := range filtered {
		suggestions[i] = suggestionOutput{
			TransferSuggestion: s,
			GeneratedAt:        s.GeneratedAt.Format(domain.TimestampLayout),
		}
	}

	return json.MarshalIndent(reportOutput{
		RunID:       report.RunID,
		Source:      report.Source,
		GeneratedAt: report.GeneratedAt.Format(domain.TimestampLayout),
		Filter:      filter,
		Summary:     aggregator.SummaryCounts(filter),
		Dropped:     report.Dropped,
		Suggestions: suggestions,
		Shortages:   report.Shortages,
		Surpluses:   report.Surpluses,
	}, "", "  ")
}

// selection maps the "all" label of a selector to an empty filter value.
func selection(value, allLabel string) string {
	if value == allLabel {
		return ""
	}
	return value
}

func warnUnknownSelection(logger logrus.FieldLogger, field, value string, options []string) {
	if value == "" || slices.Contains(options, value) {
		return
	}
	logger.WithFields(logrus.Fields{
		"field":   field,
		"value":   value,
		"options": options,
	}).Warn("selection matches no suggestion")
}

func renderPreview(snapshot *domain.Snapshot, n int) string {
	return fmt.Sprintf("Preview of %s (first %d rows)\n", snapshot.Source, n) +
		renderTable(domain.Table{Header: snapshot.Header, Rows: snapshot.Preview(n)}) + "\n"
}

func renderTables(tables []domain.Table, counts domain.SummaryCounts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shortages: %d   Surpluses: %d   Suggestions: %d\n\n",
		counts.Shortages, counts.Surpluses, counts.Suggestions)

	for _, table := range tables {
		b.WriteString(table.Name)
		b.WriteString("\n")
		b.WriteString(renderTable(table))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTable lays out every row of table without styling or scrolling.
func renderTable(table domain.Table) string {
	plain := lipgloss.NewStyle()
	t := components.NewTable(components.ColumnsFor(table.Header, table.Rows, maxColumnWidth, nil))
	t.SetStyles(plain, plain, plain, plain, plain)
	t.SetRows(table.Rows)
	t.SetVisibleRows(len(table.Rows))
	return t.Render()
}
