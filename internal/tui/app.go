package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inventory-transfers/internal/config"
	"inventory-transfers/internal/domain"
	"inventory-transfers/internal/tui/components"
	"inventory-transfers/internal/usecase"
)

// MaxColumnWidth caps the width of a single table column.
const MaxColumnWidth = 28

// chromeHeight is the number of lines around the table body.
const chromeHeight = 12

// View identifies one tab of the shell.
type View int

const (
	ViewPreview View = iota
	ViewSuggestions
	ViewShortages
	ViewSurpluses
)

var viewTitles = []string{"Preview", "Suggestions", "Shortages", "Surpluses"}

func (v View) String() string {
	return viewTitles[v]
}

// numericTitles are right aligned in every table.
var numericTitles = map[string]bool{
	"Shortage Qty":        true,
	"Surplus Qty":         true,
	"Unit Cost":           true,
	"Unit Weight":         true,
	"Suggested Qty":       true,
	"Total Shortage":      true,
	"Remaining Shortage":  true,
	"Donor Unit Cost":     true,
	"Recipient Unit Cost": true,
	"Total Weight (kg)":   true,
}

// ReportService renders and exports reports.
type ReportService interface {
	Tables(report *domain.Report, f domain.SuggestionFilter) []domain.Table
	Export(ctx context.Context, report *domain.Report, f domain.SuggestionFilter, dir string) ([]string, error)
}

// App is the Bubble Tea model of the interactive shell.
type App struct {
	// Dependencies
	svc    ReportService
	config *config.Config

	// Data
	snapshot   *domain.Snapshot
	report     *domain.Report
	analyzeErr error
	aggregator *usecase.SuggestionAggregator
	counts     domain.SummaryCounts

	// Components
	tables         [4]*components.Table
	branchSelector *components.Selector
	itemSelector   *components.Selector

	// UI state
	theme    *Theme
	keys     KeyMap
	width    int
	height   int
	ready    bool
	quitting bool
	current  View
	status   string
	statusOK bool
}

// exportedMsg is sent when an export finishes.
type exportedMsg struct {
	paths []string
	err   error
}

// New creates the shell. report may be nil when analysis failed; the preview
// is still shown and analyzeErr is reported in place of the other views.
func New(svc ReportService, cfg *config.Config, snapshot *domain.Snapshot, report *domain.Report, analyzeErr error) *App {
	a := &App{
		svc:        svc,
		config:     cfg,
		snapshot:   snapshot,
		report:     report,
		analyzeErr: analyzeErr,
		theme:      NewTheme(),
		keys:       DefaultKeyMap(),
		current:    ViewSuggestions,
	}

	var branches, items []string
	if report != nil {
		a.aggregator = usecase.NewSuggestionAggregator(report)
		branches = a.aggregator.BranchesWithShortage()
		items = a.aggregator.ItemCodes()
	} else {
		a.current = ViewPreview
	}
	a.branchSelector = components.NewSelector("Branch", cfg.Display.AllBranchesLabel, branches)
	a.itemSelector = components.NewSelector("Item", cfg.Display.AllItemsLabel, items)
	a.branchSelector.SetStyles(a.theme.Label, a.theme.Value)
	a.itemSelector.SetStyles(a.theme.Label, a.theme.Value)

	var header []string
	var preview [][]string
	if snapshot != nil {
		header = snapshot.Header
		preview = snapshot.Preview(cfg.Input.PreviewRows)
	}
	a.tables[ViewPreview] = a.newTable(domain.Table{Header: header, Rows: preview})
	a.refresh()

	return a
}

// Filter returns the filter built from the selectors.
func (a *App) Filter() domain.SuggestionFilter {
	return domain.SuggestionFilter{
		Branch:   a.branchSelector.Value(),
		ItemCode: a.itemSelector.Value(),
	}
}

// refresh rebuilds the report tables and counts for the current filter.
func (a *App) refresh() {
	if a.report == nil {
		return
	}

	filter := a.Filter()
	tables := a.svc.Tables(a.report, filter)
	a.tables[ViewSuggestions] = a.newTable(tables[0])
	a.tables[ViewShortages] = a.newTable(tables[1])
	a.tables[ViewSurpluses] = a.newTable(tables[2])
	a.counts = a.aggregator.SummaryCounts(filter)
	a.resize()
}

func (a *App) newTable(t domain.Table) *components.Table {
	table := components.NewTable(components.ColumnsFor(t.Header, t.Rows, MaxColumnWidth, numericTitles))
	table.SetStyles(a.theme.TableHeader, a.theme.TableRow, a.theme.TableRowAlt, a.theme.Selected, a.theme.Border)
	table.SetRows(t.Rows)
	return table
}

func (a *App) resize() {
	if !a.ready {
		return
	}
	for _, table := range a.tables {
		if table != nil {
			table.SetVisibleRows(a.height - chromeHeight)
		}
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()
		return a, nil

	case exportedMsg:
		if msg.err != nil {
			a.setStatus("Export failed: "+msg.err.Error(), false)
		} else {
			a.setStatus(fmt.Sprintf("Exported %d files: %s", len(msg.paths), strings.Join(baseNames(msg.paths), ", ")), true)
		}
		return a, nil
	}

	return a, nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.keys.Quit.Matches(msg) {
		a.quitting = true
		return a, tea.Quit
	}

	switch {
	case a.keys.NextTab.Matches(msg):
		a.current = (a.current + 1) % View(len(viewTitles))
		return a, nil
	case a.keys.PrevTab.Matches(msg):
		a.current = (a.current + View(len(viewTitles)) - 1) % View(len(viewTitles))
		return a, nil
	}

	if a.keys.IsNavigation(msg) {
		a.navigate(msg)
		return a, nil
	}

	if a.report == nil {
		return a, nil
	}

	if a.keys.IsSelector(msg) {
		switch {
		case a.keys.NextBranch.Matches(msg):
			a.branchSelector.Next()
		case a.keys.PrevBranch.Matches(msg):
			a.branchSelector.Prev()
		case a.keys.NextItem.Matches(msg):
			a.itemSelector.Next()
		case a.keys.PrevItem.Matches(msg):
			a.itemSelector.Prev()
		case a.keys.Reset.Matches(msg):
			a.branchSelector.Reset()
			a.itemSelector.Reset()
		}
		a.status = ""
		a.refresh()
		return a, nil
	}

	if a.keys.Export.Matches(msg) {
		a.setStatus("Exporting...", true)
		return a, a.export()
	}

	return a, nil
}

func (a *App) navigate(msg tea.KeyMsg) {
	table := a.tables[a.current]
	if table == nil {
		return
	}
	switch {
	case a.keys.Up.Matches(msg):
		table.MoveUp()
	case a.keys.Down.Matches(msg):
		table.MoveDown()
	case a.keys.PageUp.Matches(msg):
		table.PageUp()
	case a.keys.PageDown.Matches(msg):
		table.PageDown()
	case a.keys.Home.Matches(msg):
		table.GoToTop()
	case a.keys.End.Matches(msg):
		table.GoToBottom()
	}
}

// export writes the three tables for the current filter.
func (a *App) export() tea.Cmd {
	report := a.report
	filter := a.Filter()
	dir := a.config.Export.Dir
	if dir == "" {
		dir = "."
	}

	return func() tea.Msg {
		paths, err := a.svc.Export(context.Background(), report, filter, dir)
		return exportedMsg{paths: paths, err: err}
	}
}

func (a *App) setStatus(msg string, ok bool) {
	a.status = msg
	a.statusOK = ok
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(a.renderContent())
	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

func (a *App) renderHeader() string {
	title := a.theme.Title.Render("INVENTORY TRANSFERS")

	var info string
	if a.snapshot != nil {
		info = filepath.Base(a.snapshot.Source)
	}
	if a.report != nil {
		info += " | " + a.report.GeneratedAt.Format(domain.TimestampLayout)
	}

	spacing := max(a.width-lipgloss.Width(title)-lipgloss.Width(info)-1, 1)
	return title + strings.Repeat(" ", spacing) + a.theme.Muted.Render(info) + "\n" + a.theme.DrawLine(a.width)
}

func (a *App) renderTabs() string {
	tabs := make([]string, len(viewTitles))
	for i, title := range viewTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if View(i) == a.current {
			tabs[i] = a.theme.ActiveTab.Render(label)
		} else {
			tabs[i] = a.theme.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderContent() string {
	if a.current == ViewPreview {
		return a.renderPreview()
	}

	if a.report == nil {
		reason := "no report available"
		if a.analyzeErr != nil {
			reason = a.analyzeErr.Error()
		}
		return a.theme.Error.Render("ERROR: " + reason)
	}

	var b strings.Builder
	b.WriteString(a.branchSelector.Render())
	b.WriteString("   ")
	b.WriteString(a.itemSelector.Render())
	b.WriteString("\n")
	b.WriteString(a.renderSummary())
	b.WriteString("\n")

	switch notice := a.notice(); {
	case a.status != "" && a.statusOK:
		b.WriteString(a.theme.Success.Render(a.status))
	case a.status != "":
		b.WriteString(a.theme.Error.Render(a.status))
	case notice != "":
		b.WriteString(a.theme.Info.Render(notice))
	}
	b.WriteString("\n\n")

	b.WriteString(a.tables[a.current].Render())
	return b.String()
}

func (a *App) renderPreview() string {
	var b strings.Builder
	b.WriteString(a.theme.Label.Render(fmt.Sprintf("First %d rows of the snapshot", a.config.Input.PreviewRows)))
	b.WriteString("\n")
	if a.analyzeErr != nil {
		b.WriteString(a.theme.Error.Render("ERROR: " + a.analyzeErr.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(a.tables[ViewPreview].Render())
	return b.String()
}

func (a *App) renderSummary() string {
	item := func(label string, n int) string {
		return a.theme.Label.Render(label+": ") + a.theme.Value.Render(fmt.Sprintf("%d", n))
	}
	return item("Shortages", a.counts.Shortages) + "   " +
		item("Surpluses", a.counts.Surpluses) + "   " +
		item("Suggestions", a.counts.Suggestions)
}

// notice returns the informational message for an empty current view.
func (a *App) notice() string {
	switch {
	case a.current == ViewSuggestions && a.counts.Suggestions == 0:
		return domain.NoticeNoSuggestions
	case a.current == ViewShortages && a.counts.Shortages == 0:
		return domain.NoticeNoShortages
	case a.current == ViewSurpluses && a.counts.Surpluses == 0:
		return domain.NoticeNoSurpluses
	}
	return ""
}

func (a *App) renderFooter() string {
	parts := make([]string, 0, len(a.keys.ShortHelp()))
	for _, k := range a.keys.ShortHelp() {
		parts = append(parts, a.theme.StatusKey.Render(k.Keys[0])+" "+a.theme.StatusValue.Render(k.Help))
	}
	return a.theme.DrawLine(a.width) + "\n" + strings.Join(parts, "  ")
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
