package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"inventory-transfers/internal/config"
	"inventory-transfers/internal/domain"
	"inventory-transfers/internal/usecase"
)

var testHeader = []string{"SUCURSAL", "CODIGO", "DESCRIPCION", "EXISTENCIA", "MAXIMO", "COSTO", "PESO", "CUADRO BASICO"}

// testSnapshot yields two shortages (Norte/X001, Centro/X002), two surpluses
// (Sur/X001, Oeste/X002) and one suggestion per shortage.
func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Source: "/data/inventario.csv",
		Header: testHeader,
		Rows: [][]string{
			{"Norte", "X001", "Tornillo", "2", "10", "5", "0.5", "S"},
			{"Centro", "X002", "Tuerca", "1", "4", "3", "1", "P"},
			{"Sur", "X001", "Tornillo", "6", "10", "4", "0.5", "O"},
			{"Oeste", "X002", "Tuerca", "5", "0", "3", "1", ""},
			{"Este", "X003", "Arandela", "9", "9", "1", "0.1", "N"},
		},
	}
}

func testClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

// newTestUseCase wires a use case without a repository; the shell only
// renders and exports.
func newTestUseCase(exporter usecase.ReportExporter) *usecase.TransferUseCase {
	return usecase.NewTransferUseCase(nil, exporter,
		usecase.WithClock(testClock),
		usecase.WithIDGenerator(func() string { return "run-1" }),
	)
}

// newTestApp creates an App over testSnapshot, sized 120x40 and ready.
func newTestApp(t *testing.T, exporter usecase.ReportExporter, cfg *config.Config) *App {
	t.Helper()

	uc := newTestUseCase(exporter)
	snapshot := testSnapshot()
	report, err := uc.Analyze(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("analyzing test snapshot: %v", err)
	}

	app := New(uc, cfg, snapshot, report, nil)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}
