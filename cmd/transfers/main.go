package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"inventory-transfers/internal/config"
	"inventory-transfers/internal/domain"
	"inventory-transfers/internal/gateway"
	"inventory-transfers/internal/tui"
	"inventory-transfers/internal/usecase"
)

func main() {
	// Define command-line flags
	snapshotFile := flag.String("file", "", "Path to the inventory snapshot, .csv or .xlsx (required)")
	configFile := flag.String("config", "", "Path to a TOML configuration file")
	branch := flag.String("branch", "", "Show suggestions for this recipient branch only")
	item := flag.String("item", "", "Show suggestions for this item code only")
	exportDir := flag.String("export-dir", "", "Write the filtered suggestions, shortages and surpluses into this directory")
	format := flag.String("format", "json", "Output format: json or table")
	interactive := flag.Bool("interactive", false, "Browse the report in the terminal UI")
	writeConfigPath := flag.String("write-config", "", "Write the resolved configuration to this TOML file and exit")
	flag.Parse()

	// Validate required flags
	if *snapshotFile == "" && *writeConfigPath == "" {
		fmt.Fprintln(os.Stderr, "Error: the -file flag is required.")
		flag.Usage()
		os.Exit(1)
	}
	if *format != "json" && *format != "table" {
		fmt.Fprintf(os.Stderr, "Error: unknown -format %q, expected json or table.\n", *format)
		os.Exit(1)
	}

	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, cfgPath, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *exportDir != "" {
		cfg.Export.Dir = *exportDir
	}

	if *writeConfigPath != "" {
		if err := writeConfig(os.Stderr, cfg, *writeConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := config.NewLogger(cfg.Logging)
	if cfgPath != "" {
		logger.WithField("path", cfgPath).Debug("configuration loaded")
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the file collaborators (the outermost layer)
	repo := gateway.NewFileSnapshotRepository(gateway.ReaderOptions{
		Delimiter: cfg.Input.DelimiterRune(),
		Sheet:     cfg.Input.Sheet,
	})
	exporter := gateway.NewFileReportExporter(gateway.ExportFormat(cfg.Export.Format))

	// 2. Create the usecase and inject them (the core logic layer)
	transferUseCase := usecase.NewTransferUseCase(repo, exporter,
		usecase.WithColumns(cfg.Columns.Domain()),
		usecase.WithExportNames(cfg.Export.Names()),
		usecase.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Execute the Usecase ---
	snapshot, err := transferUseCase.Load(ctx, *snapshotFile)
	if err != nil {
		config.LogError(logger, "main", "main", "load snapshot", *snapshotFile, err)
		exit(stop, 1)
	}

	report, analyzeErr := transferUseCase.Analyze(ctx, snapshot)

	if *interactive {
		app := tui.New(transferUseCase, cfg, snapshot, report, analyzeErr)
		if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			config.LogError(logger, "main", "main", "terminal ui", nil, err)
			exit(stop, 1)
		}
		return
	}

	// The raw preview goes out before validation results
	fmt.Fprint(os.Stderr, renderPreview(snapshot, cfg.Input.PreviewRows))

	if analyzeErr != nil {
		var schemaErr *domain.SchemaError
		if errors.As(analyzeErr, &schemaErr) {
			fmt.Fprintf(os.Stderr, "Error: the snapshot cannot be analyzed, %v\n", schemaErr)
		} else {
			config.LogError(logger, "main", "main", "analyze snapshot", snapshot.Source, analyzeErr)
		}
		exit(stop, 1)
	}

	filter := domain.SuggestionFilter{
		Branch:   selection(*branch, cfg.Display.AllBranchesLabel),
		ItemCode: selection(*item, cfg.Display.AllItemsLabel),
	}
	aggregator := usecase.NewSuggestionAggregator(report)
	warnUnknownSelection(logger, "branch", filter.Branch, aggregator.BranchesWithShortage())
	warnUnknownSelection(logger, "item", filter.ItemCode, aggregator.ItemCodes())

	counts := aggregator.SummaryCounts(filter)
	for _, notice := range counts.Notices() {
		fmt.Fprintln(os.Stderr, notice)
	}

	// --- Present the Output ---
	if *format == "table" {
		fmt.Print(renderTables(transferUseCase.Tables(report, filter), counts))
	} else {
		output, err := marshalOutput(report, aggregator, filter)
		if err != nil {
			config.LogError(logger, "main", "main", "encode report", report.RunID, err)
			exit(stop, 1)
		}
		fmt.Println(string(output))
	}

	if cfg.Export.Dir != "" {
		paths, err := transferUseCase.Export(ctx, report, filter, cfg.Export.Dir)
		if err != nil {
			config.LogError(logger, "main", "main", "export report", cfg.Export.Dir, err)
			exit(stop, 1)
		}
		for _, p := range paths {
			fmt.Fprintf(os.Stderr, "Exported %s\n", p)
		}
	}
}

// writeConfig saves the resolved configuration as an editable starting point.
func writeConfig(w io.Writer, cfg *config.Config, path string) error {
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	fmt.Fprintf(w, "Wrote configuration to %s\n", path)
	return nil
}

// exit releases the signal handler before leaving; os.Exit skips deferred calls.
func exit(stop context.CancelFunc, code int) {
	stop()
	os.Exit(code)
}
