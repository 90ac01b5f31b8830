// Package config provides configuration management for the transfer planner.
// Configurations are loaded from TOML files; every field has a default.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"inventory-transfers/internal/domain"
)

// Config holds the complete application configuration.
type Config struct {
	Columns ColumnsConfig `toml:"columns"`
	Input   InputConfig   `toml:"input"`
	Export  ExportConfig  `toml:"export"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// ColumnsConfig names the snapshot headers for each required field.
type ColumnsConfig struct {
	Branch      string `toml:"branch"`
	ItemCode    string `toml:"item_code"`
	OnHand      string `toml:"on_hand"`
	MaxLevel    string `toml:"max_level"`
	UnitCost    string `toml:"unit_cost"`
	UnitWeight  string `toml:"unit_weight"`
	BoardFlag   string `toml:"board_flag"`
	Description string `toml:"description"`
}

// InputConfig controls snapshot parsing.
type InputConfig struct {
	Delimiter   string `toml:"delimiter"`
	Sheet       string `toml:"sheet"`
	PreviewRows int    `toml:"preview_rows"`
}

// ExportConfig controls exported files.
type ExportConfig struct {
	Format          ExportFormat `toml:"format"`
	Dir             string       `toml:"dir"`
	SuggestionsName string       `toml:"suggestions_name"`
	ShortagesName   string       `toml:"shortages_name"`
	SurplusesName   string       `toml:"surpluses_name"`
}

// ExportFormat is the file type of exports.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// DisplayConfig controls selector labels in the interactive shell.
type DisplayConfig struct {
	AllBranchesLabel string `toml:"all_branches_label"`
	AllItemsLabel    string `toml:"all_items_label"`
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Columns.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("columns: %w", err))
	}

	if err := c.Input.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("input: %w", err))
	}

	if err := c.Export.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("export: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks that every column has a distinct, non-empty name.
func (c *ColumnsConfig) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for _, name := range c.Domain().Required() {
		if name == "" {
			errs = append(errs, errors.New("column names must not be empty"))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("duplicate column name: %s", name))
		}
		seen[name] = true
	}

	return errors.Join(errs...)
}

// Domain converts the section to the names the classifier works with.
func (c *ColumnsConfig) Domain() domain.Columns {
	return domain.Columns{
		Branch:      c.Branch,
		ItemCode:    c.ItemCode,
		OnHand:      c.OnHand,
		MaxLevel:    c.MaxLevel,
		UnitCost:    c.UnitCost,
		UnitWeight:  c.UnitWeight,
		BoardFlag:   c.BoardFlag,
		Description: c.Description,
	}
}

// Validate checks that the input configuration is valid.
func (i *InputConfig) Validate() error {
	var errs []error

	if utf8.RuneCountInString(i.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q", i.Delimiter))
	} else if r := i.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errs = append(errs, fmt.Errorf("invalid delimiter: %q", i.Delimiter))
	}

	if i.PreviewRows < 0 {
		errs = append(errs, errors.New("preview_rows must be non-negative"))
	}

	return errors.Join(errs...)
}

// DelimiterRune returns the first rune of Delimiter.
func (i *InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(i.Delimiter)
	return r
}

// Validate checks that the export configuration is valid.
func (e *ExportConfig) Validate() error {
	var errs []error

	if e.Format != ExportFormatCSV && e.Format != ExportFormatXLSX {
		errs = append(errs, fmt.Errorf("invalid format: %s", e.Format))
	}

	if e.SuggestionsName == "" || e.ShortagesName == "" || e.SurplusesName == "" {
		errs = append(errs, errors.New("export file names must not be empty"))
	}

	return errors.Join(errs...)
}

// Names returns the export base names.
func (e *ExportConfig) Names() domain.ExportNames {
	return domain.ExportNames{
		Suggestions: e.SuggestionsName,
		Shortages:   e.ShortagesName,
		Surpluses:   e.SurplusesName,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.AllBranchesLabel == "" || d.AllItemsLabel == "" {
		return errors.New("all-selector labels must not be empty")
	}
	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	var errs []error

	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		errs = append(errs, fmt.Errorf("invalid log level: %s", l.Level))
	}

	if l.Format != LogFormatText && l.Format != LogFormatJSON && l.Format != "" {
		errs = append(errs, fmt.Errorf("invalid log format: %s", l.Format))
	}

	return errors.Join(errs...)
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	cols := domain.DefaultColumns()
	names := domain.DefaultExportNames()

	return &Config{
		Columns: ColumnsConfig{
			Branch:      cols.Branch,
			ItemCode:    cols.ItemCode,
			OnHand:      cols.OnHand,
			MaxLevel:    cols.MaxLevel,
			UnitCost:    cols.UnitCost,
			UnitWeight:  cols.UnitWeight,
			BoardFlag:   cols.BoardFlag,
			Description: cols.Description,
		},
		Input: InputConfig{
			Delimiter:   ",",
			Sheet:       "",
			PreviewRows: 5,
		},
		Export: ExportConfig{
			Format:          ExportFormatCSV,
			Dir:             "",
			SuggestionsName: names.Suggestions,
			ShortagesName:   names.Shortages,
			SurplusesName:   names.Surpluses,
		},
		Display: DisplayConfig{
			AllBranchesLabel: "Todas",
			AllItemsLabel:    "Todos",
		},
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}
