package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"inventory-transfers/internal/domain"
)

// ExportFormat selects the file type written by FileReportExporter.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

const exportSheet = "Sheet1"

// FileReportExporter implements the ReportExporter interface, one file per table.
type FileReportExporter struct {
	format ExportFormat
}

// NewFileReportExporter creates an exporter. Unknown formats fall back to CSV.
func NewFileReportExporter(format ExportFormat) *FileReportExporter {
	if format != ExportXLSX {
		format = ExportCSV
	}
	return &FileReportExporter{format: format}
}

// Export writes every table as <dir>/<table name>.<format>, creating dir if needed.
func (e *FileReportExporter) Export(ctx context.Context, dir string, tables []domain.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(tables))
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, table.Name+"."+string(e.format))
		var err error
		if e.format == ExportXLSX {
			err = writeXLSXFile(path, table)
		} else {
			err = writeCSVFile(path, table)
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteCSV writes table with its header as the first record.
func WriteCSV(w io.Writer, table domain.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", table.Name, err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write rows of %s: %w", table.Name, err)
	}
	return nil
}

func writeCSVFile(path string, table domain.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, table); err != nil {
		return err
	}
	return file.Close()
}

func writeXLSXFile(path string, table domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setXLSXRow(f, 1, table.Header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", table.Name, err)
	}
	for i, row := range table.Rows {
		if err := setXLSXRow(f, i+2, row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, table.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// setXLSXRow writes cells as text; branch and item codes may carry leading zeros.
func setXLSXRow(f *excelize.File, rowNo int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(exportSheet, cell, &cells)
}
