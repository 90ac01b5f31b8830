package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"inventory-transfers/internal/domain"
)

const utf8BOM = "\ufeff"

// ReaderOptions tunes how snapshot files are parsed.
type ReaderOptions struct {
	// Delimiter separates CSV fields. Zero means comma.
	Delimiter rune
	// Sheet is the XLSX worksheet to read. Empty means the first sheet.
	Sheet string
}

// FileSnapshotRepository implements the SnapshotRepository interface for CSV and XLSX files.
type FileSnapshotRepository struct {
	opts ReaderOptions
}

// NewFileSnapshotRepository creates a new repository instance.
func NewFileSnapshotRepository(opts ReaderOptions) *FileSnapshotRepository {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &FileSnapshotRepository{opts: opts}
}

// GetSnapshot reads the snapshot at path. The format follows the file extension.
func (r *FileSnapshotRepository) GetSnapshot(ctx context.Context, path string) (*domain.Snapshot, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	defer file.Close()

	var snapshot *domain.Snapshot
	if ext == ".csv" {
		snapshot, err = r.ReadCSV(ctx, file)
	} else {
		snapshot, err = r.ReadXLSX(ctx, file)
	}
	if err != nil {
		var perr *domain.ParseError
		if errors.As(err, &perr) {
			perr.Source = path
		}
		return nil, err
	}

	snapshot.Source = path
	return snapshot, nil
}

// ReadCSV parses delimited text. The first record is the header.
func (r *FileSnapshotRepository) ReadCSV(ctx context.Context, in io.Reader) (*domain.Snapshot, error) {
	reader := csv.NewReader(in)
	reader.Comma = r.opts.Delimiter
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &domain.ParseError{Err: errors.New("file is empty, header expected")}
	}
	if err != nil {
		return nil, csvParseError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	snapshot := &domain.Snapshot{Header: header, Rows: make([][]string, 0)}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}
		snapshot.Rows = append(snapshot.Rows, record)
	}
	return snapshot, nil
}

// ReadXLSX parses a workbook. The first row of the sheet is the header.
// Cells are read raw so number formats never leak into quantities.
func (r *FileSnapshotRepository) ReadXLSX(ctx context.Context, in io.Reader) (*domain.Snapshot, error) {
	f, err := excelize.OpenReader(in)
	if err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	defer f.Close()

	sheet := r.opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("unable to read sheet %q: %w", sheet, err)}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &domain.ParseError{Err: fmt.Errorf("sheet %q is empty, header expected", sheet)}
	}

	return &domain.Snapshot{Header: rows[0], Rows: rows[1:]}, nil
}

func csvParseError(err error) error {
	var cerr *csv.ParseError
	if errors.As(err, &cerr) {
		return &domain.ParseError{Row: cerr.Line, Err: cerr.Err}
	}
	return &domain.ParseError{Err: err}
}
