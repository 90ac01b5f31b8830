package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"inventory-transfers/internal/domain"
)

// Classification is the retained, decoded part of a snapshot.
type Classification struct {
	Records []domain.InventoryRecord
	Dropped domain.DroppedRows
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	// Blank cells validate as nil and are skipped by omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.NullDecimal); ok && d.Valid {
			f, _ := d.Decimal.Float64()
			return f
		}
		return nil
	}, decimal.NullDecimal{})
	return v
}

// ValidateColumns checks that header carries every required column.
// The returned *domain.SchemaError lists the missing names in required order.
func ValidateColumns(header []string, cols domain.Columns) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, name := range cols.Required() {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &domain.SchemaError{Missing: missing}
	}
	return nil
}

// Classify validates the snapshot header and keeps only rows whose board flag
// is S, P, O or absent. Other rows are counted as dropped, never decoded.
func Classify(snapshot domain.Snapshot, cols domain.Columns) (Classification, error) {
	if err := ValidateColumns(snapshot.Header, cols); err != nil {
		return Classification{}, err
	}

	index := snapshot.ColumnIndex()
	result := Classification{Records: make([]domain.InventoryRecord, 0, len(snapshot.Rows))}

	for i, row := range snapshot.Rows {
		if isBlank(row) {
			result.Dropped.Blank++
			continue
		}

		flag := domain.BoardFlag(cell(row, index[cols.BoardFlag]))
		if !flag.Retained() {
			result.Dropped.UnlistedFlag++
			continue
		}

		// Data rows start below the header, on spreadsheet row 2.
		record, err := decodeRecord(row, index, cols, i+2)
		if err != nil {
			var perr *domain.ParseError
			if errors.As(err, &perr) {
				perr.Source = snapshot.Source
			}
			return Classification{}, err
		}
		record.BoardFlag = flag
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func decodeRecord(row []string, index map[string]int, cols domain.Columns, rowNo int) (domain.InventoryRecord, error) {
	record := domain.InventoryRecord{
		Row:         rowNo,
		Branch:      cell(row, index[cols.Branch]),
		ItemCode:    cell(row, index[cols.ItemCode]),
		Description: cell(row, index[cols.Description]),
	}

	numeric := []struct {
		column string
		dst    *decimal.NullDecimal
	}{
		{cols.OnHand, &record.OnHand},
		{cols.MaxLevel, &record.MaxLevel},
		{cols.UnitCost, &record.UnitCost},
		{cols.UnitWeight, &record.UnitWeight},
	}
	for _, n := range numeric {
		raw := cell(row, index[n.column])
		value, err := parseQuantity(raw)
		if err != nil {
			return domain.InventoryRecord{}, &domain.ParseError{Row: rowNo, Column: n.column, Value: raw, Err: err}
		}
		*n.dst = value
	}

	if err := recordValidator.Struct(record); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			column := fieldColumn(verrs[0].StructField(), cols)
			return domain.InventoryRecord{}, &domain.ParseError{
				Row:    rowNo,
				Column: column,
				Value:  cell(row, index[column]),
				Err:    fmt.Errorf("failed %q validation", verrs[0].Tag()),
			}
		}
		return domain.InventoryRecord{}, fmt.Errorf("validating row %d: %w", rowNo, err)
	}

	return record, nil
}

// parseQuantity decodes a numeric cell. An empty cell yields an invalid
// NullDecimal, never zero.
func parseQuantity(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func fieldColumn(field string, cols domain.Columns) string {
	switch field {
	case "Branch":
		return cols.Branch
	case "ItemCode":
		return cols.ItemCode
	case "OnHand":
		return cols.OnHand
	case "MaxLevel":
		return cols.MaxLevel
	case "UnitCost":
		return cols.UnitCost
	case "UnitWeight":
		return cols.UnitWeight
	}
	return field
}

// cell tolerates short rows; spreadsheet readers trim trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
