package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout formats the generation time of suggestions.
const TimestampLayout = time.DateTime

// Table is a rendered, column-ordered view of report data. The same Table
// feeds both on-screen display and file export so headers never drift apart.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

var (
	ShortageHeader = []string{"Branch", "Item Code", "Description", "Shortage Qty", "Unit Cost", "Unit Weight"}
	SurplusHeader  = []string{"Branch", "Item Code", "Description", "Surplus Qty", "Unit Cost"}
)

var SuggestionHeader = []string{
	"Item Code",
	"Description",
	"Recipient Branch",
	"Donor Branch",
	"Suggested Qty",
	"Total Shortage",
	"Remaining Shortage",
	"Coverage Status",
	"Donor Unit Cost",
	"Recipient Unit Cost",
	"Total Weight (kg)",
	"Generated At",
}

// ShortageTable renders shortage records.
func ShortageTable(name string, records []ShortageRecord) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Branch,
			r.ItemCode,
			r.Description,
			r.ShortageQty.String(),
			nullString(r.UnitCost),
			nullString(r.UnitWeight),
		}
	}
	return Table{Name: name, Header: ShortageHeader, Rows: rows}
}

// SurplusTable renders surplus records.
func SurplusTable(name string, records []SurplusRecord) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Branch,
			r.ItemCode,
			r.Description,
			r.SurplusQty.String(),
			nullString(r.UnitCost),
		}
	}
	return Table{Name: name, Header: SurplusHeader, Rows: rows}
}

// SuggestionTable renders suggestions, formatting GeneratedAt with TimestampLayout.
func SuggestionTable(name string, suggestions []TransferSuggestion) Table {
	rows := make([][]string, len(suggestions))
	for i, s := range suggestions {
		rows[i] = []string{
			s.ItemCode,
			s.Description,
			s.RecipientBranch,
			s.DonorBranch,
			s.SuggestedQty.String(),
			s.TotalShortageAtRecipient.String(),
			s.RemainingShortageAfterThis.String(),
			string(s.CoverageStatus),
			s.DonorUnitCost.String(),
			s.RecipientUnitCost.String(),
			nullString(s.TotalWeight),
			s.GeneratedAt.Format(TimestampLayout),
		}
	}
	return Table{Name: name, Header: SuggestionHeader, Rows: rows}
}

// nullString renders a blank quantity as an empty cell.
func nullString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
