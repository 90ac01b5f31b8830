package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoverageStatus tells whether a suggestion alone covers the recipient's shortage.
type CoverageStatus string

const (
	CoverageCovered    CoverageStatus = "Covered"
	CoverageStillShort CoverageStatus = "StillShort"
)

// TransferSuggestion proposes moving stock from a donor branch to a recipient branch.
type TransferSuggestion struct {
	ItemCode                   string              `json:"item_code"`
	Description                string              `json:"description"`
	RecipientBranch            string              `json:"recipient_branch"`
	DonorBranch                string              `json:"donor_branch"`
	SuggestedQty               decimal.Decimal     `json:"suggested_qty"`
	TotalShortageAtRecipient   decimal.Decimal     `json:"total_shortage_at_recipient"`
	RemainingShortageAfterThis decimal.Decimal     `json:"remaining_shortage_after_this"`
	CoverageStatus             CoverageStatus      `json:"coverage_status"`
	DonorUnitCost              decimal.Decimal     `json:"donor_unit_cost"`
	RecipientUnitCost          decimal.Decimal     `json:"recipient_unit_cost"`
	TotalWeight                decimal.NullDecimal `json:"total_weight"`
	GeneratedAt                time.Time           `json:"generated_at"`
}

// SuggestionFilter selects suggestions by recipient branch and item code.
// An empty field disables that predicate.
type SuggestionFilter struct {
	Branch   string `json:"branch,omitempty"`
	ItemCode string `json:"item_code,omitempty"`
}

// Matches reports whether s satisfies every enabled predicate.
func (f SuggestionFilter) Matches(s TransferSuggestion) bool {
	if f.Branch != "" && s.RecipientBranch != f.Branch {
		return false
	}
	if f.ItemCode != "" && s.ItemCode != f.ItemCode {
		return false
	}
	return true
}

// SummaryCounts holds the headline cardinalities of a report.
type SummaryCounts struct {
	Shortages   int `json:"shortages"`
	Surpluses   int `json:"surpluses"`
	Suggestions int `json:"suggestions"`
}

// Informational messages for empty result sets.
const (
	NoticeNoShortages   = "No shortages found: every constrained item is at or above its maximum."
	NoticeNoSurpluses   = "No surpluses found: no branch has stock available for transfer."
	NoticeNoSuggestions = "No transfer suggestions for the current selection."
)

// Notices returns one informational message per empty set. Empty sets are a
// valid outcome, never an error.
func (c SummaryCounts) Notices() []string {
	var notices []string
	if c.Shortages == 0 {
		notices = append(notices, NoticeNoShortages)
	}
	if c.Surpluses == 0 {
		notices = append(notices, NoticeNoSurpluses)
	}
	if c.Suggestions == 0 {
		notices = append(notices, NoticeNoSuggestions)
	}
	return notices
}

// DroppedRows counts snapshot rows excluded before any computation.
type DroppedRows struct {
	Blank        int `json:"blank"`
	UnlistedFlag int `json:"unlisted_flag"`
}

// Report is the result of one batch computation over a snapshot.
type Report struct {
	RunID       string               `json:"run_id"`
	Source      string               `json:"source"`
	GeneratedAt time.Time            `json:"generated_at"`
	Retained    int                  `json:"retained"`
	Dropped     DroppedRows          `json:"dropped"`
	Shortages   []ShortageRecord     `json:"shortages"`
	Surpluses   []SurplusRecord      `json:"surpluses"`
	Suggestions []TransferSuggestion `json:"suggestions"`
}
