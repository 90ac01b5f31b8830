package domain

import "github.com/shopspring/decimal"

// BoardFlag is the basic board ("cuadro básico") classification of an item at a branch.
type BoardFlag string

const (
	BoardFlagS      BoardFlag = "S"
	BoardFlagP      BoardFlag = "P"
	BoardFlagO      BoardFlag = "O"
	BoardFlagAbsent BoardFlag = ""
)

// Constrained reports whether a maximum-level constraint applies to the flag.
// Only constrained rows can be short.
func (f BoardFlag) Constrained() bool {
	return f == BoardFlagS || f == BoardFlagP
}

// Retained reports whether rows carrying this flag take part in the analysis.
func (f BoardFlag) Retained() bool {
	return f.Constrained() || f == BoardFlagO || f == BoardFlagAbsent
}

// InventoryRecord is one decoded row of an inventory snapshot. A numeric field
// is invalid when its cell was blank; a blank quantity is unknown, not zero,
// and keeps the record out of every rule that reads it.
type InventoryRecord struct {
	Row         int                 `json:"row"` // spreadsheet row number, header is row 1
	Branch      string              `json:"branch" validate:"required"`
	ItemCode    string              `json:"item_code" validate:"required"`
	Description string              `json:"description"`
	OnHand      decimal.NullDecimal `json:"on_hand"`
	MaxLevel    decimal.NullDecimal `json:"max_level" validate:"omitempty,gte=0"`
	UnitCost    decimal.NullDecimal `json:"unit_cost" validate:"omitempty,gte=0"`
	UnitWeight  decimal.NullDecimal `json:"unit_weight" validate:"omitempty,gte=0"`
	BoardFlag   BoardFlag           `json:"board_flag"`
}

// ShortageRecord is an inventory record below its maximum level.
type ShortageRecord struct {
	InventoryRecord
	ShortageQty decimal.Decimal `json:"shortage_qty"`
}

// SurplusRecord is an inventory record with stock available for transfer.
type SurplusRecord struct {
	InventoryRecord
	SurplusQty decimal.Decimal `json:"surplus_qty"`
}
