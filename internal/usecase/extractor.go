package usecase

import (
	"github.com/shopspring/decimal"

	"inventory-transfers/internal/domain"
)

// ShortageQty is max(0, maxLevel - onHand) for constrained flags and zero
// otherwise. A blank on-hand or maximum yields zero.
func ShortageQty(r domain.InventoryRecord) decimal.Decimal {
	if !r.BoardFlag.Constrained() || !r.OnHand.Valid || !r.MaxLevel.Valid {
		return decimal.Zero
	}
	return clip(r.MaxLevel.Decimal.Sub(r.OnHand.Decimal))
}

// SurplusQty is max(0, onHand - maxLevel) for constrained flags. Unconstrained
// rows (O or absent) offer their entire on-hand quantity. A blank on-hand, or a
// blank maximum on a constrained row, yields zero.
func SurplusQty(r domain.InventoryRecord) decimal.Decimal {
	if !r.OnHand.Valid {
		return decimal.Zero
	}
	if !r.BoardFlag.Constrained() {
		return clip(r.OnHand.Decimal)
	}
	if !r.MaxLevel.Valid {
		return decimal.Zero
	}
	return clip(r.OnHand.Decimal.Sub(r.MaxLevel.Decimal))
}

// Extract splits retained records into positive shortages and positive
// surpluses. Both outputs keep input order.
func Extract(records []domain.InventoryRecord) ([]domain.ShortageRecord, []domain.SurplusRecord) {
	shortages := make([]domain.ShortageRecord, 0)
	surpluses := make([]domain.SurplusRecord, 0)

	for _, r := range records {
		if qty := ShortageQty(r); qty.IsPositive() {
			shortages = append(shortages, domain.ShortageRecord{InventoryRecord: r, ShortageQty: qty})
		}
		if qty := SurplusQty(r); qty.IsPositive() {
			surpluses = append(surpluses, domain.SurplusRecord{InventoryRecord: r, SurplusQty: qty})
		}
	}

	return shortages, surpluses
}

func clip(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
