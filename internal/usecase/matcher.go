package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"inventory-transfers/internal/domain"
)

// Match pairs every shortage with each compatible surplus: same item code,
// different branch, donor unit cost not above the recipient's. A blank unit
// cost on either side never compares, so the pair is skipped.
//
// Shortages are visited in input order and, for each one, candidates in
// surplus input order; that order is the tie-break between donors. Each
// suggestion is computed against the original shortage and surplus
// quantities. Nothing is decremented between suggestions, so one surplus may
// be offered to several shortages and RemainingShortageAfterThis is
// per-candidate rather than cumulative.
func Match(shortages []domain.ShortageRecord, surpluses []domain.SurplusRecord, generatedAt time.Time) []domain.TransferSuggestion {
	suggestions := make([]domain.TransferSuggestion, 0)
	if len(shortages) == 0 || len(surpluses) == 0 {
		return suggestions
	}

	byItem := make(map[string][]domain.SurplusRecord)
	for _, s := range surpluses {
		byItem[s.ItemCode] = append(byItem[s.ItemCode], s)
	}

	for _, short := range shortages {
		for _, candidate := range byItem[short.ItemCode] {
			if !eligibleDonor(short, candidate) {
				continue
			}
			suggestions = append(suggestions, suggest(short, candidate, generatedAt))
		}
	}

	return suggestions
}

func eligibleDonor(short domain.ShortageRecord, candidate domain.SurplusRecord) bool {
	return candidate.ItemCode == short.ItemCode &&
		candidate.Branch != short.Branch &&
		candidate.UnitCost.Valid && short.UnitCost.Valid &&
		candidate.UnitCost.Decimal.LessThanOrEqual(short.UnitCost.Decimal)
}

func suggest(short domain.ShortageRecord, candidate domain.SurplusRecord, generatedAt time.Time) domain.TransferSuggestion {
	qty := decimal.Min(short.ShortageQty, candidate.SurplusQty)
	remaining := clip(short.ShortageQty.Sub(qty))

	status := domain.CoverageStillShort
	if !remaining.IsPositive() {
		status = domain.CoverageCovered
	}

	return domain.TransferSuggestion{
		ItemCode:                   short.ItemCode,
		Description:                short.Description,
		RecipientBranch:            short.Branch,
		DonorBranch:                candidate.Branch,
		SuggestedQty:               qty,
		TotalShortageAtRecipient:   short.ShortageQty,
		RemainingShortageAfterThis: remaining,
		CoverageStatus:             status,
		DonorUnitCost:              candidate.UnitCost.Decimal,
		RecipientUnitCost:          short.UnitCost.Decimal,
		TotalWeight:                totalWeight(qty, short.UnitWeight),
		GeneratedAt:                generatedAt,
	}
}

// totalWeight is unknown when the recipient's unit weight is blank.
func totalWeight(qty decimal.Decimal, unitWeight decimal.NullDecimal) decimal.NullDecimal {
	if !unitWeight.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(qty.Mul(unitWeight.Decimal))
}
