package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-transfers/internal/domain"
)

var generatedAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestMatch_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		rows          [][]string
		wantQty       string
		wantRemaining string
		wantWeight    string
		wantStatus    domain.CoverageStatus
	}{
		{
			name: "partial coverage",
			rows: [][]string{
				row("A", "X001", "2", "10", "5", "1.5", "S"),
				row("B", "X001", "15", "10", "4", "9", "S"),
			},
			wantQty:       "5",
			wantRemaining: "3",
			wantWeight:    "7.5",
			wantStatus:    domain.CoverageStillShort,
		},
		{
			name: "full coverage",
			rows: [][]string{
				row("A", "X001", "2", "10", "5", "1.5", "S"),
				row("B", "X001", "20", "10", "5", "9", "S"),
			},
			wantQty:       "8",
			wantRemaining: "0",
			wantWeight:    "12",
			wantStatus:    domain.CoverageCovered,
		},
		{
			name: "unconstrained donor offers all stock",
			rows: [][]string{
				row("A", "X001", "2", "10", "5", "1.5", "P"),
				row("B", "X001", "8", "100", "1", "9", "O"),
			},
			wantQty:       "8",
			wantRemaining: "0",
			wantWeight:    "12",
			wantStatus:    domain.CoverageCovered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified, err := Classify(snapshotOf(tt.rows...), domain.DefaultColumns())
			require.NoError(t, err)
			shortages, surpluses := Extract(classified.Records)

			got := Match(shortages, surpluses, generatedAt)

			require.Len(t, got, 1)
			s := got[0]
			assert.Equal(t, "X001", s.ItemCode)
			assert.Equal(t, "Item X001", s.Description)
			assert.Equal(t, "A", s.RecipientBranch)
			assert.Equal(t, "B", s.DonorBranch)
			assertDecimal(t, tt.wantQty, s.SuggestedQty)
			assertDecimal(t, "8", s.TotalShortageAtRecipient)
			assertDecimal(t, tt.wantRemaining, s.RemainingShortageAfterThis)
			assert.Equal(t, tt.wantStatus, s.CoverageStatus)
			assert.True(t, s.DonorUnitCost.LessThanOrEqual(s.RecipientUnitCost))
			assertDecimal(t, "5", s.RecipientUnitCost)
			// weight uses the recipient's unit weight
			require.True(t, s.TotalWeight.Valid)
			assertDecimal(t, tt.wantWeight, s.TotalWeight.Decimal)
			assert.Equal(t, generatedAt, s.GeneratedAt)
		})
	}
}

func TestMatch_Eligibility(t *testing.T) {
	shortage := domain.ShortageRecord{
		InventoryRecord: record("A", "X001", "2", "10", "5", "2", domain.BoardFlagS),
		ShortageQty:     decimal.NewFromInt(8),
	}
	surplus := func(branch, code, cost string) domain.SurplusRecord {
		return domain.SurplusRecord{
			InventoryRecord: record(branch, code, "20", "10", cost, "2", domain.BoardFlagS),
			SurplusQty:      decimal.NewFromInt(10),
		}
	}

	tests := []struct {
		name      string
		surpluses []domain.SurplusRecord
		wantDonor []string
	}{
		{"same branch is never a donor", []domain.SurplusRecord{surplus("A", "X001", "1")}, nil},
		{"different item code", []domain.SurplusRecord{surplus("B", "X999", "1")}, nil},
		{"more expensive donor", []domain.SurplusRecord{surplus("B", "X001", "5.01")}, nil},
		{"equal cost is eligible", []domain.SurplusRecord{surplus("B", "X001", "5")}, []string{"B"}},
		{"blank donor cost never compares", []domain.SurplusRecord{surplus("B", "X001", "")}, nil},
		{
			name: "candidates keep surplus order, not cost order",
			surpluses: []domain.SurplusRecord{
				surplus("D", "X001", "4"),
				surplus("B", "X001", "1"),
				surplus("C", "X002", "1"),
				surplus("E", "X001", "3"),
			},
			wantDonor: []string{"D", "B", "E"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match([]domain.ShortageRecord{shortage}, tt.surpluses, generatedAt)

			donors := make([]string, 0)
			for _, s := range got {
				assert.NotEqual(t, s.RecipientBranch, s.DonorBranch)
				donors = append(donors, s.DonorBranch)
			}
			if tt.wantDonor == nil {
				assert.Empty(t, got)
				assert.NotNil(t, got)
				return
			}
			assert.Equal(t, tt.wantDonor, donors)
		})
	}
}

func TestMatch_QuantitiesAreNotDecremented(t *testing.T) {
	rows := [][]string{
		row("A", "X001", "2", "10", "5", "1", "S"),  // short 8
		row("C", "X001", "4", "10", "5", "1", "S"),  // short 6
		row("B", "X001", "15", "10", "4", "1", "S"), // surplus 5
		row("D", "X001", "16", "10", "4", "1", "S"), // surplus 6
	}
	classified, err := Classify(snapshotOf(rows...), domain.DefaultColumns())
	require.NoError(t, err)
	shortages, surpluses := Extract(classified.Records)

	got := Match(shortages, surpluses, generatedAt)
	require.Len(t, got, 4)

	want := []struct {
		recipient, donor, qty, remaining string
		status                           domain.CoverageStatus
	}{
		{"A", "B", "5", "3", domain.CoverageStillShort},
		{"A", "D", "6", "2", domain.CoverageStillShort},
		{"C", "B", "5", "1", domain.CoverageStillShort},
		{"C", "D", "6", "0", domain.CoverageCovered},
	}
	for i, w := range want {
		t.Run(fmt.Sprintf("%s<-%s", w.recipient, w.donor), func(t *testing.T) {
			s := got[i]
			assert.Equal(t, w.recipient, s.RecipientBranch)
			assert.Equal(t, w.donor, s.DonorBranch)
			assertDecimal(t, w.qty, s.SuggestedQty)
			assertDecimal(t, w.remaining, s.RemainingShortageAfterThis)
			assert.Equal(t, w.status, s.CoverageStatus)
		})
	}
}

func TestMatch_EmptyInputs(t *testing.T) {
	shortage := domain.ShortageRecord{
		InventoryRecord: record("A", "X001", "2", "10", "5", "2", domain.BoardFlagS),
		ShortageQty:     decimal.NewFromInt(8),
	}

	got := Match(nil, nil, generatedAt)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = Match([]domain.ShortageRecord{shortage}, nil, generatedAt)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_TotalWeight(t *testing.T) {
	shortage := domain.ShortageRecord{
		InventoryRecord: record("A", "X001", "0", "3", "5", "0.1", domain.BoardFlagS),
		ShortageQty:     decimal.NewFromInt(3),
	}
	surplus := domain.SurplusRecord{
		InventoryRecord: record("B", "X001", "3", "0", "5", "99", domain.BoardFlagO),
		SurplusQty:      decimal.NewFromInt(3),
	}

	got := Match([]domain.ShortageRecord{shortage}, []domain.SurplusRecord{surplus}, generatedAt)

	require.Len(t, got, 1)
	// exact: 3 x 0.1 is 0.3, not 0.30000000000000004
	assert.Equal(t, "0.3", got[0].TotalWeight.Decimal.String())
}

func TestMatch_BlankRecipientCost(t *testing.T) {
	shortage := domain.ShortageRecord{
		InventoryRecord: record("A", "X001", "2", "10", "", "2", domain.BoardFlagS),
		ShortageQty:     decimal.NewFromInt(8),
	}
	surplus := domain.SurplusRecord{
		InventoryRecord: record("B", "X001", "20", "10", "0", "2", domain.BoardFlagS),
		SurplusQty:      decimal.NewFromInt(10),
	}

	got := Match([]domain.ShortageRecord{shortage}, []domain.SurplusRecord{surplus}, generatedAt)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_BlankRecipientWeight(t *testing.T) {
	shortage := domain.ShortageRecord{
		InventoryRecord: record("A", "X001", "0", "3", "5", "", domain.BoardFlagS),
		ShortageQty:     decimal.NewFromInt(3),
	}
	surplus := domain.SurplusRecord{
		InventoryRecord: record("B", "X001", "3", "0", "5", "1", domain.BoardFlagO),
		SurplusQty:      decimal.NewFromInt(3),
	}

	got := Match([]domain.ShortageRecord{shortage}, []domain.SurplusRecord{surplus}, generatedAt)

	require.Len(t, got, 1)
	assertDecimal(t, "3", got[0].SuggestedQty)
	assert.False(t, got[0].TotalWeight.Valid, "weight is unknown, not zero")
}

func BenchmarkMatch(b *testing.B) {
	var shortages []domain.ShortageRecord
	var surpluses []domain.SurplusRecord
	for i := 0; i < 500; i++ {
		code := fmt.Sprintf("X%03d", i%50)
		shortages = append(shortages, domain.ShortageRecord{
			InventoryRecord: record(fmt.Sprintf("R%d", i), code, "0", "10", "5", "1", domain.BoardFlagS),
			ShortageQty:     decimal.NewFromInt(10),
		})
		surpluses = append(surpluses, domain.SurplusRecord{
			InventoryRecord: record(fmt.Sprintf("D%d", i), code, "20", "10", "4", "1", domain.BoardFlagS),
			SurplusQty:      decimal.NewFromInt(10),
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Match(shortages, surpluses, generatedAt)
	}
}
