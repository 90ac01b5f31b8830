package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-transfers/internal/domain"
)

func TestShortageAndSurplusQty(t *testing.T) {
	tests := []struct {
		name         string
		record       domain.InventoryRecord
		wantShortage string
		wantSurplus  string
	}{
		{"S below max", record("A", "X001", "2", "10", "1", "1", domain.BoardFlagS), "8", "0"},
		{"P above max", record("A", "X001", "15", "10", "1", "1", domain.BoardFlagP), "0", "5"},
		{"S at max", record("A", "X001", "10", "10", "1", "1", domain.BoardFlagS), "0", "0"},
		{"fractional quantities", record("A", "X001", "2.25", "3.5", "1", "1", domain.BoardFlagS), "1.25", "0"},
		{"O offers all stock regardless of max", record("A", "X002", "7", "100", "1", "1", domain.BoardFlagO), "0", "7"},
		{"absent flag behaves like O", record("A", "X002", "7", "3", "1", "1", domain.BoardFlagAbsent), "0", "7"},
		{"O with nothing on hand", record("A", "X002", "0", "3", "1", "1", domain.BoardFlagO), "0", "0"},
		{"S with blank max", record("A", "X001", "15", "", "1", "1", domain.BoardFlagS), "0", "0"},
		{"P with blank on hand", record("A", "X001", "", "10", "1", "1", domain.BoardFlagP), "0", "0"},
		{"O with blank on hand", record("A", "X002", "", "3", "1", "1", domain.BoardFlagO), "0", "0"},
		{"O with blank max still offers stock", record("A", "X002", "7", "", "1", "1", domain.BoardFlagO), "0", "7"},
		{"negative stock deepens the shortage", record("A", "X001", "-3", "10", "1", "1", domain.BoardFlagS), "13", "0"},
		{"negative stock is never surplus", record("A", "X002", "-3", "0", "1", "1", domain.BoardFlagO), "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shortage := ShortageQty(tt.record)
			surplus := SurplusQty(tt.record)

			assertDecimal(t, tt.wantShortage, shortage)
			assertDecimal(t, tt.wantSurplus, surplus)
			assert.False(t, shortage.IsNegative())
			assert.False(t, surplus.IsNegative())
			assert.False(t, shortage.IsPositive() && surplus.IsPositive(), "shortage and surplus are exclusive")
		})
	}
}

func TestExtract(t *testing.T) {
	records := []domain.InventoryRecord{
		record("A", "X001", "2", "10", "5", "1", domain.BoardFlagS),
		record("B", "X001", "15", "10", "4", "1", domain.BoardFlagS),
		record("C", "X001", "10", "10", "4", "1", domain.BoardFlagP),
		record("D", "X002", "7", "1", "3", "1", domain.BoardFlagO),
		record("E", "X003", "0", "5", "3", "1", domain.BoardFlagAbsent),
		record("F", "X004", "1", "6", "3", "1", domain.BoardFlagP),
	}

	shortages, surpluses := Extract(records)

	require.Len(t, shortages, 2)
	assert.Equal(t, "A", shortages[0].Branch)
	assertDecimal(t, "8", shortages[0].ShortageQty)
	assert.Equal(t, "F", shortages[1].Branch)
	assertDecimal(t, "5", shortages[1].ShortageQty)

	require.Len(t, surpluses, 2)
	assert.Equal(t, "B", surpluses[0].Branch)
	assertDecimal(t, "5", surpluses[0].SurplusQty)
	assert.Equal(t, "D", surpluses[1].Branch)
	assertDecimal(t, "7", surpluses[1].SurplusQty)

	for _, s := range shortages {
		assert.True(t, s.BoardFlag.Constrained(), "only S and P rows can be short")
	}
}

func TestExtract_Empty(t *testing.T) {
	shortages, surpluses := Extract(nil)
	assert.NotNil(t, shortages)
	assert.NotNil(t, surpluses)
	assert.Empty(t, shortages)
	assert.Empty(t, surpluses)
}
