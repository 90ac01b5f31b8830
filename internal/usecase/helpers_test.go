package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"inventory-transfers/internal/domain"
)

var testHeader = []string{"SUCURSAL", "CODIGO", "DESCRIPCION", "EXISTENCIA", "MAXIMO", "COSTO", "PESO", "CUADRO BASICO"}

// row builds a snapshot row in testHeader order.
func row(branch, code, onHand, maxLevel, cost, weight, flag string) []string {
	return []string{branch, code, "Item " + code, onHand, maxLevel, cost, weight, flag}
}

func snapshotOf(rows ...[]string) domain.Snapshot {
	return domain.Snapshot{Source: "test.csv", Header: testHeader, Rows: rows}
}

// record builds a decoded record; an empty quantity stands for a blank cell.
func record(branch, code, onHand, maxLevel, cost, weight string, flag domain.BoardFlag) domain.InventoryRecord {
	return domain.InventoryRecord{
		Branch:      branch,
		ItemCode:    code,
		Description: "Item " + code,
		OnHand:      quantity(onHand),
		MaxLevel:    quantity(maxLevel),
		UnitCost:    quantity(cost),
		UnitWeight:  quantity(weight),
		BoardFlag:   flag,
	}
}

func quantity(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
