package domain

// Columns names the snapshot headers that hold each InventoryRecord field.
// Header matching is exact and case-sensitive.
type Columns struct {
	Branch      string
	ItemCode    string
	OnHand      string
	MaxLevel    string
	UnitCost    string
	UnitWeight  string
	BoardFlag   string
	Description string
}

// DefaultColumns returns the headers used by the branch inventory exports.
func DefaultColumns() Columns {
	return Columns{
		Branch:      "SUCURSAL",
		ItemCode:    "CODIGO",
		OnHand:      "EXISTENCIA",
		MaxLevel:    "MAXIMO",
		UnitCost:    "COSTO",
		UnitWeight:  "PESO",
		BoardFlag:   "CUADRO BASICO",
		Description: "DESCRIPCION",
	}
}

// Required lists every required header in a stable order.
func (c Columns) Required() []string {
	return []string{c.Branch, c.ItemCode, c.OnHand, c.MaxLevel, c.UnitCost, c.UnitWeight, c.BoardFlag, c.Description}
}

// ExportNames are the base file names (without extension) of the three exports.
type ExportNames struct {
	Suggestions string
	Shortages   string
	Surpluses   string
}

// DefaultExportNames returns the file names planners already expect.
func DefaultExportNames() ExportNames {
	return ExportNames{
		Suggestions: "sugerencias_filtradas",
		Shortages:   "faltantes",
		Surpluses:   "excedentes",
	}
}
