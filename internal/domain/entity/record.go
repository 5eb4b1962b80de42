package entity

// RawPriceRow is one row exactly as read from the dataset source.
// Blank numeric cells are nil; cells that could not be parsed are listed in ParseErrors.
type RawPriceRow struct {
	Line               int
	Fruit              string
	Form               string
	RetailPrice        *float64
	RetailPriceUnit    string
	Yield              *float64
	CupEquivalentSize  *float64
	CupEquivalentUnit  string
	CupEquivalentPrice *float64
	ParseErrors        []string
}

// PriceRecord represents a cleaned price row with its derived cost and tier.
type PriceRecord struct {
	Item               string    `json:"item"`
	Form               string    `json:"form"`
	RetailPrice        float64   `json:"retail_price"`
	RetailPriceUnit    string    `json:"retail_price_unit"`
	Yield              float64   `json:"yield"`
	CupEquivalentSize  float64   `json:"cup_equivalent_size"`
	CupEquivalentUnit  string    `json:"cup_equivalent_unit"`
	CupEquivalentPrice *float64  `json:"cup_equivalent_price,omitempty"`
	CalculatedCost     float64   `json:"calculated_cost"`
	ActualCost         float64   `json:"actual_cost_per_cup"`
	PriceCheck         bool      `json:"price_check"`
	Tier               PriceTier `json:"price_tier"`
}

// Label retorna "Item (Form)", usado em tabelas e gráficos.
func (r PriceRecord) Label() string {
	return r.Item + " (" + r.Form + ")"
}

// YieldPercent returns the edible yield as a percentage.
func (r PriceRecord) YieldPercent() float64 {
	return r.Yield * 100
}

// RowIssue descreve uma linha rejeitada ou corrigida durante a carga.
type RowIssue struct {
	Line   int    `json:"line"`
	Item   string `json:"item,omitempty"`
	Reason string `json:"reason"`
}
