package models

// Asset represents one tradable cryptocurrency as listed by the market
// data provider.
//
// Fields:
//   - ID: opaque identifier used in provider URLs (e.g., "bitcoin").
//   - Symbol: human-facing ticker (e.g., "BTC").
//   - Name: display name (e.g., "Bitcoin").
//   - Rank: market cap rank reported by the provider (0 when unknown).
//
// swagger:model Asset
type Asset struct {
	ID     string `json:"id" example:"bitcoin"`
	Symbol string `json:"symbol" example:"BTC"`
	Name   string `json:"name" example:"Bitcoin"`
	Rank   int    `json:"rank" example:"1"`
}

// AssetDirectory is the ordered list of assets fetched once per session.
// It is never mutated after the fetch; order is the provider's order.
type AssetDirectory []Asset

// Symbols returns the ticker symbols in directory order.
func (d AssetDirectory) Symbols() []string {
	out := make([]string, 0, len(d))
	for _, a := range d {
		out = append(out, a.Symbol)
	}
	return out
}
