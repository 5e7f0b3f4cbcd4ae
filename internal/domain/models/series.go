package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SamplePoint is one price observation.
type SamplePoint struct {
	Time  time.Time       `json:"time" example:"2024-01-01T00:00:00Z"`
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"42000.5"`
}

// PriceSeries is a sequence of SamplePoints in the order returned by the
// provider (time ascending). It is never re-sorted client side.
type PriceSeries []SamplePoint

// MinMax returns the lowest and highest price in the series.
// Both are zero for an empty series.
func (s PriceSeries) MinMax() (lo, hi decimal.Decimal) {
	for i, p := range s {
		if i == 0 || p.Price.LessThan(lo) {
			lo = p.Price
		}
		if i == 0 || p.Price.GreaterThan(hi) {
			hi = p.Price
		}
	}
	return lo, hi
}

// SeriesQuery describes the request issued to build a PriceSeries.
type SeriesQuery struct {
	AssetID  string `json:"asset_id" example:"bitcoin"`
	Symbol   string `json:"symbol" example:"BTC"`
	Interval string `json:"interval" example:"m15"`
	Start    int64  `json:"start" example:"1704067200000"`
	End      int64  `json:"end" example:"1704240000000"`
}
