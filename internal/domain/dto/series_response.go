package dto

import (
	"time"

	"github.com/guttosm/cryptochart/internal/domain/models"
)

// SeriesResponse is returned by GET /api/v1/series.
//
// Fields mirror the request that was issued upstream, so clients can see
// which interval the range produced.
type SeriesResponse struct {
	Symbol   string               `json:"symbol" example:"BTC"`
	AssetID  string               `json:"asset_id" example:"bitcoin"`
	From     string               `json:"from" example:"2024-01-01"`
	To       string               `json:"to" example:"2024-01-03"`
	Interval string               `json:"interval" example:"m15"`
	Start    int64                `json:"start" example:"1704067200000"`
	End      int64                `json:"end" example:"1704240000000"`
	Count    int                  `json:"count" example:"1"`
	Points   []models.SamplePoint `json:"points"`
}

// AssetsResponse is returned by GET /api/v1/assets.
type AssetsResponse struct {
	Count     int            `json:"count" example:"100"`
	FetchedAt time.Time      `json:"fetched_at" example:"2024-01-01T00:00:00Z"`
	Assets    []models.Asset `json:"assets"`
}
