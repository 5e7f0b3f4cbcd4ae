package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/coincap"
	"github.com/guttosm/cryptochart/internal/domain/errs"
	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/logger"
)

// HistorySource issues the history request to the provider.
type HistorySource interface {
	History(ctx context.Context, id, interval string, start, end int64) ([]coincap.HistoryRecord, error)
}

// SeriesService builds price series for the chart.
type SeriesService interface {
	FetchSeries(ctx context.Context, dir models.AssetDirectory, symbol string, from, to time.Time) (models.PriceSeries, models.SeriesQuery, error)
}

type seriesService struct {
	source HistorySource
}

func NewSeriesService(source HistorySource) SeriesService {
	return &seriesService{source: source}
}

// FetchSeries resolves symbol, picks the interval for [from, to], issues one
// history request and reshapes the records into a PriceSeries.
//
// Errors (all returned unrecovered, never retried):
//   - errs.ErrNotFound: symbol not in dir; no request is issued.
//   - errs.ErrInvalidRange: from is not before to; no request is issued.
//   - errs.ErrTransport: the request failed.
//   - errs.ErrMalformedData: a record did not parse; no partial series.
func (s *seriesService) FetchSeries(ctx context.Context, dir models.AssetDirectory, symbol string, from, to time.Time) (models.PriceSeries, models.SeriesQuery, error) {
	id, err := chart.ResolveID(dir, symbol)
	if err != nil {
		return nil, models.SeriesQuery{}, err
	}
	r, err := chart.NewDateRange(from, to)
	if err != nil {
		return nil, models.SeriesQuery{}, err
	}

	q := models.SeriesQuery{
		AssetID:  id,
		Symbol:   symbol,
		Interval: chart.SelectInterval(r.From, r.To).String(),
		Start:    chart.EpochMillis(r.From),
		End:      chart.EpochMillis(r.To),
	}

	recs, err := s.source.History(ctx, q.AssetID, q.Interval, q.Start, q.End)
	if err != nil {
		return nil, q, err
	}

	series, err := toSeries(recs)
	if err != nil {
		return nil, q, err
	}

	logger.L().Debug().
		Str("symbol", symbol).
		Str("asset_id", id).
		Str("interval", q.Interval).
		Str("range", r.String()).
		Int("days", r.Days()).
		Int("points", len(series)).
		Msg("series fetched")

	return series, q, nil
}

// toSeries parses every record or fails as a whole.
func toSeries(recs []coincap.HistoryRecord) (models.PriceSeries, error) {
	out := make(models.PriceSeries, 0, len(recs))
	for i, rec := range recs {
		price, err := decimal.NewFromString(rec.PriceUsd)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: priceUsd %q: %v", errs.ErrMalformedData, i, rec.PriceUsd, err)
		}
		ts, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: date %q: %v", errs.ErrMalformedData, i, rec.Date, err)
		}
		out = append(out, models.SamplePoint{Time: ts.UTC(), Price: price})
	}
	return out, nil
}
