package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guttosm/cryptochart/config"
	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/domain/models"
	"github.com/guttosm/cryptochart/internal/logger"
	"github.com/guttosm/cryptochart/internal/service"
	"github.com/guttosm/cryptochart/internal/session"
)

// clock is the source of "today" for RunFetch.
var clock = session.NewRealClock()

// RunFetch performs one chart fetch without the HTTP server and writes the
// series to w as a table.
//
// An empty to means today and an empty from means seven days before to.
// An empty symbol picks the first asset of the directory. The same bounds
// as the chart page apply.
func RunFetch(ctx context.Context, w io.Writer, symbol, from, to string) error {
	client, err := providerOpener(config.AppConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize market data client: %w", err)
	}
	defer client.Close()

	today := clock.Now()
	state, err := session.State{Range: session.DefaultRangeFor(today, to)}.
		Apply(session.Input{Symbol: symbol, From: from, To: to}, today)
	if err != nil {
		return err
	}

	dir, err := client.ListAssets(ctx)
	if err != nil {
		return err
	}
	state = state.WithDefaultSymbol(dir)

	series, q, err := service.NewSeriesService(client).
		FetchSeries(ctx, dir, state.Symbol, state.Range.From, state.Range.To)
	if err != nil {
		return err
	}

	logger.L().Info().
		Str("symbol", q.Symbol).
		Str("interval", q.Interval).
		Int("points", len(series)).
		Msg("fetch completed")
	return writeSeries(w, q, state.Range, series)
}

func writeSeries(w io.Writer, q models.SeriesQuery, r chart.DateRange, series models.PriceSeries) error {
	if _, err := fmt.Fprintf(w, "%s (%s) %s interval=%s points=%d\n", q.Symbol, q.AssetID, r, q.Interval, len(series)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME (UTC)\tPRICE (USD)")
	for _, p := range series {
		fmt.Fprintf(tw, "%s\t%s\n", p.Time.Format(time.RFC3339), p.Price.String())
	}
	return tw.Flush()
}
