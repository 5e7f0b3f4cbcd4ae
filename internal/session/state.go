// Package session holds the per-browser selection state of the chart page
// and the store that keeps it between renders.
package session

import (
	"fmt"
	"time"

	"github.com/guttosm/cryptochart/internal/chart"
	"github.com/guttosm/cryptochart/internal/domain/errs"
	"github.com/guttosm/cryptochart/internal/domain/models"
)

const (
	// historyYears is how far back the provider keeps history.
	historyYears = 11
	// defaultWindow is the range shown when a session starts.
	defaultWindow = 7 * 24 * time.Hour
)

// State is the user's current selection.
type State struct {
	Symbol string
	Range  chart.DateRange
}

// Input carries raw form values. Empty fields keep the current value.
type Input struct {
	Symbol string
	From   string
	To     string
}

// Bounds are the inclusive limits a DateRange must respect.
type Bounds struct {
	MinFrom time.Time
	MaxTo   time.Time
}

// BoundsFor computes the limits relative to today: from may reach back
// 11 years before tomorrow and to may not pass today.
func BoundsFor(today time.Time) Bounds {
	today = chart.Day(today)
	return Bounds{
		MinFrom: chart.YearsBefore(historyYears, today.AddDate(0, 0, 1)),
		MaxTo:   today,
	}
}

// Check validates r against the bounds.
func (b Bounds) Check(r chart.DateRange) error {
	if r.From.Before(b.MinFrom) {
		return fmt.Errorf("%w: from %s is before %s", errs.ErrInvalidRange,
			r.From.Format(chart.DayLayout), b.MinFrom.Format(chart.DayLayout))
	}
	if r.To.After(b.MaxTo) {
		return fmt.Errorf("%w: to %s is after %s", errs.ErrInvalidRange,
			r.To.Format(chart.DayLayout), b.MaxTo.Format(chart.DayLayout))
	}
	return nil
}

// DefaultRange is the last seven days ending today.
func DefaultRange(today time.Time) chart.DateRange {
	to := chart.Day(today)
	return chart.DateRange{From: to.Add(-defaultWindow), To: to}
}

// DefaultRangeFor is DefaultRange ending on the requested to day when it
// parses, so an omitted from means seven days before to. An unparsable to
// falls back to today and is rejected later by Apply.
func DefaultRangeFor(today time.Time, to string) chart.DateRange {
	if to != "" {
		if d, err := chart.ParseDay(to); err == nil {
			return DefaultRange(d)
		}
	}
	return DefaultRange(today)
}

// WithDefaultSymbol fills an empty symbol with the first asset of dir.
func (s State) WithDefaultSymbol(dir models.AssetDirectory) State {
	if s.Symbol == "" && len(dir) > 0 {
		s.Symbol = dir[0].Symbol
	}
	return s
}

// Apply returns a copy of s with in applied, or errs.ErrInvalidRange when
// the resulting range is unordered or out of bounds. s is never modified.
func (s State) Apply(in Input, today time.Time) (State, error) {
	next := s
	if in.Symbol != "" {
		next.Symbol = in.Symbol
	}

	from, to := s.Range.From, s.Range.To
	if in.From != "" {
		d, err := chart.ParseDay(in.From)
		if err != nil {
			return s, fmt.Errorf("%w: %v", errs.ErrInvalidRange, err)
		}
		from = d
	}
	if in.To != "" {
		d, err := chart.ParseDay(in.To)
		if err != nil {
			return s, fmt.Errorf("%w: %v", errs.ErrInvalidRange, err)
		}
		to = d
	}

	r, err := chart.NewDateRange(from, to)
	if err != nil {
		return s, err
	}
	if err := BoundsFor(today).Check(r); err != nil {
		return s, err
	}
	next.Range = r
	return next, nil
}
