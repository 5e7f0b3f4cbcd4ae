// Package chart holds the pure decision logic behind a chart render:
// calendar day normalization, epoch timestamps, interval selection and
// symbol resolution. Nothing here performs I/O.
package chart

import (
	"fmt"
	"time"

	"github.com/guttosm/cryptochart/internal/domain/errs"
)

// DayLayout is the calendar day format accepted by ParseDay.
const DayLayout = "2006-01-02"

// Day truncates t to its calendar day at midnight UTC.
// The calendar day is taken in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// EpochMillis converts the calendar day of d, taken at midnight UTC, to
// milliseconds since the Unix epoch.
func EpochMillis(d time.Time) int64 {
	return Day(d).UnixMilli()
}

// YearsBefore returns the calendar day n years before ref, keeping month
// and day. February 29 into a non-leap year clamps to February 28.
func YearsBefore(n int, ref time.Time) time.Time {
	y, m, d := ref.Date()
	y -= n
	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DateRange is a pair of inclusive calendar days with From strictly
// before To.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalizes both bounds to calendar days and checks From < To.
func NewDateRange(from, to time.Time) (DateRange, error) {
	r := DateRange{From: Day(from), To: Day(to)}
	if !r.From.Before(r.To) {
		return DateRange{}, fmt.Errorf("%w: from %s must be before to %s",
			errs.ErrInvalidRange, r.From.Format(DayLayout), r.To.Format(DayLayout))
	}
	return r, nil
}

// Span is the distance between the two bounds.
func (r DateRange) Span() time.Duration {
	return r.To.Sub(r.From)
}

// Days is the span in whole days.
func (r DateRange) Days() int {
	return int(r.Span() / (24 * time.Hour))
}

func (r DateRange) String() string {
	return r.From.Format(DayLayout) + ".." + r.To.Format(DayLayout)
}
