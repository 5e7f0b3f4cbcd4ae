package chart

import "time"

// Interval is a sampling granularity understood by the history endpoint.
// Values are the provider's wire codes.
type Interval string

const (
	FifteenMinutes Interval = "m15"
	OneHour        Interval = "h1"
	SixHours       Interval = "h6"
	OneDay         Interval = "d1"
)

const day = 24 * time.Hour

// SelectInterval picks the granularity for a range so the number of
// returned points stays roughly constant. Thresholds are strict and
// checked from coarsest to finest:
//
//	span > 120 days  -> d1
//	span >  50 days  -> h6
//	span >   5 days  -> h1
//	otherwise        -> m15
func SelectInterval(from, to time.Time) Interval {
	span := Day(to).Sub(Day(from))
	switch {
	case span > 120*day:
		return OneDay
	case span > 50*day:
		return SixHours
	case span > 5*day:
		return OneHour
	default:
		return FifteenMinutes
	}
}

// Step is the duration between two consecutive samples.
func (i Interval) Step() time.Duration {
	switch i {
	case OneDay:
		return day
	case SixHours:
		return 6 * time.Hour
	case OneHour:
		return time.Hour
	default:
		return 15 * time.Minute
	}
}

func (i Interval) String() string { return string(i) }
