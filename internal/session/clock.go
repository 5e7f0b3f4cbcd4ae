package session

import "time"

// Clock abstracts the current time so "today" is deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewRealClock returns the wall clock in UTC.
func NewRealClock() Clock {
	return realClock{}
}
