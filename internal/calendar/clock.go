package calendar

import "time"

// Clock abstracts the source of "today" so views and tests can pin it.
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today returns the current local date.
func (SystemClock) Today() Date {
	return FromTime(time.Now())
}

// FixedClock always reports the same date.
type FixedClock Date

func (c FixedClock) Today() Date {
	return Date(c)
}
