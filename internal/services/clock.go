package services

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock supplies the current time to the services
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always returns t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Today returns the calendar date of the clock in its own location.
func Today(c Clock) civil.Date {
	return civil.DateOf(c.Now())
}
