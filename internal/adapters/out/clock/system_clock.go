// Package clock reads the wall clock in the business time zone.
package clock

import (
	"time"
	// Time zone data for hosts without a zoneinfo database.
	_ "time/tzdata"

	"pickup/internal/core/domain/model/kernel"
)

// SystemClock reports dates as seen in one time zone, so "today" flips at
// local midnight rather than at UTC midnight.
type SystemClock struct {
	location *time.Location
	now      func() time.Time
}

func NewSystemClock(location *time.Location) *SystemClock {
	return &SystemClock{location: location, now: time.Now}
}

// NewFixedClock always reports the day of t. Handy in tests and demos.
func NewFixedClock(t time.Time) *SystemClock {
	return &SystemClock{location: t.Location(), now: func() time.Time { return t }}
}

func (c *SystemClock) Today() kernel.Date {
	return kernel.DateOf(c.now().In(c.location))
}

func (c *SystemClock) Location() *time.Location {
	return c.location
}
