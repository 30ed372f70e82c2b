package kernel

import (
	"fmt"
	"time"

	"pickup/internal/pkg/errs"
)

// ISODateLayout is the wire and configuration format of a Date.
const ISODateLayout = "2006-01-02"

// Date is a civil calendar date. It is stored as midnight UTC so that day
// arithmetic is never affected by daylight saving transitions. The zero value
// means "no date".
type Date struct {
	t time.Time
}

// NewDate builds a Date, normalizing out-of-range values the same way
// time.Date does (e.g. month 13 rolls into the next year).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// String returns the ISO form, or "" for the zero value.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISODateLayout)
}
