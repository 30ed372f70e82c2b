package schedule

import (
	"errors"
	"fmt"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
)

// DateRequiredMessage is shown when the customer continues without picking a day.
const DateRequiredMessage = "Vă rugăm selectați o dată pentru colectare."

var (
	ErrDateIsRequired = errs.NewValueIsRequiredErrorWithCause("date", errors.New(DateRequiredMessage))
	ErrDateIsBlocked  = errs.NewValueIsInvalidErrorWithCause("date", errors.New("day is not available for pickup"))
)

var monthNames = [...]string{
	"Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
	"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
}

// Calendar is the pickup date picker: a viewed month that can be paged
// freely, at most one selected day and the validation message shown under it.
// The viewed month and the selection are independent.
type Calendar struct {
	availability Availability
	view         kernel.Date // first day of the viewed month
	selected     kernel.Date
	message      string
}

// NewCalendar opens the picker on the month of availability's today.
func NewCalendar(availability Availability) Calendar {
	return Calendar{
		availability: availability,
		view:         firstOfMonth(availability.Today()),
	}
}

func (c *Calendar) Availability() Availability {
	return c.availability
}

// ViewedMonth returns the month currently displayed.
func (c *Calendar) ViewedMonth() (int, time.Month) {
	return c.view.Year(), c.view.Month()
}

// ShiftMonth moves the viewed month by delta months; there is no lower or upper bound.
func (c *Calendar) ShiftMonth(delta int) {
	c.view = kernel.NewDate(c.view.Year(), c.view.Month()+time.Month(delta), 1)
}

func (c *Calendar) PrevMonth() {
	c.ShiftMonth(-1)
}

func (c *Calendar) NextMonth() {
	c.ShiftMonth(1)
}

// Select makes d the chosen pickup day and clears the validation message.
// Blocked days are refused and leave the calendar unchanged.
func (c *Calendar) Select(d kernel.Date) error {
	if c.availability.IsBlocked(d) {
		return ErrDateIsBlocked
	}
	c.selected = d
	c.message = ""
	return nil
}

// Selected returns the chosen day, or the zero Date.
func (c *Calendar) Selected() kernel.Date {
	return c.selected
}

// Message returns the validation message to display, if any.
func (c *Calendar) Message() string {
	return c.message
}

// Confirm returns the selected day. Without one it records DateRequiredMessage
// and returns ErrDateIsRequired.
func (c *Calendar) Confirm() (kernel.Date, error) {
	if c.selected.IsZero() {
		c.message = DateRequiredMessage
		return kernel.Date{}, ErrDateIsRequired
	}
	return c.selected, nil
}

// SetToday moves the calendar to a new day. A selection that is no longer
// bookable is dropped.
func (c *Calendar) SetToday(today kernel.Date) {
	c.availability = NewAvailability(today, c.availability.BlockList())
	if !c.selected.IsZero() && c.availability.IsBlocked(c.selected) {
		c.selected = kernel.Date{}
	}
}

// Reset clears the selection and message and returns to today's month.
func (c *Calendar) Reset() {
	*c = NewCalendar(c.availability)
}

// Cell is one square of the month grid. Leading padding cells have a zero Date.
type Cell struct {
	Date     kernel.Date
	Day      int
	Blocked  bool
	Selected bool
}

// IsEmpty reports whether the cell is padding.
func (c Cell) IsEmpty() bool {
	return c.Date.IsZero()
}

// Grid is the viewed month laid out in Monday-first weeks.
type Grid struct {
	Year   int
	Month  time.Month
	Title  string
	Offset int
	Cells  []Cell
}

// Weeks splits the cells into rows of seven, padding the last row.
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, (len(g.Cells)+6)/7)
	for start := 0; start < len(g.Cells); start += 7 {
		week := make([]Cell, 7)
		copy(week, g.Cells[start:min(start+7, len(g.Cells))])
		weeks = append(weeks, week)
	}
	return weeks
}

// Grid lays out the viewed month.
func (c *Calendar) Grid() Grid {
	first := c.view
	days := daysInMonth(first.Year(), first.Month())
	offset := MondayOffset(first.Weekday())

	cells := make([]Cell, offset, offset+days)
	for day := 1; day <= days; day++ {
		d := kernel.NewDate(first.Year(), first.Month(), day)
		cells = append(cells, Cell{
			Date:     d,
			Day:      day,
			Blocked:  c.availability.IsBlocked(d),
			Selected: d == c.selected,
		})
	}

	return Grid{
		Year:   first.Year(),
		Month:  first.Month(),
		Title:  fmt.Sprintf("%s %d", monthNames[first.Month()-1], first.Year()),
		Offset: offset,
		Cells:  cells,
	}
}

// MondayOffset converts a Sunday-based weekday into the number of empty cells
// before it in a Monday-first week.
func MondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func daysInMonth(year int, month time.Month) int {
	return kernel.NewDate(year, month+1, 0).Day()
}

func firstOfMonth(d kernel.Date) kernel.Date {
	return kernel.NewDate(d.Year(), d.Month(), 1)
}
