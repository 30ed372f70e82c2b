package commands

import (
	"errors"

	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

// MaxMonthShift bounds a single calendar page jump.
const MaxMonthShift = 12

var ErrShiftMonthCommandIsNotConstructed = errors.New(
	"ShiftMonthCommand must be created via NewShiftMonthCommand constructor",
)

// ShiftMonthCommand pages the pickup calendar; -1 is the previous month and 1 the next.
type ShiftMonthCommand struct { //nolint:recvcheck //using for validation
	delta int

	guard guard.ConstructorGuard
}

// NewShiftMonthCommand creates a calendar paging command. delta must lie
// within [-MaxMonthShift, MaxMonthShift].
func NewShiftMonthCommand(delta int) (ShiftMonthCommand, error) {
	cmd := ShiftMonthCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDelta(delta); err != nil {
		return ShiftMonthCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShiftMonthCommand) Validate() error {
	return c.guard.Validate(ErrShiftMonthCommandIsNotConstructed)
}

// Delta returns the number of months to move the calendar by.
func (c ShiftMonthCommand) Delta() int {
	return c.delta
}

func (c *ShiftMonthCommand) setDelta(delta int) error {
	if delta < -MaxMonthShift || delta > MaxMonthShift {
		return errs.NewValueIsOutOfRangeError("delta", delta, -MaxMonthShift, MaxMonthShift)
	}

	c.delta = delta
	return nil
}
