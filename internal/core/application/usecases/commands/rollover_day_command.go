package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrRolloverDayCommandIsNotConstructed = errors.New(
	"RolloverDayCommand must be created via NewRolloverDayCommand constructor",
)

// RolloverDayCommand tells the wizard that the calendar day changed.
type RolloverDayCommand struct { //nolint:recvcheck //using for validation
	today kernel.Date

	guard guard.ConstructorGuard
}

// NewRolloverDayCommand creates a command moving the wizard to today.
// A zero date is rejected.
func NewRolloverDayCommand(today kernel.Date) (RolloverDayCommand, error) {
	cmd := RolloverDayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToday(today); err != nil {
		return RolloverDayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RolloverDayCommand) Validate() error {
	return c.guard.Validate(ErrRolloverDayCommandIsNotConstructed)
}

// Today returns the new current day.
func (c RolloverDayCommand) Today() kernel.Date {
	return c.today
}

func (c *RolloverDayCommand) setToday(today kernel.Date) error {
	if today.IsZero() {
		return errs.NewValueIsRequiredError("today")
	}

	c.today = today
	return nil
}
