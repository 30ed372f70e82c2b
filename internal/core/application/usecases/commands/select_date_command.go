package commands

import (
	"errors"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrSelectDateCommandIsNotConstructed = errors.New(
	"SelectDateCommand must be created via NewSelectDateCommand constructor",
)

// SelectDateCommand picks a pickup day on the calendar.
type SelectDateCommand struct { //nolint:recvcheck //using for validation
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewSelectDateCommand creates a command choosing the pickup day.
// A zero date is rejected.
func NewSelectDateCommand(date kernel.Date) (SelectDateCommand, error) {
	cmd := SelectDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDate(date); err != nil {
		return SelectDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectDateCommand) Validate() error {
	return c.guard.Validate(ErrSelectDateCommandIsNotConstructed)
}

// Date returns the chosen pickup day.
func (c SelectDateCommand) Date() kernel.Date {
	return c.date
}

func (c *SelectDateCommand) setDate(date kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}
