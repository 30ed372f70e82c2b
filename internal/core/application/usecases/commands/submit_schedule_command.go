package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrSubmitScheduleCommandIsNotConstructed = errors.New(
	"SubmitScheduleCommand must be created via NewSubmitScheduleCommand constructor",
)

// SubmitScheduleCommand confirms the selected pickup date.
type SubmitScheduleCommand struct {
	guard guard.ConstructorGuard
}

// NewSubmitScheduleCommand creates a command confirming the pickup day.
func NewSubmitScheduleCommand() SubmitScheduleCommand {
	return SubmitScheduleCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SubmitScheduleCommand) Validate() error {
	return c.guard.Validate(ErrSubmitScheduleCommandIsNotConstructed)
}
