package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrRestartCommandIsNotConstructed = errors.New(
	"RestartCommand must be created via NewRestartCommand constructor",
)

// RestartCommand starts a new order from the success screen.
type RestartCommand struct {
	guard guard.ConstructorGuard
}

// NewRestartCommand creates a command starting a new order from Success.
func NewRestartCommand() RestartCommand {
	return RestartCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RestartCommand) Validate() error {
	return c.guard.Validate(ErrRestartCommandIsNotConstructed)
}
