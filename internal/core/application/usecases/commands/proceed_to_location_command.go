package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrProceedToLocationCommandIsNotConstructed = errors.New(
	"ProceedToLocationCommand must be created via NewProceedToLocationCommand constructor",
)

// ProceedToLocationCommand leaves the calculator for the location screen.
// The carpets are not validated; an empty order moves on at the minimum price.
type ProceedToLocationCommand struct {
	guard guard.ConstructorGuard
}

// NewProceedToLocationCommand creates a command leaving the calculator.
func NewProceedToLocationCommand() ProceedToLocationCommand {
	return ProceedToLocationCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProceedToLocationCommand) Validate() error {
	return c.guard.Validate(ErrProceedToLocationCommandIsNotConstructed)
}
