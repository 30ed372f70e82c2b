package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrGoBackCommandIsNotConstructed = errors.New(
	"GoBackCommand must be created via NewGoBackCommand constructor",
)

// GoBackCommand returns to the previous screen without losing anything entered.
type GoBackCommand struct {
	guard guard.ConstructorGuard
}

// NewGoBackCommand creates a command returning to the previous screen.
func NewGoBackCommand() GoBackCommand {
	return GoBackCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c GoBackCommand) Validate() error {
	return c.guard.Validate(ErrGoBackCommandIsNotConstructed)
}
