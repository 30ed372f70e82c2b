package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand appends an empty carpet on the calculator screen.
type AddItemCommand struct {
	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command appending an empty carpet.
func NewAddItemCommand() AddItemCommand {
	return AddItemCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}
