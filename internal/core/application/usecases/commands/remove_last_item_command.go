package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrRemoveLastItemCommandIsNotConstructed = errors.New(
	"RemoveLastItemCommand must be created via NewRemoveLastItemCommand constructor",
)

// RemoveLastItemCommand drops the last carpet. The last remaining carpet is never removed.
type RemoveLastItemCommand struct {
	guard guard.ConstructorGuard
}

// NewRemoveLastItemCommand creates a command dropping the last carpet.
func NewRemoveLastItemCommand() RemoveLastItemCommand {
	return RemoveLastItemCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveLastItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLastItemCommandIsNotConstructed)
}
