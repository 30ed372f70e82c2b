package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrSubmitLocationCommandIsNotConstructed = errors.New(
	"SubmitLocationCommand must be created via NewSubmitLocationCommand constructor",
)

// SubmitLocationCommand asks the wizard to accept the address draft and open
// the scheduling screen.
type SubmitLocationCommand struct {
	guard guard.ConstructorGuard
}

// NewSubmitLocationCommand creates a command validating the address draft.
func NewSubmitLocationCommand() SubmitLocationCommand {
	return SubmitLocationCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SubmitLocationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLocationCommandIsNotConstructed)
}
