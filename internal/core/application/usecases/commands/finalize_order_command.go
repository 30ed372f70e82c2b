package commands

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand finishes the order with the customer's notes and the
// answer to the arithmetic challenge. Both are free text; a wrong or
// non-numeric answer is a business outcome, not a malformed command.
type FinalizeOrderCommand struct {
	observations string
	answer       string

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates the command. Any text is accepted; the
// answer is only checked against the challenge by the handler.
func NewFinalizeOrderCommand(observations, answer string) FinalizeOrderCommand {
	return FinalizeOrderCommand{
		observations: observations,
		answer:       answer,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// Observations returns the customer's free-form notes for the pickup crew.
func (c FinalizeOrderCommand) Observations() string {
	return c.observations
}

// Answer returns the text typed as the challenge sum.
func (c FinalizeOrderCommand) Answer() string {
	return c.answer
}
