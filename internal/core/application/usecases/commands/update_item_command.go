package commands

import (
	"errors"
	"fmt"
	"maps"

	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand sets one or both dimensions of a carpet to the text the
// customer typed. Values are kept verbatim; anything that is not a number
// simply counts as 0. All edits of one command are applied together.
//
// Example:
//
//	cmd, err := NewUpdateItemCommand(itemID, map[string]string{
//	    carpet.Length: "250",
//	    carpet.Width:  "180",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid carpet edit: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	values map[string]string

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand validates the item id and that values holds at least
// one entry, keyed by carpet.Length or carpet.Width.
func NewUpdateItemCommand(itemID kernel.UUID, values map[string]string) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setValues(values),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ItemID identifies the carpet to edit.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Value returns the new text for dimension and whether the command changes it.
func (c UpdateItemCommand) Value(dimension string) (string, bool) {
	v, ok := c.values[dimension]
	return v, ok
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setValues(values map[string]string) error {
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("dimensions")
	}
	for dimension := range values {
		if dimension != carpet.Length && dimension != carpet.Width {
			return errs.NewValueIsInvalidErrorWithCause(
				"dimension",
				fmt.Errorf("%q is neither %q nor %q", dimension, carpet.Length, carpet.Width),
			)
		}
	}

	c.values = maps.Clone(values)
	return nil
}
