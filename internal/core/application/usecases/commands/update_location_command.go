package commands

import (
	"errors"
	"fmt"
	"slices"

	"pickup/internal/core/domain/model/address"
	"pickup/internal/pkg/errs"
	"pickup/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// LocationDetails is the content of the location screen as typed by the customer.
// Sector is ignored outside the capital, where it is fixed to the county code.
type LocationDetails struct {
	FullName string
	Phone    string
	Email    string

	Locality   string
	Sector     string
	StreetType string
	StreetName string
	Number     string

	Building  string
	Scara     string
	Floor     string
	Intercom  string
	Apartment string
}

// UpdateLocationCommand replaces the address draft. Completeness is not checked
// here; SubmitLocationCommand does that.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	details LocationDetails

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand rejects street types that are not offered by the form.
func NewUpdateLocationCommand(details LocationDetails) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDetails(details); err != nil {
		return UpdateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// Details returns the address draft fields as typed.
func (c UpdateLocationCommand) Details() LocationDetails {
	return c.details
}

func (c *UpdateLocationCommand) setDetails(details LocationDetails) error {
	if !slices.Contains(address.StreetTypes(), details.StreetType) {
		return errs.NewValueIsInvalidErrorWithCause(
			"street type",
			fmt.Errorf("%q is not one of %v", details.StreetType, address.StreetTypes()),
		)
	}

	c.details = details
	return nil
}
