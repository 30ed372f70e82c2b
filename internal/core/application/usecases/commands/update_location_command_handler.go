package commands

import (
	"context"

	"pickup/internal/core/domain/model/address"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// UpdateLocationCommandHandler copies the typed details into the address draft.
// The locality is applied before the sector so that leaving the capital locks
// the sector to the county code.
type UpdateLocationCommandHandler struct {
	session ports.WizardSession
}

// NewUpdateLocationCommandHandler creates a handler editing the address draft.
func NewUpdateLocationCommandHandler(session ports.WizardSession) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{session: session}
}

// Handle replaces the draft. The sector is only written while the locality
// allows choosing one.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.EditForm(func(f *address.Form) error {
			f.FullName = d.FullName
			f.Phone = d.Phone
			f.Email = d.Email
			f.StreetType = d.StreetType
			f.StreetName = d.StreetName
			f.Number = d.Number
			f.Building = d.Building
			f.Scara = d.Scara
			f.Floor = d.Floor
			f.Intercom = d.Intercom
			f.Apartment = d.Apartment

			f.SetLocality(d.Locality)
			if !f.SectorEditable() {
				return nil
			}
			return f.SetSector(d.Sector)
		})
	})
}
