package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// SubmitLocationCommandHandler validates the address draft. On failure it returns
// an *errs.FieldsAreInvalidError and the field messages stay on the wizard.
type SubmitLocationCommandHandler struct {
	session ports.WizardSession
}

// NewSubmitLocationCommandHandler creates a handler for the Location screen's next button.
func NewSubmitLocationCommandHandler(session ports.WizardSession) SubmitLocationCommandHandler {
	return SubmitLocationCommandHandler{session: session}
}

// Handle validates the address. Problems come back as an
// *errs.FieldsAreInvalidError and the wizard stays on Location.
func (h *SubmitLocationCommandHandler) Handle(ctx context.Context, cmd SubmitLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.SubmitLocation()
	})
}
