package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// ProceedToLocationCommandHandler moves the wizard from the calculator to the location screen.
type ProceedToLocationCommandHandler struct {
	session ports.WizardSession
}

// NewProceedToLocationCommandHandler creates a handler for the calculator's next button.
func NewProceedToLocationCommandHandler(session ports.WizardSession) ProceedToLocationCommandHandler {
	return ProceedToLocationCommandHandler{session: session}
}

// Handle advances to Location. Carpet dimensions are never validated here.
func (h *ProceedToLocationCommandHandler) Handle(ctx context.Context, cmd ProceedToLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.ProceedToLocation()
	})
}
