package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// GoBackCommandHandler steps the wizard back one screen.
type GoBackCommandHandler struct {
	session ports.WizardSession
}

// NewGoBackCommandHandler creates a handler for backward navigation.
func NewGoBackCommandHandler(session ports.WizardSession) GoBackCommandHandler {
	return GoBackCommandHandler{session: session}
}

// Handle moves one screen back. Entered data is kept; only the challenge is
// dropped when leaving Observations.
func (h *GoBackCommandHandler) Handle(ctx context.Context, cmd GoBackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.Back()
	})
}
