package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// RestartCommandHandler clears the finished order and returns to the calculator.
type RestartCommandHandler struct {
	session ports.WizardSession
}

// NewRestartCommandHandler creates a handler resetting the session's wizard.
func NewRestartCommandHandler(session ports.WizardSession) RestartCommandHandler {
	return RestartCommandHandler{session: session}
}

// Handle resets carpets, order details, calendar and challenge and returns
// to the calculator.
func (h *RestartCommandHandler) Handle(ctx context.Context, cmd RestartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.Restart()
	})
}
