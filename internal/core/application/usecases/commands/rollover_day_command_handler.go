package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// RolloverDayCommandHandler moves the wizard's notion of today forward. A
// chosen pickup date that became unavailable is dropped.
type RolloverDayCommandHandler struct {
	session ports.WizardSession
}

// NewRolloverDayCommandHandler creates the handler run by the midnight job.
func NewRolloverDayCommandHandler(session ports.WizardSession) RolloverDayCommandHandler {
	return RolloverDayCommandHandler{session: session}
}

// Handle applies the new day to availability. A selected date that became
// unavailable is cleared.
func (h *RolloverDayCommandHandler) Handle(ctx context.Context, cmd RolloverDayCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		w.SetToday(cmd.Today())
		return nil
	})
}
