package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// SelectDateCommandHandler selects the pickup day. Unavailable days fail with
// schedule.ErrDateIsBlocked and the previous selection is kept.
type SelectDateCommandHandler struct {
	session ports.WizardSession
}

// NewSelectDateCommandHandler creates a handler for calendar day clicks.
func NewSelectDateCommandHandler(session ports.WizardSession) SelectDateCommandHandler {
	return SelectDateCommandHandler{session: session}
}

// Handle selects the day on the Scheduling screen. Blocked days return
// schedule.ErrDateIsBlocked and keep the previous selection.
func (h *SelectDateCommandHandler) Handle(ctx context.Context, cmd SelectDateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.SelectDate(cmd.Date())
	})
}
