package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// SubmitScheduleCommandHandler confirms the pickup date and opens the observations
// screen with a fresh challenge. Without a selected date it returns
// schedule.ErrDateIsRequired.
type SubmitScheduleCommandHandler struct {
	session ports.WizardSession
}

// NewSubmitScheduleCommandHandler creates a handler for the Scheduling screen's next button.
func NewSubmitScheduleCommandHandler(session ports.WizardSession) SubmitScheduleCommandHandler {
	return SubmitScheduleCommandHandler{session: session}
}

// Handle confirms the selected day and opens Observations with a fresh
// challenge. Without a selection it returns schedule.ErrDateIsRequired.
func (h *SubmitScheduleCommandHandler) Handle(ctx context.Context, cmd SubmitScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.SubmitSchedule()
	})
}
