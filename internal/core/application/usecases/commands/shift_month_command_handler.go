package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// ShiftMonthCommandHandler pages the calendar. The selected date is unaffected.
type ShiftMonthCommandHandler struct {
	session ports.WizardSession
}

// NewShiftMonthCommandHandler creates a handler paging the session's calendar.
func NewShiftMonthCommandHandler(session ports.WizardSession) ShiftMonthCommandHandler {
	return ShiftMonthCommandHandler{session: session}
}

// Handle moves the viewed month. Paging is unbounded overall.
func (h *ShiftMonthCommandHandler) Handle(ctx context.Context, cmd ShiftMonthCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		return w.ShiftMonth(cmd.Delta())
	})
}
