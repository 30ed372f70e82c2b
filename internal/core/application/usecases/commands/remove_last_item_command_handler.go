package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// RemoveLastItemCommandHandler drops the last carpet and reports whether one was removed.
type RemoveLastItemCommandHandler struct {
	session ports.WizardSession
}

// NewRemoveLastItemCommandHandler creates a handler removing carpets from the session's wizard.
func NewRemoveLastItemCommandHandler(session ports.WizardSession) RemoveLastItemCommandHandler {
	return RemoveLastItemCommandHandler{session: session}
}

// Handle removes the last carpet and reports whether one was removed. The
// only carpet is never removed.
func (h *RemoveLastItemCommandHandler) Handle(ctx context.Context, cmd RemoveLastItemCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var removed bool
	err := h.session.Update(ctx, func(w *wizard.Wizard) error {
		var err error
		removed, err = w.RemoveLastItem()
		return err
	})

	return removed, err
}
