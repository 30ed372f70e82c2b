package commands

import (
	"context"

	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// UpdateItemCommandHandler applies a carpet dimension edit in a single session
// update, so readers never see one dimension changed without the other. An
// unknown item yields an *errs.ObjectNotFoundError and changes nothing.
type UpdateItemCommandHandler struct {
	session ports.WizardSession
}

// NewUpdateItemCommandHandler creates a handler editing carpets in session.
func NewUpdateItemCommandHandler(session ports.WizardSession) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{session: session}
}

// Handle applies every edit of cmd. Edits are only allowed on the calculator.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.session.Update(ctx, func(w *wizard.Wizard) error {
		for _, dimension := range []string{carpet.Length, carpet.Width} {
			value, ok := cmd.Value(dimension)
			if !ok {
				continue
			}
			if err := w.UpdateItem(cmd.ItemID(), dimension, value); err != nil {
				return err
			}
		}
		return nil
	})
}
