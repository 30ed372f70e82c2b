package commands

import (
	"context"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// AddItemCommandHandler appends an empty carpet and returns its id, so the
// caller can address it in later edits.
//
// Example:
//
//	handler := NewAddItemCommandHandler(session)
//	id, err := handler.Handle(ctx, NewAddItemCommand())
//	if err != nil {
//	    return err
//	}
//	cmd, _ := NewUpdateItemCommand(id, map[string]string{carpet.Length: "250"})
type AddItemCommandHandler struct {
	session ports.WizardSession
}

// NewAddItemCommandHandler creates a handler adding carpets to the session's wizard.
func NewAddItemCommandHandler(session ports.WizardSession) AddItemCommandHandler {
	return AddItemCommandHandler{session: session}
}

// Handle appends an empty carpet and returns its id, which the client needs
// to edit the new row.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var id kernel.UUID
	err := h.session.Update(ctx, func(w *wizard.Wizard) error {
		item, err := w.AddItem()
		if err != nil {
			return err
		}
		id = item.ID()
		return nil
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}
