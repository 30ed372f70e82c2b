package commands

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// OrderDispatcher hands a finished order over for delivery without blocking.
type OrderDispatcher interface {
	Dispatch(ctx context.Context, order wizard.Order)
}

// FinalizeOrderCommandHandler checks the challenge answer and, when it is
// right, moves the wizard to the success screen and dispatches the order.
// The customer sees the confirmation whatever happens to the delivery later.
//
// Example:
//
//	handler := NewFinalizeOrderCommandHandler(session, dispatcher)
//	number, err := handler.Handle(ctx, NewFinalizeOrderCommand("Covor de lână", "7"))
//	if errors.Is(err, challenge.ErrAnswerMismatch) {
//	    // show the new question and the mismatch message
//	}
//	fmt.Println("Comanda", number)
type FinalizeOrderCommandHandler struct {
	session    ports.WizardSession
	dispatcher OrderDispatcher
}

// NewFinalizeOrderCommandHandler creates a handler that finishes the wizard in
// session and passes the resulting order to dispatcher.
func NewFinalizeOrderCommandHandler(session ports.WizardSession, dispatcher OrderDispatcher) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		session:    session,
		dispatcher: dispatcher,
	}
}

// Handle returns the number of the finished order.
func (h *FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var order wizard.Order
	err := h.session.Update(ctx, func(w *wizard.Wizard) error {
		var err error
		order, err = w.Finalize(cmd.Observations(), cmd.Answer())
		return err
	})
	if err != nil {
		return "", err
	}

	h.dispatcher.Dispatch(ctx, order)
	return order.Number, nil
}
