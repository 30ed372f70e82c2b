package ports

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
)

// WizardSession owns the wizard of the running process and serializes access
// to it. The wizard passed to fn must not be retained after fn returns.
type WizardSession interface {
	// Update runs fn with exclusive access to the wizard. Changes made by fn
	// are kept even when fn returns an error; the wizard itself guarantees
	// that failed actions do not change it.
	Update(ctx context.Context, fn func(w *wizard.Wizard) error) error

	// View runs fn with read access to the wizard. fn must not modify it.
	View(ctx context.Context, fn func(w *wizard.Wizard) error) error
}
