// Package memory keeps the wizard of the running process in memory.
package memory

import (
	"context"
	"sync"

	"pickup/internal/core/domain/model/wizard"
)

// WizardSession guards the single wizard of the process. Writers are
// serialized; readers may run together.
type WizardSession struct {
	mu     sync.RWMutex
	wizard *wizard.Wizard
}

func NewWizardSession(w *wizard.Wizard) *WizardSession {
	return &WizardSession{wizard: w}
}

// Update runs fn under the write lock. A cancelled ctx is reported before
// the lock is taken.
func (s *WizardSession) Update(ctx context.Context, fn func(w *wizard.Wizard) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.wizard)
}

// View runs fn under the read lock.
func (s *WizardSession) View(ctx context.Context, fn func(w *wizard.Wizard) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.wizard)
}
