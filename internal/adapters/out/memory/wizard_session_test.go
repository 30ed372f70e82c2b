package memory_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"pickup/internal/adapters/out/memory"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *memory.WizardSession {
	t.Helper()
	availability := schedule.NewAvailability(kernel.NewDate(2025, 6, 2), schedule.NewBlockList())
	w, err := wizard.New(carpet.DefaultPricing(), availability, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return memory.NewWizardSession(w)
}

func TestWizardSession_ConcurrentUpdates(t *testing.T) {
	s := newSession(t)
	ctx := t.Context()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(ctx, func(w *wizard.Wizard) error {
				_, err := w.AddItem()
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int
	require.NoError(t, s.View(ctx, func(w *wizard.Wizard) error {
		count = len(w.Items())
		return nil
	}))
	assert.Equal(t, 51, count)
}

func TestWizardSession_CancelledContext(t *testing.T) {
	s := newSession(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	called := false

	err := s.Update(ctx, func(*wizard.Wizard) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	err = s.View(ctx, func(*wizard.Wizard) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestWizardSession_ReturnsCallbackError(t *testing.T) {
	s := newSession(t)

	err := s.Update(t.Context(), func(w *wizard.Wizard) error {
		return w.Back()
	})

	require.ErrorIs(t, err, wizard.ErrActionNotAllowed)
}
