package commands_test

import (
	"context"
	"math/rand/v2"
	"strconv"
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubSession holds one wizard without any locking; tests are sequential.
type stubSession struct {
	w *wizard.Wizard
}

func (s *stubSession) Update(_ context.Context, fn func(w *wizard.Wizard) error) error {
	return fn(s.w)
}

func (s *stubSession) View(_ context.Context, fn func(w *wizard.Wizard) error) error {
	return fn(s.w)
}

type MockWizardSession struct{ mock.Mock }

func (m *MockWizardSession) Update(ctx context.Context, fn func(w *wizard.Wizard) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockWizardSession) View(ctx context.Context, fn func(w *wizard.Wizard) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

type MockOrderDispatcher struct{ mock.Mock }

func (m *MockOrderDispatcher) Dispatch(ctx context.Context, order wizard.Order) {
	m.Called(ctx, order)
}

type MockOrderSubmitter struct{ mock.Mock }

func (m *MockOrderSubmitter) Submit(ctx context.Context, order wizard.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

// newSession starts a wizard on Monday 2025-06-02.
func newSession(t *testing.T) *stubSession {
	t.Helper()
	availability := schedule.NewAvailability(mustDate(t, "2025-06-02"), schedule.NewBlockList())
	w, err := wizard.New(carpet.DefaultPricing(), availability, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	return &stubSession{w: w}
}

func validDetails() commands.LocationDetails {
	return commands.LocationDetails{
		FullName:   "Ion Popescu",
		Phone:      "0712345678",
		Email:      "a@b.ro",
		Locality:   "București",
		Sector:     "2",
		StreetType: "Str.",
		StreetName: "Victoriei",
		Number:     "10",
	}
}

func toLocation(t *testing.T, s *stubSession) {
	t.Helper()
	require.NoError(t, s.w.ProceedToLocation())
}

func toScheduling(t *testing.T, s *stubSession) {
	t.Helper()
	toLocation(t, s)
	cmd, err := commands.NewUpdateLocationCommand(validDetails())
	require.NoError(t, err)
	h := commands.NewUpdateLocationCommandHandler(s)
	require.NoError(t, h.Handle(t.Context(), cmd))
	require.NoError(t, s.w.SubmitLocation())
}

func toObservations(t *testing.T, s *stubSession) {
	t.Helper()
	toScheduling(t, s)
	require.NoError(t, s.w.SelectDate(mustDate(t, "2025-06-03")))
	require.NoError(t, s.w.SubmitSchedule())
}

func toSuccess(t *testing.T, s *stubSession) {
	t.Helper()
	toObservations(t, s)
	_, err := s.w.Finalize("", strconv.Itoa(s.w.Challenge().Sum()))
	require.NoError(t, err)
}
