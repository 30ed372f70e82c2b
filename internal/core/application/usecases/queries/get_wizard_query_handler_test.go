package queries_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/address"
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	w   *wizard.Wizard
	err error
}

func (s *stubSession) Update(_ context.Context, fn func(w *wizard.Wizard) error) error {
	return fn(s.w)
}

func (s *stubSession) View(_ context.Context, fn func(w *wizard.Wizard) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(s.w)
}

func newWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	today := kernel.NewDate(2025, 6, 2)
	blocked := schedule.NewBlockList(kernel.NewDate(2025, 6, 4))
	w, err := wizard.New(carpet.DefaultPricing(), schedule.NewAvailability(today, blocked), rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)
	return w
}

func TestGetWizardQueryHandler_Handle(t *testing.T) {
	t.Run("initial wizard", func(t *testing.T) {
		h := queries.NewGetWizardQueryHandler(&stubSession{w: newWizard(t)})

		resp, err := h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.NoError(t, err)
		assert.Equal(t, "Calculator", resp.Screen)
		assert.Equal(t, 1, resp.Step)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "0.00", resp.Items[0].Area)
		assert.False(t, resp.Items[0].Active)
		assert.Equal(t, queries.TotalsView{
			TotalArea:                "0.00",
			TotalPrice:               "100.00",
			IsFreeShipping:           true,
			FreeShippingThreshold:    "100.00",
			Progress:                 100,
			RemainingForFreeShipping: "0.00",
			Shipping:                 carpet.FreeShippingLabel,
		}, resp.Totals)
		assert.Equal(t, queries.InfoView{}, resp.Info)
		assert.Equal(t, address.Capital, resp.Location.Locality)
		assert.True(t, resp.Location.SectorEditable)
		assert.Equal(t, "Str.", resp.Location.StreetType)
		assert.Equal(t, "0", resp.Location.Floor)
		assert.Empty(t, resp.Challenge)
		assert.Empty(t, resp.OrderNumber)
	})

	t.Run("calendar grid", func(t *testing.T) {
		h := queries.NewGetWizardQueryHandler(&stubSession{w: newWizard(t)})

		resp, err := h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.NoError(t, err)
		cal := resp.Calendar
		assert.Equal(t, "Iunie 2025", cal.Title)
		assert.Equal(t, 6, cal.Month)
		// 2025-06-01 is a Sunday.
		assert.Equal(t, 6, cal.Offset)
		require.Len(t, cal.Days, 36)
		assert.Empty(t, cal.Days[0].Date)
		first := cal.Days[6]
		assert.Equal(t, "2025-06-01", first.Date)
		assert.True(t, first.Blocked)
		assert.False(t, cal.Days[8].Blocked, "tuesday 3rd")
		assert.True(t, cal.Days[9].Blocked, "blocked 4th")
		assert.Empty(t, cal.Selected)
	})

	t.Run("progress and remaining below the threshold", func(t *testing.T) {
		pricing := carpet.DefaultPricing()
		pricing.MinPrice = 10
		pricing.FreeShippingThreshold = 200
		w, err := wizard.New(pricing, schedule.NewAvailability(kernel.NewDate(2025, 6, 2), schedule.NewBlockList()), rand.New(rand.NewPCG(1, 1)))
		require.NoError(t, err)
		id := w.Items()[0].ID()
		require.NoError(t, w.UpdateItem(id, carpet.Length, "250"))
		require.NoError(t, w.UpdateItem(id, carpet.Width, "100"))
		h := queries.NewGetWizardQueryHandler(&stubSession{w: w})

		resp, err := h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.NoError(t, err)
		assert.Equal(t, "2.50", resp.Items[0].Area)
		assert.Equal(t, "50.00", resp.Totals.TotalPrice)
		assert.InDelta(t, 25.0, resp.Totals.Progress, 1e-9)
		assert.Equal(t, "150.00", resp.Totals.RemainingForFreeShipping)
		assert.Equal(t, "15.00 lei", resp.Totals.Shipping)
	})

	t.Run("oversized carpet still renders", func(t *testing.T) {
		w := newWizard(t)
		id := w.Items()[0].ID()
		require.NoError(t, w.UpdateItem(id, carpet.Length, "1e200"))
		require.NoError(t, w.UpdateItem(id, carpet.Width, "1e200"))
		h := queries.NewGetWizardQueryHandler(&stubSession{w: w})

		var (
			resp queries.GetWizardQueryResponse
			err  error
		)
		require.NotPanics(t, func() {
			resp, err = h.Handle(t.Context(), queries.NewGetWizardQuery())
		})

		require.NoError(t, err)
		assert.Equal(t, carpet.FormatAmount(math.MaxFloat64), resp.Totals.TotalPrice)
		assert.Equal(t, "0.00", resp.Totals.RemainingForFreeShipping)
		assert.InDelta(t, 100.0, resp.Totals.Progress, 1e-9)
	})

	t.Run("address problems and challenge", func(t *testing.T) {
		w := newWizard(t)
		require.NoError(t, w.ProceedToLocation())
		require.Error(t, w.SubmitLocation())
		h := queries.NewGetWizardQueryHandler(&stubSession{w: w})

		resp, err := h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.NoError(t, err)
		assert.Equal(t, address.MsgPhoneRequired, resp.Location.Errors[address.FieldPhone])

		require.NoError(t, w.EditForm(func(f *address.Form) error {
			f.FullName, f.Phone, f.Email = "Ion Popescu", "0712345678", "a@b.ro"
			f.StreetName, f.Number = "Victoriei", "10"
			return f.SetSector("1")
		}))
		require.NoError(t, w.SubmitLocation())
		require.NoError(t, w.SelectDate(kernel.NewDate(2025, 6, 3)))
		require.NoError(t, w.SubmitSchedule())

		resp, err = h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.NoError(t, err)
		assert.Equal(t, "Observations", resp.Screen)
		assert.Empty(t, resp.Location.Errors)
		assert.Equal(t, "2025-06-03", resp.Info.Date)
		assert.Equal(t, "2025-06-03", resp.Calendar.Selected)
		assert.Equal(t, w.Challenge().Question(), resp.Challenge.Question)
		assert.Empty(t, resp.Challenge.Message)
	})

	t.Run("session error", func(t *testing.T) {
		h := queries.NewGetWizardQueryHandler(&stubSession{err: errors.New("closed")})

		_, err := h.Handle(t.Context(), queries.NewGetWizardQuery())

		require.EqualError(t, err, "closed")
	})

	t.Run("zero value query", func(t *testing.T) {
		h := queries.NewGetWizardQueryHandler(&stubSession{w: newWizard(t)})

		_, err := h.Handle(t.Context(), queries.GetWizardQuery{})

		require.ErrorIs(t, err, queries.ErrGetWizardQueryIsNotConstructed)
	})
}
