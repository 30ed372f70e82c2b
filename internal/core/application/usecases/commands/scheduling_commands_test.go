package commands_test

import (
	"testing"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShiftMonthCommand(t *testing.T) {
	for _, delta := range []int{-12, -1, 0, 1, 12} {
		cmd, err := commands.NewShiftMonthCommand(delta)
		require.NoError(t, err)
		assert.Equal(t, delta, cmd.Delta())
	}

	for _, delta := range []int{-13, 13, 1000} {
		_, err := commands.NewShiftMonthCommand(delta)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewSelectDateCommand(t *testing.T) {
	_, err := commands.NewSelectDateCommand(kernel.Date{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewSelectDateCommand(mustDate(t, "2025-06-03"))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", cmd.Date().String())
}

func TestShiftMonthCommandHandler_Handle(t *testing.T) {
	s := newSession(t)
	toScheduling(t, s)
	h := commands.NewShiftMonthCommandHandler(s)
	cmd, err := commands.NewShiftMonthCommand(-6)
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))

	cal := s.w.Calendar()
	year, month := cal.ViewedMonth()
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, int(month))

	require.ErrorIs(t, h.Handle(t.Context(), commands.ShiftMonthCommand{}), commands.ErrShiftMonthCommandIsNotConstructed)
}

func TestSelectDateCommandHandler_Handle(t *testing.T) {
	t.Run("bookable day", func(t *testing.T) {
		s := newSession(t)
		toScheduling(t, s)
		h := commands.NewSelectDateCommandHandler(s)
		cmd, err := commands.NewSelectDateCommand(mustDate(t, "2025-06-07"))
		require.NoError(t, err)

		require.NoError(t, h.Handle(t.Context(), cmd))

		cal := s.w.Calendar()
		assert.Equal(t, "2025-06-07", cal.Selected().String())
	})

	t.Run("sunday", func(t *testing.T) {
		s := newSession(t)
		toScheduling(t, s)
		h := commands.NewSelectDateCommandHandler(s)
		cmd, err := commands.NewSelectDateCommand(mustDate(t, "2025-06-08"))
		require.NoError(t, err)

		require.ErrorIs(t, h.Handle(t.Context(), cmd), schedule.ErrDateIsBlocked)
	})
}

func TestSubmitScheduleCommandHandler_Handle(t *testing.T) {
	t.Run("without a date", func(t *testing.T) {
		s := newSession(t)
		toScheduling(t, s)
		h := commands.NewSubmitScheduleCommandHandler(s)

		err := h.Handle(t.Context(), commands.NewSubmitScheduleCommand())

		require.ErrorIs(t, err, schedule.ErrDateIsRequired)
		cal := s.w.Calendar()
		assert.Equal(t, schedule.DateRequiredMessage, cal.Message())
	})

	t.Run("with a date", func(t *testing.T) {
		s := newSession(t)
		toScheduling(t, s)
		require.NoError(t, s.w.SelectDate(mustDate(t, "2025-06-03")))
		h := commands.NewSubmitScheduleCommandHandler(s)

		require.NoError(t, h.Handle(t.Context(), commands.NewSubmitScheduleCommand()))

		assert.Equal(t, wizard.Observations, s.w.Screen())
		assert.False(t, s.w.Challenge().IsZero())
	})
}

func TestRolloverDayCommandHandler_Handle(t *testing.T) {
	_, err := commands.NewRolloverDayCommand(kernel.Date{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	s := newSession(t)
	toObservations(t, s)
	h := commands.NewRolloverDayCommandHandler(s)
	cmd, err := commands.NewRolloverDayCommand(mustDate(t, "2025-06-03"))
	require.NoError(t, err)

	require.NoError(t, h.Handle(t.Context(), cmd))

	assert.Equal(t, wizard.Scheduling, s.w.Screen())
	assert.True(t, s.w.Info().Date.IsZero())
}
