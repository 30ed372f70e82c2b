package schedule_test

import (
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/core/domain/model/schedule"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendar(t *testing.T, today string, blocked ...string) schedule.Calendar {
	t.Helper()
	list, err := schedule.ParseBlockList(blocked)
	require.NoError(t, err)
	return schedule.NewCalendar(schedule.NewAvailability(mustDate(t, today), list))
}

func TestCalendar_Navigation(t *testing.T) {
	t.Run("opens on today's month", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")

		year, month := c.ViewedMonth()
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.June, month)
	})

	t.Run("rolls over the year in both directions", func(t *testing.T) {
		c := newCalendar(t, "2025-12-30")

		c.NextMonth()
		year, month := c.ViewedMonth()
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.January, month)

		c.PrevMonth()
		c.PrevMonth()
		year, month = c.ViewedMonth()
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.November, month)
	})

	t.Run("shifts far without bounds", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")

		c.ShiftMonth(-30)
		year, month := c.ViewedMonth()
		assert.Equal(t, 2022, year)
		assert.Equal(t, time.December, month)
	})

	t.Run("viewing another month keeps the selection", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")
		require.NoError(t, c.Select(mustDate(t, "2025-06-12")))

		c.NextMonth()

		assert.Equal(t, "2025-06-12", c.Selected().String())
	})
}

func TestCalendar_Select(t *testing.T) {
	t.Run("selects an available day", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")

		require.NoError(t, c.Select(mustDate(t, "2025-06-12")))

		assert.Equal(t, mustDate(t, "2025-06-12"), c.Selected())
	})

	t.Run("only one day is selected at a time", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")
		require.NoError(t, c.Select(mustDate(t, "2025-06-12")))
		require.NoError(t, c.Select(mustDate(t, "2025-06-13")))

		selected := 0
		for _, cell := range c.Grid().Cells {
			if cell.Selected {
				selected++
				assert.Equal(t, 13, cell.Day)
			}
		}
		assert.Equal(t, 1, selected)
	})

	t.Run("blocked day is a no-op", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10", "2025-06-20")
		require.NoError(t, c.Select(mustDate(t, "2025-06-12")))

		for _, d := range []string{"2025-06-10", "2025-06-15", "2025-06-20", "2025-06-01"} {
			err := c.Select(mustDate(t, d))

			require.ErrorIs(t, err, schedule.ErrDateIsBlocked, d)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, d)
			assert.Equal(t, "2025-06-12", c.Selected().String(), d)
		}
	})

	t.Run("selecting clears the validation message", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")
		_, err := c.Confirm()
		require.ErrorIs(t, err, schedule.ErrDateIsRequired)
		require.Equal(t, schedule.DateRequiredMessage, c.Message())

		require.NoError(t, c.Select(mustDate(t, "2025-06-11")))

		assert.Empty(t, c.Message())
	})
}

func TestCalendar_Confirm(t *testing.T) {
	t.Run("requires a selection", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")

		d, err := c.Confirm()

		require.ErrorIs(t, err, schedule.ErrDateIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.True(t, d.IsZero())
		assert.Equal(t, "Vă rugăm selectați o dată pentru colectare.", c.Message())
	})

	t.Run("returns the selection", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")
		require.NoError(t, c.Select(mustDate(t, "2025-06-14")))

		d, err := c.Confirm()

		require.NoError(t, err)
		assert.Equal(t, "2025-06-14", d.String())
	})
}

func TestCalendar_SetToday(t *testing.T) {
	t.Run("drops a selection that became unavailable", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")
		require.NoError(t, c.Select(mustDate(t, "2025-06-11")))

		c.SetToday(mustDate(t, "2025-06-11"))

		assert.True(t, c.Selected().IsZero())
		assert.True(t, c.Availability().IsBlocked(mustDate(t, "2025-06-11")))
	})

	t.Run("keeps a selection that is still available", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10", "2025-06-20")
		require.NoError(t, c.Select(mustDate(t, "2025-06-13")))

		c.SetToday(mustDate(t, "2025-06-11"))

		assert.Equal(t, "2025-06-13", c.Selected().String())
		assert.True(t, c.Availability().BlockList().Contains(mustDate(t, "2025-06-20")))
	})
}

func TestCalendar_Reset(t *testing.T) {
	c := newCalendar(t, "2025-06-10")
	require.NoError(t, c.Select(mustDate(t, "2025-06-12")))
	c.NextMonth()

	c.Reset()

	year, month := c.ViewedMonth()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.June, month)
	assert.True(t, c.Selected().IsZero())
	assert.Empty(t, c.Message())
}

func TestCalendar_Grid(t *testing.T) {
	t.Run("june 2025 starts on a sunday", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10", "2025-06-20")

		grid := c.Grid()

		assert.Equal(t, "Iunie 2025", grid.Title)
		assert.Equal(t, 6, grid.Offset)
		require.Len(t, grid.Cells, 6+30)
		for i := range grid.Offset {
			assert.True(t, grid.Cells[i].IsEmpty())
		}
		first := grid.Cells[grid.Offset]
		assert.Equal(t, 1, first.Day)
		assert.Equal(t, "2025-06-01", first.Date.String())

		byDay := map[int]schedule.Cell{}
		for _, cell := range grid.Cells[grid.Offset:] {
			byDay[cell.Day] = cell
		}
		assert.True(t, byDay[10].Blocked)
		assert.True(t, byDay[15].Blocked)
		assert.True(t, byDay[20].Blocked)
		assert.False(t, byDay[12].Blocked)
	})

	t.Run("month starting on monday has no offset", func(t *testing.T) {
		c := newCalendar(t, "2025-09-01")

		grid := c.Grid()

		assert.Equal(t, "Septembrie 2025", grid.Title)
		assert.Zero(t, grid.Offset)
		assert.Len(t, grid.Cells, 30)
	})

	t.Run("leap february", func(t *testing.T) {
		c := newCalendar(t, "2024-02-10")

		grid := c.Grid()

		assert.Equal(t, 3, grid.Offset) // 2024-02-01 is a Thursday
		assert.Len(t, grid.Cells, 3+29)
	})

	t.Run("weeks are seven columns wide", func(t *testing.T) {
		c := newCalendar(t, "2025-06-10")

		weeks := c.Grid().Weeks()

		require.Len(t, weeks, 6)
		for _, week := range weeks {
			assert.Len(t, week, 7)
		}
		assert.Equal(t, 1, weeks[0][6].Day)
		assert.Equal(t, 30, weeks[5][0].Day)
		assert.True(t, weeks[5][1].IsEmpty())
	})
}

func TestMondayOffset(t *testing.T) {
	assert.Equal(t, 0, schedule.MondayOffset(time.Monday))
	assert.Equal(t, 5, schedule.MondayOffset(time.Saturday))
	assert.Equal(t, 6, schedule.MondayOffset(time.Sunday))
}

func TestCalendar_SelectedDateOutsideViewedMonth(t *testing.T) {
	c := newCalendar(t, "2025-06-28")
	require.NoError(t, c.Select(kernel.NewDate(2025, time.July, 1)))

	for _, cell := range c.Grid().Cells {
		assert.False(t, cell.Selected)
	}
}
