package kernel_test

import (
	"testing"
	"time"

	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("should parse ISO date", func(t *testing.T) {
		d, err := kernel.ParseDate("2025-06-10")

		require.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 10, d.Day())
		assert.Equal(t, time.Tuesday, d.Weekday())
		assert.Equal(t, "2025-06-10", d.String())
	})

	t.Run("should equal the constructed date", func(t *testing.T) {
		d, err := kernel.ParseDate("2025-12-25")

		require.NoError(t, err)
		assert.Equal(t, kernel.NewDate(2025, time.December, 25), d)
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.ParseDate("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		for _, input := range []string{"10.06.2025", "2025-6-10", "2025-02-30", "tomorrow"} {
			_, err := kernel.ParseDate(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestNewDate(t *testing.T) {
	t.Run("should normalize month overflow", func(t *testing.T) {
		assert.Equal(t, kernel.NewDate(2026, time.January, 1), kernel.NewDate(2025, time.Month(13), 1))
	})

	t.Run("should normalize day zero to previous month end", func(t *testing.T) {
		assert.Equal(t, "2024-02-29", kernel.NewDate(2024, time.March, 0).String())
	})
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("EEST", 3*60*60)
	// 23:30 UTC on the 9th is already the 10th in Bucharest summer time.
	instant := time.Date(2025, time.June, 9, 23, 30, 0, 0, time.UTC).In(loc)

	assert.Equal(t, "2025-06-10", kernel.DateOf(instant).String())
}

func TestDate_Comparison(t *testing.T) {
	d := kernel.NewDate(2025, time.June, 10)
	next := d.AddDays(1)

	assert.True(t, d.Before(next))
	assert.True(t, next.After(d))
	assert.False(t, d.After(d))
	assert.False(t, d.Before(d))
	assert.Equal(t, d, next.AddDays(-1))
}

func TestDate_Zero(t *testing.T) {
	var d kernel.Date

	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())
	assert.False(t, kernel.NewDate(2025, time.June, 10).IsZero())
}
