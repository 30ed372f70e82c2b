package carpet_test

import (
	"testing"

	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"250", 250},
		{" 250 ", 250},
		{"250cm", 250},
		{"250.5", 250.5},
		{"250.", 250},
		{".5", 0.5},
		{"2,5", 2},
		{"1e2", 100},
		{"-40", 0},
		{"1e400", 0},
		{"1e200", 1e200},
		{"x250", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, carpet.ParseDimension(tt.input), 1e-9)
		})
	}
}

func TestItem(t *testing.T) {
	t.Run("new item is empty and inactive", func(t *testing.T) {
		item := carpet.NewItem()

		require.NoError(t, item.ID().Validate())
		assert.Empty(t, item.Length())
		assert.Empty(t, item.Width())
		assert.Zero(t, item.Area())
		assert.False(t, item.IsActive())
	})

	t.Run("area is in square metres", func(t *testing.T) {
		item := carpet.NewItem()
		require.NoError(t, item.Set(carpet.Length, "250"))
		require.NoError(t, item.Set(carpet.Width, "200"))

		assert.InDelta(t, 5.0, item.Area(), 1e-9)
		assert.True(t, item.IsActive())
	})

	t.Run("partial input keeps the raw text", func(t *testing.T) {
		item := carpet.NewItem()
		require.NoError(t, item.Set(carpet.Length, "25."))

		assert.Equal(t, "25.", item.Length())
		assert.InDelta(t, 25.0, item.LengthCm(), 1e-9)
		assert.False(t, item.IsActive())
	})

	t.Run("unknown dimension is rejected", func(t *testing.T) {
		item := carpet.NewItem()

		err := item.Set("height", "10")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restore requires a valid id", func(t *testing.T) {
		_, err := carpet.RestoreItem(kernel.UUID{}, "1", "1")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		id := kernel.NewUUID()
		item, err := carpet.RestoreItem(id, "300", "150")
		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.InDelta(t, 4.5, item.Area(), 1e-9)
	})
}
