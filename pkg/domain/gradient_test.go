package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

func TestNewColorStop(t *testing.T) {
	t.Run("Valid Stops Round-Trip", func(t *testing.T) {
		cases := []struct {
			color  string
			offset int
		}{
			{"#ff5555", 0},
			{"#50FA7B", 100},
			{"#000000", 50},
			{"#AbCdEf", 33},
		}
		for _, tc := range cases {
			stop, err := domain.NewColorStop(tc.color, tc.offset)
			require.NoError(t, err)
			assert.Equal(t, tc.color, stop.Color)
			assert.Equal(t, tc.offset, stop.Offset)
		}
	})

	t.Run("Invalid Color", func(t *testing.T) {
		for _, color := range []string{"", "ff5555", "#fff", "#ff55", "#ff555g", "#ff55555", "red"} {
			_, err := domain.NewColorStop(color, 0)
			assert.ErrorIs(t, err, domain.ErrValidation, "color %q", color)
		}
	})

	t.Run("Offset Out Of Range", func(t *testing.T) {
		for _, offset := range []int{-1, 101, 1000} {
			_, err := domain.NewColorStop("#ff5555", offset)
			assert.ErrorIs(t, err, domain.ErrValidation, "offset %d", offset)
		}
	})
}

func TestPresetCatalogue(t *testing.T) {
	t.Run("Rainbow Preset Shape", func(t *testing.T) {
		stops, ok := domain.PresetStops("sweet_dracula")
		require.True(t, ok)
		require.Len(t, stops, 7)

		offsets := make([]int, len(stops))
		for i, s := range stops {
			offsets[i] = s.Offset
		}
		assert.Equal(t, []int{0, 16, 33, 50, 66, 83, 100}, offsets)
	})

	t.Run("Solid Preset Has Identical Endpoints", func(t *testing.T) {
		stops, ok := domain.PresetStops("mono_white")
		require.True(t, ok)
		require.Len(t, stops, 2)
		assert.Equal(t, stops[0].Color, stops[1].Color)
		assert.Equal(t, 0, stops[0].Offset)
		assert.Equal(t, 100, stops[1].Offset)
	})

	t.Run("Unknown Preset", func(t *testing.T) {
		_, ok := domain.PresetStops("nope")
		assert.False(t, ok)
	})

	t.Run("Names Cover Catalogue", func(t *testing.T) {
		names := domain.PresetNames()
		assert.Equal(t, []string{"cyber_cyan", "dracula_purple", "mono_white", "sunset", "sweet_dracula"}, names)
		for _, name := range names {
			stops, ok := domain.PresetStops(name)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, len(stops), 2, "preset %s", name)
		}
	})
}

func TestStopsSample(t *testing.T) {
	stops, _ := domain.PresetStops("cyber_cyan")

	t.Run("Endpoints", func(t *testing.T) {
		assert.Equal(t, "#8be9fd", stops.Sample(0).Hex())
		assert.Equal(t, "#50fa7b", stops.Sample(1).Hex())
	})

	t.Run("Clamped", func(t *testing.T) {
		assert.Equal(t, stops.Sample(0), stops.Sample(-3))
		assert.Equal(t, stops.Sample(1), stops.Sample(42))
	})

	t.Run("Midpoint Blends", func(t *testing.T) {
		mid := stops.Sample(0.5)
		assert.NotEqual(t, stops.Sample(0), mid)
		assert.NotEqual(t, stops.Sample(1), mid)
	})

	t.Run("Empty Gradient", func(t *testing.T) {
		assert.Equal(t, "#000000", domain.Stops{}.Sample(0.5).Hex())
	})
}
