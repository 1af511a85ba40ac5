package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

func TestParseStops(t *testing.T) {
	t.Run("Two Stops In Order", func(t *testing.T) {
		stops, err := domain.ParseStops("#ff0000:0,#0000ff:100")
		require.NoError(t, err)
		require.Len(t, stops, 2)
		assert.Equal(t, domain.ColorStop{Color: "#ff0000", Offset: 0}, stops[0])
		assert.Equal(t, domain.ColorStop{Color: "#0000ff", Offset: 100}, stops[1])
	})

	t.Run("Input Order Preserved Without Sorting", func(t *testing.T) {
		stops, err := domain.ParseStops("#0000ff:100,#ff0000:0,#00ff00:50")
		require.NoError(t, err)
		require.Len(t, stops, 3)
		assert.Equal(t, []int{100, 0, 50}, []int{stops[0].Offset, stops[1].Offset, stops[2].Offset})
	})

	t.Run("Whitespace Trimmed Per Pair", func(t *testing.T) {
		stops, err := domain.ParseStops("  #ff0000:0 , #0000ff:100  ")
		require.NoError(t, err)
		require.Len(t, stops, 2)
		assert.Equal(t, "#ff0000", stops[0].Color)
	})

	t.Run("Duplicate Offsets Allowed", func(t *testing.T) {
		stops, err := domain.ParseStops("#ff0000:50,#0000ff:50")
		require.NoError(t, err)
		assert.Len(t, stops, 2)
	})

	t.Run("Single Stop Fails Minimum", func(t *testing.T) {
		_, err := domain.ParseStops("#ff0000:0")
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "at least 2")
	})

	t.Run("Non-Integer Offset", func(t *testing.T) {
		_, err := domain.ParseStops("#ff0000:abc,#0000ff:100")
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "abc")
	})

	t.Run("Missing Colon", func(t *testing.T) {
		_, err := domain.ParseStops("#ff0000,#0000ff:100")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Invalid Color Propagates", func(t *testing.T) {
		_, err := domain.ParseStops("#ff00:0,#0000ff:100")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Offset Out Of Range Propagates", func(t *testing.T) {
		_, err := domain.ParseStops("#ff0000:0,#0000ff:101")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Empty String", func(t *testing.T) {
		_, err := domain.ParseStops("")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
