package domain

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// hexColorPattern accepts exactly six hex digits after the leading '#'.
// Three-digit shorthand is deliberately rejected to keep stop colors canonical.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorStop is one anchor of a gradient: a color at a position along the
// left-to-right axis. Construct via NewColorStop; a ColorStop that exists
// has already been validated.
type ColorStop struct {
	Color  string // "#RRGGBB"
	Offset int    // percent, 0-100
}

// NewColorStop validates and constructs a ColorStop.
func NewColorStop(color string, offset int) (ColorStop, error) {
	if !hexColorPattern.MatchString(color) {
		return ColorStop{}, fmt.Errorf("%w: invalid hex color %q, expected #RRGGBB", ErrValidation, color)
	}
	if offset < 0 || offset > 100 {
		return ColorStop{}, fmt.Errorf("%w: offset must be 0-100, got %d", ErrValidation, offset)
	}
	return ColorStop{Color: color, Offset: offset}, nil
}

// Stops is an ordered gradient definition. Order is the left-to-right
// traversal order; it is never sorted and duplicate offsets are allowed
// (later stops simply win visually, per standard gradient rendering).
type Stops []ColorStop

// Sample returns the interpolated color at t in [0,1] along the gradient
// axis, blending in RGB space. It is used for terminal previews only and
// has no effect on document output. Sampling an empty gradient returns
// black; t is clamped to [0,1].
func (s Stops) Sample(t float64) colorful.Color {
	if len(s) == 0 {
		return colorful.Color{}
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	pos := t * 100

	// Stops are in input order, not offset order; sample against an
	// offset-sorted view so overlapping definitions still blend sanely.
	ordered := make(Stops, len(s))
	copy(ordered, s)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Offset < ordered[j].Offset })

	if pos <= float64(ordered[0].Offset) {
		return mustHex(ordered[0].Color)
	}
	last := ordered[len(ordered)-1]
	if pos >= float64(last.Offset) {
		return mustHex(last.Color)
	}
	for i := 1; i < len(ordered); i++ {
		lo, hi := ordered[i-1], ordered[i]
		if pos > float64(hi.Offset) {
			continue
		}
		span := float64(hi.Offset - lo.Offset)
		if span == 0 {
			return mustHex(hi.Color)
		}
		frac := (pos - float64(lo.Offset)) / span
		return mustHex(lo.Color).BlendRgb(mustHex(hi.Color), frac)
	}
	return mustHex(last.Color)
}

func mustHex(c string) colorful.Color {
	// Colors inside a ColorStop already passed hexColorPattern.
	col, _ := colorful.Hex(c)
	return col
}

// Built-in gradient presets using the Dracula palette. They read well on
// dark backgrounds like GitHub dark mode.
var presets = map[string]Stops{
	// Full rainbow sweep, the default.
	"sweet_dracula": {
		{Color: "#ff5555", Offset: 0},
		{Color: "#ffb86c", Offset: 16},
		{Color: "#f1fa8c", Offset: 33},
		{Color: "#50fa7b", Offset: 50},
		{Color: "#8be9fd", Offset: 66},
		{Color: "#bd93f9", Offset: 83},
		{Color: "#ff79c6", Offset: 100},
	},
	// Purple to pink.
	"dracula_purple": {
		{Color: "#bd93f9", Offset: 0},
		{Color: "#ff79c6", Offset: 100},
	},
	// Cyan to green.
	"cyber_cyan": {
		{Color: "#8be9fd", Offset: 0},
		{Color: "#50fa7b", Offset: 100},
	},
	// Red to yellow.
	"sunset": {
		{Color: "#ff5555", Offset: 0},
		{Color: "#ffb86c", Offset: 50},
		{Color: "#f1fa8c", Offset: 100},
	},
	// Same color at both ends renders as no visible transition.
	"mono_white": {
		{Color: "#f8f8f2", Offset: 0},
		{Color: "#f8f8f2", Offset: 100},
	},
}

// DefaultPreset is the preset used when the caller names none.
const DefaultPreset = "sweet_dracula"

// PresetStops returns the stops for a built-in preset. The boolean reports
// whether the name is known; unknown names are a boundary concern (CLI or
// HTTP), never an internal failure.
func PresetStops(name string) (Stops, bool) {
	s, ok := presets[name]
	return s, ok
}

// PresetNames returns the catalogue names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
