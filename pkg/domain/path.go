package domain

import (
	"fmt"
	"strings"
)

// PathData holds a composite SVG path and its bounding box in SVG units.
// Each subpath is one axis-aligned filled square; subpaths are independent
// and never merged.
type PathData struct {
	D      string // path "d" attribute: "M0,0h10v10h-10Z M10,0h10v10h-10Z ..."
	Width  int
	Height int
}

// GridToPaths synthesizes pixel-mode path geometry from a grid. Every cell
// is scanned in row-major order; a non-space cell emits one scale-sized
// square at (col*scale, row*scale), a space cell emits nothing. An empty
// grid yields empty geometry with a zero bounding box.
func GridToPaths(grid Grid, scale int) (PathData, error) {
	if scale <= 0 {
		return PathData{}, fmt.Errorf("%w: scale must be positive, got %d", ErrValidation, scale)
	}
	if len(grid.Lines) == 0 {
		return PathData{}, nil
	}

	var segments []string
	for y, line := range grid.Lines {
		for x, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			segments = append(segments,
				fmt.Sprintf("M%d,%dh%dv%dh%dZ", x*scale, y*scale, scale, scale, -scale))
		}
	}

	return PathData{
		D:      strings.Join(segments, " "),
		Width:  grid.Width * scale,
		Height: grid.Height * scale,
	}, nil
}
