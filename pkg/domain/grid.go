package domain

import "strings"

// Grid is a rectangular character grid: every line has the same length,
// padded with spaces on the right. It is the pixel-mode intermediate
// representation of rendered ASCII art.
type Grid struct {
	Lines  []string
	Width  int // characters per line after padding
	Height int // number of lines
}

// NewGrid normalizes raw multi-line engine output into a Grid. Exactly one
// trailing newline is dropped if present, then every line is right-padded
// to the longest observed line.
func NewGrid(raw string) Grid {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return Grid{}
	}
	lines := strings.Split(raw, "\n")

	// Widths are in runes: fonts like "future" emit multi-byte box-drawing
	// characters, and each of those is still one grid cell.
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = line + strings.Repeat(" ", width-len([]rune(line)))
	}
	return Grid{Lines: padded, Width: width, Height: len(padded)}
}

// Blank reports whether the grid contains no visible characters at all.
// It distinguishes "the tool ran but produced nothing" from a hard failure.
func (g Grid) Blank() bool {
	for _, line := range g.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
