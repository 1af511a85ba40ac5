package ports

import "context"

// AsciiArtEngine is the capability of rendering text into ASCII art.
// Implementations invoke an external process; inputs are assumed to be
// validated by the caller before invocation.
type AsciiArtEngine interface {
	// Name identifies the backend (e.g. "toilet", "figlet") for diagnostics.
	Name() string

	// Available reports whether the backend executable can be located in
	// the current environment. Used for fallback selection, never retried
	// after a render attempt has started.
	Available() bool

	// RenderGrid returns the raw multi-line art for text in the given font.
	// The returned string is unnormalized engine output; callers derive a
	// domain.Grid from it.
	RenderGrid(ctx context.Context, text, font string) (string, error)
}

// SVGExporter is the optional capability of exporting a native SVG document
// whose glyphs are already shaped as vector elements. Text mode requires a
// backend implementing this; grid-only backends simply do not.
type SVGExporter interface {
	// ExportSVG returns a complete SVG document for text in the given font.
	ExportSVG(ctx context.Context, text, font string) (string, error)
}
