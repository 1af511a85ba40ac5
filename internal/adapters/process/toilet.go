package process

import "context"

// Toilet is the primary engine. On top of grid rendering it supports
// toilet's native SVG export (-E svg), so it also implements
// ports.SVGExporter. Figlet does not; text mode is toilet-only.
type Toilet struct {
	Engine
}

// NewToilet creates the toilet engine.
func NewToilet(opts ...Option) *Toilet {
	return &Toilet{Engine: *NewEngine("toilet", opts...)}
}

// ExportSVG invokes toilet's SVG export mode and returns the raw document.
func (t *Toilet) ExportSVG(ctx context.Context, text, font string) (string, error) {
	return t.run(ctx, "-f", font, "-E", "svg", "--", text)
}

// FontDirectory asks toilet where its font files live (-I2). Used by the
// font listing command; failures are reported as-is since this is a
// diagnostic convenience, not a rendering path.
func (t *Toilet) FontDirectory(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "-I2")
	if err != nil {
		return "", err
	}
	return trimLine(out), nil
}

func trimLine(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
