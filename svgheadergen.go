package svgheadergen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryugen-io/svgheadergen/internal/adapters/process"
	"github.com/ryugen-io/svgheadergen/internal/logging"
	"github.com/ryugen-io/svgheadergen/internal/render"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
	"github.com/ryugen-io/svgheadergen/pkg/ports"
)

// Generator is the high-level entry point. It wires the engine ports to the
// two rendering pipelines and carries only immutable configuration, so a
// single Generator is safe for concurrent use.
type Generator struct {
	grid     ports.AsciiArtEngine
	exporter ports.SVGExporter
	logger   *slog.Logger
	timeout  time.Duration
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLogger sets the diagnostic sink. The default is a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithGridEngine injects a custom grid renderer, bypassing the default
// toilet-then-figlet fallback chain. Intended for tests and embedders.
func WithGridEngine(engine ports.AsciiArtEngine) Option {
	return func(g *Generator) {
		g.grid = engine
	}
}

// WithSVGExporter injects a custom native-SVG exporter for text mode.
func WithSVGExporter(exporter ports.SVGExporter) Option {
	return func(g *Generator) {
		g.exporter = exporter
	}
}

// WithTimeout overrides the per-invocation timeout of the default engines.
// It has no effect on engines injected via WithGridEngine/WithSVGExporter.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// New creates a Generator. Without options it probes toilet first and falls
// back to figlet for grid rendering, uses toilet for text mode, and stays
// silent.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger:  logging.NewNop(),
		timeout: process.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.grid == nil || g.exporter == nil {
		toilet := process.NewToilet(
			process.WithTimeout(g.timeout),
			process.WithLogger(g.logger),
		)
		if g.grid == nil {
			figlet := process.NewFiglet(
				process.WithTimeout(g.timeout),
				process.WithLogger(g.logger),
			)
			g.grid = process.NewChain(g.logger, toilet, figlet)
		}
		if g.exporter == nil {
			g.exporter = toilet
		}
	}
	return g
}

// Request describes one header generation.
type Request struct {
	// Text to render. Required; at most domain.MaxTextLength bytes.
	Text string
	// Font name for the engine. Defaults to domain.DefaultFont.
	Font string
	// Scale is the pixel-mode cell size in SVG units. Defaults to
	// domain.DefaultScale. Ignored in text mode.
	Scale int
	// Stops defines the gradient. Defaults to the sweet_dracula preset.
	Stops domain.Stops
	// GradientID names the gradient definition inside the document.
	// Defaults to domain.DefaultGradientID.
	GradientID string
	// TextMode selects the native-export rewrite pipeline instead of the
	// grid pipeline.
	TextMode bool
}

func (r *Request) applyDefaults() {
	if r.Font == "" {
		r.Font = domain.DefaultFont
	}
	if r.Scale == 0 {
		r.Scale = domain.DefaultScale
	}
	if r.Stops == nil {
		r.Stops, _ = domain.PresetStops(domain.DefaultPreset)
	}
	if r.GradientID == "" {
		r.GradientID = domain.DefaultGradientID
	}
}

// Generate runs the requested pipeline and returns the complete SVG
// document. Validation happens before any engine invocation; failures are
// domain.ErrValidation or domain.ErrRender kinds and are never degraded
// into partial output.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	req.applyDefaults()

	if err := domain.ValidateText(req.Text); err != nil {
		return "", err
	}
	if err := domain.ValidateFont(req.Font); err != nil {
		return "", err
	}

	if req.TextMode {
		return g.generateText(ctx, req)
	}
	return g.generatePixel(ctx, req)
}

// RenderGrid renders text into a normalized character grid. Exposed for
// callers that want the intermediate representation (previews, debugging).
func (g *Generator) RenderGrid(ctx context.Context, text, font string) (domain.Grid, error) {
	if err := domain.ValidateText(text); err != nil {
		return domain.Grid{}, err
	}
	if err := domain.ValidateFont(font); err != nil {
		return domain.Grid{}, err
	}
	return g.renderGrid(ctx, text, font)
}

func (g *Generator) renderGrid(ctx context.Context, text, font string) (domain.Grid, error) {
	raw, err := g.grid.RenderGrid(ctx, text, font)
	if err != nil {
		return domain.Grid{}, err
	}
	grid := domain.NewGrid(raw)
	if grid.Blank() {
		return domain.Grid{}, fmt.Errorf("%w: engine produced no output for text %q", domain.ErrRender, text)
	}
	g.logger.Debug("rendered grid", "width", grid.Width, "height", grid.Height)
	return grid, nil
}

func (g *Generator) generatePixel(ctx context.Context, req Request) (string, error) {
	grid, err := g.renderGrid(ctx, req.Text, req.Font)
	if err != nil {
		return "", err
	}
	path, err := domain.GridToPaths(grid, req.Scale)
	if err != nil {
		return "", err
	}
	g.logger.Debug("synthesized paths", "width", path.Width, "height", path.Height)
	return render.AssembleDocument(path, req.Stops, req.GradientID), nil
}

func (g *Generator) generateText(ctx context.Context, req Request) (string, error) {
	doc, err := g.exporter.ExportSVG(ctx, req.Text, req.Font)
	if err != nil {
		return "", err
	}
	g.logger.Debug("rewriting native export", "width", render.DocumentWidth(doc))
	return render.RewriteDocument(doc, req.Stops, req.GradientID), nil
}
