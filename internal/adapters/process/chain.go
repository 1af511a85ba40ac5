package process

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ryugen-io/svgheadergen/internal/logging"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
	"github.com/ryugen-io/svgheadergen/pkg/ports"
)

// Chain selects between engines by availability probing: the first engine
// whose executable can be located handles the call. Once an engine has
// actually run, its failure is final; a non-zero exit or a timeout means
// the input is the problem, and retrying on a different engine would just
// mask that.
type Chain struct {
	engines []ports.AsciiArtEngine
	logger  *slog.Logger
}

// NewChain builds a fallback chain over the given engines, in order.
func NewChain(logger *slog.Logger, engines ...ports.AsciiArtEngine) *Chain {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Chain{engines: engines, logger: logger}
}

// Name identifies the chain for diagnostics.
func (c *Chain) Name() string {
	return "chain"
}

// Available reports whether any engine in the chain can be located.
func (c *Chain) Available() bool {
	for _, e := range c.engines {
		if e.Available() {
			return true
		}
	}
	return false
}

// RenderGrid dispatches to the first available engine.
func (c *Chain) RenderGrid(ctx context.Context, text, font string) (string, error) {
	var last error
	for _, e := range c.engines {
		if !e.Available() {
			last = fmt.Errorf("%w: %s not found in PATH", domain.ErrRender, e.Name())
			c.logger.Debug("engine unavailable, trying next", "engine", e.Name())
			continue
		}
		c.logger.Debug("selected engine", "engine", e.Name())
		return e.RenderGrid(ctx, text, font)
	}
	if last == nil {
		last = fmt.Errorf("%w: no engines configured", domain.ErrRender)
	}
	return "", last
}
