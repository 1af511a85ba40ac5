// Package process implements the ASCII-art engine ports on top of local
// child processes (toilet and figlet). Arguments are always passed as a
// literal argument vector with an explicit "--" separator before the text,
// so free text can never be interpreted as a flag and nothing is ever
// shell-interpreted.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/ryugen-io/svgheadergen/internal/logging"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// DefaultTimeout bounds a single engine invocation. A timeout indicates
// pathological input, not engine unavailability, so it never triggers
// fallback to another engine.
const DefaultTimeout = 30 * time.Second

// Engine runs one external ASCII-art command. It implements
// ports.AsciiArtEngine.
type Engine struct {
	command string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithLogger injects a diagnostic sink.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewFiglet creates the figlet engine. Figlet renders character grids only;
// it has no native SVG export.
func NewFiglet(opts ...Option) *Engine {
	return NewEngine("figlet", opts...)
}

// NewEngine creates an engine for an arbitrary figlet-compatible command.
func NewEngine(command string, opts ...Option) *Engine {
	e := &Engine{
		command: command,
		timeout: DefaultTimeout,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the backend command name.
func (e *Engine) Name() string {
	return e.command
}

// Available reports whether the backend executable is on the PATH.
func (e *Engine) Available() bool {
	_, err := exec.LookPath(e.command)
	return err == nil
}

// RenderGrid invokes the engine in plain text mode and returns its stdout.
func (e *Engine) RenderGrid(ctx context.Context, text, font string) (string, error) {
	return e.run(ctx, "-f", font, "--", text)
}

// run executes the engine with the given argv, enforcing the timeout and
// guaranteeing the child is reaped on every exit path.
func (e *Engine) run(ctx context.Context, args ...string) (string, error) {
	path, err := exec.LookPath(e.command)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found: %v", domain.ErrRender, e.command, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug("invoking engine", "command", e.command, "args", args)
	err = cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: %s timed out after %s", domain.ErrRender, e.command, e.timeout)
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: %s failed: %s", domain.ErrRender, e.command, msg)
	}
	return stdout.String(), nil
}
