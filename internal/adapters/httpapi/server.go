// Package httpapi exposes the generator over HTTP for remote header
// generation (the serve mode). The surface is a single image endpoint plus
// health and metrics; errors map to status codes the same way the CLI maps
// them to exit codes.
package httpapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	svgheadergen "github.com/ryugen-io/svgheadergen"
	"github.com/ryugen-io/svgheadergen/internal/logging"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// Engine is the generation capability the server needs.
type Engine interface {
	Generate(ctx context.Context, req svgheadergen.Request) (string, error)
}

// Cache is an optional response cache keyed by request fingerprint.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Server handles header rendering requests.
type Server struct {
	engine  Engine
	cache   Cache
	presets map[string]domain.Stops
	logger  *slog.Logger

	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	registry       *prometheus.Registry
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithCache enables response caching.
func WithCache(cache Cache) ServerOption {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger injects a diagnostic sink.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPresets adds extra named gradients (e.g. from a preset file) on top
// of the built-in catalogue. Extra presets win on name clashes.
func WithPresets(presets map[string]domain.Stops) ServerOption {
	return func(s *Server) {
		s.presets = presets
	}
}

// NewHandler builds the HTTP handler: GET /header.svg, GET /healthz,
// GET /metrics. Each handler owns its own Prometheus registry so tests can
// spin up handlers freely.
func NewHandler(engine Engine, opts ...ServerOption) http.Handler {
	registry := prometheus.NewRegistry()
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
		rendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "svgheadergen_renders_total",
			Help: "Total header render requests",
		}, []string{"mode", "status"}),
		renderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "svgheadergen_render_duration_seconds",
			Help: "Duration of header rendering",
		}, []string{"mode"}),
		registry: registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	registry.MustRegister(s.rendersTotal, s.renderDuration)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/header.svg", s.renderHeader)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) renderHeader(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	mode := q.Get("mode")
	if mode == "" {
		mode = "pixel"
	}

	req, err := s.buildRequest(q.Get("text"), q.Get("font"), q.Get("gradient"), q.Get("custom"), q.Get("scale"), mode)
	if err != nil {
		s.fail(w, mode, err)
		return
	}

	key := requestKey(req)
	if s.cache != nil {
		if doc, hit, cerr := s.cache.Get(r.Context(), key); cerr == nil && hit {
			s.rendersTotal.WithLabelValues(mode, "hit").Inc()
			writeSVG(w, doc, "HIT")
			return
		} else if cerr != nil {
			s.logger.Warn("cache get failed", "error", cerr)
		}
	}

	start := time.Now()
	doc, err := s.engine.Generate(r.Context(), req)
	s.renderDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(w, mode, err)
		return
	}
	s.rendersTotal.WithLabelValues(mode, "ok").Inc()

	if s.cache != nil {
		if cerr := s.cache.Set(r.Context(), key, doc); cerr != nil {
			s.logger.Warn("cache set failed", "error", cerr)
		}
	}
	writeSVG(w, doc, "MISS")
}

func (s *Server) buildRequest(text, font, preset, custom, scaleStr, mode string) (svgheadergen.Request, error) {
	req := svgheadergen.Request{
		Text:     text,
		Font:     font,
		TextMode: mode == "text",
	}
	if mode != "pixel" && mode != "text" {
		return req, fmt.Errorf("%w: unknown mode %q", domain.ErrValidation, mode)
	}
	if scaleStr != "" {
		scale, err := strconv.Atoi(scaleStr)
		if err != nil {
			return req, fmt.Errorf("%w: invalid scale %q", domain.ErrValidation, scaleStr)
		}
		req.Scale = scale
	}

	switch {
	case custom != "":
		stops, err := domain.ParseStops(custom)
		if err != nil {
			return req, err
		}
		req.Stops = stops
	case preset != "":
		if stops, ok := s.presets[preset]; ok {
			req.Stops = stops
		} else if stops, ok := domain.PresetStops(preset); ok {
			req.Stops = stops
		} else {
			return req, fmt.Errorf("%w: unknown gradient preset %q", domain.ErrValidation, preset)
		}
	}
	return req, nil
}

func (s *Server) fail(w http.ResponseWriter, mode string, err error) {
	status := http.StatusInternalServerError
	label := "error"
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		label = "invalid"
	case errors.Is(err, domain.ErrRender):
		status = http.StatusBadGateway
		label = "render_error"
	}
	s.rendersTotal.WithLabelValues(mode, label).Inc()
	s.logger.Error("render request failed", "error", err)
	http.Error(w, err.Error(), status)
}

func writeSVG(w http.ResponseWriter, doc, cacheState string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Cache", cacheState)
	w.Write([]byte(doc))
}

// requestKey fingerprints a request for caching. Stops are part of the key,
// so custom gradients and presets never collide.
func requestKey(req svgheadergen.Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%s|%t", req.Text, req.Font, req.Scale, req.GradientID, req.TextMode)
	for _, stop := range req.Stops {
		fmt.Fprintf(h, "|%s:%d", stop.Color, stop.Offset)
	}
	return hex.EncodeToString(h.Sum(nil))
}
