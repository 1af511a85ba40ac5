package domain

import "errors"

// ErrValidation is the base kind for caller-input failures: bad font names,
// empty or oversized text, malformed colors or offsets, malformed custom
// gradient strings. Always detected before any external invocation.
var ErrValidation = errors.New("invalid input")

// ErrRender is the base kind for external-engine failures: missing
// executables, non-zero exits, timeouts, or blank output despite success.
// Concrete failures wrap this sentinel with the underlying cause chained.
var ErrRender = errors.New("render failed")
