package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStops parses the compact custom-gradient grammar used on the command
// line and in serve-mode query strings:
//
//	"#ff0000:0,#00ff00:50,#0000ff:100"
//
// Pairs are comma-separated color:offset entries with surrounding whitespace
// trimmed per pair. Each pair is split on its last colon. Input order is
// preserved: no sorting, no deduplication.
func ParseStops(spec string) (Stops, error) {
	var stops Stops

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		idx := strings.LastIndex(part, ":")
		if idx < 0 {
			return nil, fmt.Errorf("%w: invalid gradient segment %q, expected '#color:offset'", ErrValidation, part)
		}
		colorStr, offsetStr := part[:idx], part[idx+1:]

		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid offset %q, must be an integer 0-100", ErrValidation, offsetStr)
		}

		stop, err := NewColorStop(strings.TrimSpace(colorStr), offset)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least 2 color stops, got %d", ErrValidation, len(stops))
	}
	return stops, nil
}
