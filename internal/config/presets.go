// Package config loads user-defined gradient preset files. A preset file is
// YAML mapping preset names to ordered stop lists:
//
//	presets:
//	  brand:
//	    - color: "#1e90ff"
//	      offset: 0
//	    - color: "#ff69b4"
//	      offset: 100
//
// File presets merge over the built-in catalogue and win on name clashes.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

type stopSpec struct {
	Color  string `mapstructure:"color"`
	Offset int    `mapstructure:"offset"`
}

type presetFile struct {
	Presets map[string][]stopSpec `mapstructure:"presets"`
}

// LoadPresets reads and validates a gradient preset file. Every stop goes
// through the domain constructor, so a loaded preset is as trustworthy as a
// built-in one. Errors carry the file path and preset name.
func LoadPresets(path string) (map[string]domain.Stops, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read gradient file %s: %v", domain.ErrValidation, path, err)
	}

	// Decode in two hops: YAML into a generic map, then mapstructure into
	// the typed shape. Unknown keys are tolerated; wrong shapes are not.
	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: malformed gradient file %s: %v", domain.ErrValidation, path, err)
	}
	var file presetFile
	if err := mapstructure.Decode(generic, &file); err != nil {
		return nil, fmt.Errorf("%w: malformed gradient file %s: %v", domain.ErrValidation, path, err)
	}

	out := make(map[string]domain.Stops, len(file.Presets))
	for name, specs := range file.Presets {
		if len(specs) < 2 {
			return nil, fmt.Errorf("%w: preset %q in %s needs at least 2 stops, got %d",
				domain.ErrValidation, name, path, len(specs))
		}
		stops := make(domain.Stops, 0, len(specs))
		for _, spec := range specs {
			stop, err := domain.NewColorStop(spec.Color, spec.Offset)
			if err != nil {
				return nil, fmt.Errorf("preset %q in %s: %w", name, path, err)
			}
			stops = append(stops, stop)
		}
		out[name] = stops
	}
	return out, nil
}
