package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// swatchWidth is the number of sample cells in a terminal gradient preview.
const swatchWidth = 32

var gradientsCmd = &cobra.Command{
	Use:   "gradients",
	Short: "List gradient presets",
	Long: `Lists the built-in gradient presets plus any loaded from
--gradient-file. On a terminal, each preset is shown with a color swatch.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		extra, err := filePresets(cmd)
		if err != nil {
			exitWith(logger, err)
		}

		// Built-ins first in sorted order, then file presets; a file
		// preset shadowing a built-in name replaces its entry in place.
		catalogue := map[string]domain.Stops{}
		names := domain.PresetNames()
		for _, name := range names {
			catalogue[name], _ = domain.PresetStops(name)
		}
		var fileNames []string
		for name, stops := range extra {
			if _, builtin := catalogue[name]; !builtin {
				fileNames = append(fileNames, name)
			}
			catalogue[name] = stops
		}
		sort.Strings(fileNames)
		names = append(names, fileNames...)

		colorize := term.IsTerminal(int(os.Stdout.Fd()))
		profile := termenv.ColorProfile()

		for _, name := range names {
			stops := catalogue[name]
			if colorize {
				fmt.Printf("  %-16s %s\n", name, swatch(profile, stops))
			} else {
				fmt.Printf("  %-16s %s\n", name, describe(stops))
			}
		}
	},
}

// swatch renders the gradient as a row of colored block characters.
func swatch(profile termenv.Profile, stops domain.Stops) string {
	var b strings.Builder
	for i := 0; i < swatchWidth; i++ {
		t := float64(i) / float64(swatchWidth-1)
		hex := stops.Sample(t).Hex()
		b.WriteString(termenv.String("█").Foreground(profile.Color(hex)).String())
	}
	return b.String()
}

// describe lists the stops textually for non-terminal output.
func describe(stops domain.Stops) string {
	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = fmt.Sprintf("%s@%d%%", stop.Color, stop.Offset)
	}
	return strings.Join(parts, " -> ")
}

func init() {
	rootCmd.AddCommand(gradientsCmd)
}
