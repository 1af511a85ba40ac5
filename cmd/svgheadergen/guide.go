package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# svgheadergen quickstart

## Pixel mode (default)

Renders text through toilet/figlet and turns every character cell into a
filled square. Works best with block fonts:

` + "```" + `
svgheadergen "Hello World" -f banner3 -o header.svg
` + "```" + `

## Text mode

Rewrites toilet's native SVG export so the glyph shapes survive and one
gradient sweeps the whole header. Requires toilet; best with Unicode fonts:

` + "```" + `
svgheadergen "Hello" -f future --text-mode -g cyber_cyan
` + "```" + `

## Gradients

Pick a preset with ` + "`-g`" + ` (see ` + "`svgheadergen gradients`" + `),
define your own inline:

` + "```" + `
svgheadergen "Custom" --custom-gradient "#ff0000:0,#00ff00:50,#0000ff:100"
` + "```" + `

or keep named presets in a YAML file and pass ` + "`--gradient-file`" + `.

## Serving

` + "`svgheadergen serve`" + ` exposes rendering over HTTP with optional
Redis caching and Prometheus metrics on ` + "`/metrics`" + `.
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show a rendered quickstart guide",
	Run: func(cmd *cobra.Command, args []string) {
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			fmt.Print(guideMarkdown)
			return
		}
		out, err := renderer.Render(guideMarkdown)
		if err != nil {
			fmt.Print(guideMarkdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
