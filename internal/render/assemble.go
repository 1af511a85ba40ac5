// Package render produces the final SVG documents: assembly of pixel-mode
// path geometry, and the targeted rewrite of toilet's native SVG export for
// text mode. Everything here is pure string work; no I/O, no processes.
package render

import (
	"fmt"
	"strings"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// AssembleDocument wraps pixel-mode path geometry and a gradient into a
// complete, self-contained SVG document. The gradient axis spans the path
// element's own bounding box left to right. Deterministic: identical inputs
// yield byte-identical output.
func AssembleDocument(path domain.PathData, stops domain.Stops, gradientID string) string {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\"\n"+
		"     viewBox=\"0 0 %d %d\"\n"+
		"     width=\"%dpx\"\n"+
		"     height=\"%dpx\">\n",
		path.Width, path.Height, path.Width, path.Height)

	b.WriteString("  <defs>\n")
	fmt.Fprintf(&b, "    <linearGradient id=%q x1=\"0%%\" y1=\"0%%\" x2=\"100%%\" y2=\"0%%\">\n", gradientID)
	b.WriteString(stopElements(stops))
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")

	fmt.Fprintf(&b, "  <path d=%q fill=\"url(#%s)\"/>\n", path.D, gradientID)
	b.WriteString("</svg>")

	return b.String()
}

// stopElements renders the ordered <stop> elements shared by both pipelines.
func stopElements(stops domain.Stops) string {
	var b strings.Builder
	for _, stop := range stops {
		fmt.Fprintf(&b, "      <stop offset=\"%d%%\" stop-color=%q/>\n", stop.Offset, stop.Color)
	}
	return b.String()
}
