package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// defaultDocumentWidth is assumed when the export carries no width
// attribute, so the gradient axis still has a usable extent.
const defaultDocumentWidth = 100

var (
	widthAttr       = regexp.MustCompile(`width="(\d+)"`)
	backgroundRects = regexp.MustCompile(`<rect[^>]*style="fill:#000"[^>]*/>\n?`)
	svgOpenTag      = regexp.MustCompile(`(<svg[^>]*>)`)
	flatFills       = regexp.MustCompile(`style="fill:#[0-9a-fA-F]{3,6}"`)
	backdropRects   = regexp.MustCompile(`<rect[^>]*class="backdrop"[^>]*/>\n?`)
	blankRuns       = regexp.MustCompile(`\n{3,}`)
)

// RewriteDocument retargets toilet's native SVG export to a gradient that
// spans the whole document. The export colors every glyph a flat gray and
// backs every character cell with an opaque rectangle; the rewrite strips
// the backgrounds, injects a gradient anchored to absolute document
// coordinates (gradientUnits="userSpaceOnUse", 0 to the document width),
// and redirects the glyph fills to it. Per-glyph relative gradients would
// instead repeat a mini-rainbow inside every character.
//
// Each step is an idempotent textual edit matching the small, stable shape
// toilet emits; a step whose pattern is absent is a no-op. This is not a
// general SVG transformer.
func RewriteDocument(doc string, stops domain.Stops, gradientID string) string {
	width := DocumentWidth(doc)

	// Opaque cell backgrounds go first so the final document is transparent.
	doc = backgroundRects.ReplaceAllString(doc, "")

	// Inject once: a document already carrying this gradient id is left
	// alone, so re-running the rewrite cannot stack definitions.
	if !strings.Contains(doc, fmt.Sprintf("<linearGradient id=%q", gradientID)) {
		gradient := gradientDef(stops, gradientID, width)
		doc = svgOpenTag.ReplaceAllString(doc, "${1}\n"+gradient)
	}

	// Glyph fills are flat gray, emitted as either #aaa or #aaaaaa
	// depending on the toilet version.
	doc = flatFills.ReplaceAllString(doc, fmt.Sprintf("style=\"fill:url(#%s)\"", gradientID))

	// Some versions add a secondary backdrop element.
	doc = backdropRects.ReplaceAllString(doc, "")

	// Removals leave gaps; collapse them to one blank line. Cosmetic only.
	doc = blankRuns.ReplaceAllString(doc, "\n\n")

	return doc
}

// DocumentWidth extracts the declared pixel width of the document, falling
// back to defaultDocumentWidth when no width attribute is present.
func DocumentWidth(doc string) int {
	m := widthAttr.FindStringSubmatch(doc)
	if m == nil {
		return defaultDocumentWidth
	}
	w, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultDocumentWidth
	}
	return w
}

func gradientDef(stops domain.Stops, gradientID string, width int) string {
	var b strings.Builder
	b.WriteString("  <defs>\n")
	fmt.Fprintf(&b, "    <linearGradient id=%q x1=\"0\" y1=\"0\" x2=\"%d\" y2=\"0\" gradientUnits=\"userSpaceOnUse\">\n",
		gradientID, width)
	b.WriteString(stopElements(stops))
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>")
	return b.String()
}
