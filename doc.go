/*
Package svgheadergen turns text into SVG header images with gradient fills,
using external ASCII-art engines (toilet, with figlet as a fallback) as
renderers.

Two pipelines are supported:

  - Pixel mode: the engine renders a character grid, and every non-blank
    cell becomes a filled square subpath. Best for block fonts like banner3
    that draw with '#'.
  - Text mode: toilet's native SVG export is rewritten so one gradient
    sweeps the whole document instead of each glyph. Best for Unicode
    box-drawing fonts like future. Requires toilet specifically.

The package is library-first: the Generator facade is pure orchestration
over injectable engine ports, silent by default, and safe for concurrent
use. The CLI in cmd/svgheadergen is one consumer; the HTTP adapter in
internal/adapters/httpapi is another.

	gen := svgheadergen.New()
	svg, err := gen.Generate(ctx, svgheadergen.Request{Text: "Hello"})
*/
package svgheadergen
