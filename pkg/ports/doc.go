/*
Package ports defines the driven ports (interfaces) for svgheadergen.

These interfaces decouple the rendering pipelines from the external
ASCII-art engines, allowing the generator to work with different backends
and with test doubles.

# Key Interfaces

  - AsciiArtEngine: Renders text into a multi-line character grid.
  - SVGExporter: Optional capability for engines that can export native SVG
    (text mode). Assert it at runtime; only some backends support it.
*/
package ports
