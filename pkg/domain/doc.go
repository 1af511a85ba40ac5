/*
Package domain contains the core value types and pure logic for svgheadergen.

It defines the gradient model, the normalized character grid, and the
grid-to-path synthesis used by pixel mode. This package is kept pure and free
of external dependencies like I/O or process execution, following Hexagonal
Architecture principles.

# Key Entities

  - ColorStop / Stops: An ordered gradient definition (color + offset pairs).
  - Grid: A rectangular character grid derived from ASCII-art engine output.
  - PathData: SVG path geometry synthesized from a Grid (one square per cell).

All entities are immutable after construction and validated eagerly, so a
value that exists is a value that is valid.
*/
package domain
