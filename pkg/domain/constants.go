package domain

// MaxTextLength caps input text size. This is a resource-exhaustion guard
// for the child ASCII-art process, not a correctness requirement.
const MaxTextLength = 1000

// DefaultFont is widely available and produces clean block-style output.
const DefaultFont = "banner3"

// DefaultScale is the side length, in SVG units, of the square emitted for
// each non-blank grid cell in pixel mode.
const DefaultScale = 10

// DefaultGradientID is the XML id of the gradient definition. Callers
// embedding multiple documents together should override it per document.
const DefaultGradientID = "headerGradient"
