package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryugen-io/svgheadergen/internal/render"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// nativeExport mimics the stable shape of toilet's -E svg output: an opaque
// background rect per character cell, flat gray glyphs in both 3- and
// 6-digit hex shorthand, and a backdrop rect some versions add.
const nativeExport = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="96" height="30">
 <g font-family="monospace">
<rect style="fill:#000" x="0" y="0" width="6" height="10"/>
<rect style="fill:#000" x="6" y="0" width="6" height="10"/>
<rect class="backdrop" x="0" y="0" width="96" height="30"/>
<text style="fill:#aaa" x="0" y="8">H</text>
<text style="fill:#aaaaaa" x="6" y="8">i</text>
 </g>
</svg>`

func TestRewriteDocument(t *testing.T) {
	stops, _ := domain.PresetStops("sweet_dracula")

	t.Run("Gradient Anchored To Document Space", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")

		assert.Equal(t, 1, strings.Count(doc, "<linearGradient"))
		assert.Contains(t, doc, `gradientUnits="userSpaceOnUse"`)
		assert.Contains(t, doc, `x1="0"`)
		assert.Contains(t, doc, `x2="96"`)
	})

	t.Run("Backgrounds And Backdrop Removed", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")

		assert.NotContains(t, doc, `fill:#000"`)
		assert.NotContains(t, doc, `class="backdrop"`)
	})

	t.Run("Flat Gray Fills Redirected", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")

		assert.NotContains(t, doc, `style="fill:#aaa"`)
		assert.NotContains(t, doc, `style="fill:#aaaaaa"`)
		assert.Equal(t, 2, strings.Count(doc, `style="fill:url(#headerGradient)"`))
	})

	t.Run("Stops Preserved In Order", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")

		last := -1
		for _, stop := range stops {
			idx := strings.Index(doc, stop.Color)
			require.Greater(t, idx, last)
			last = idx
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := render.RewriteDocument(nativeExport, stops, "headerGradient")
		twice := render.RewriteDocument(once, stops, "headerGradient")
		assert.Equal(t, once, twice)
	})

	t.Run("Blank Line Runs Collapsed", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")
		assert.NotContains(t, doc, "\n\n\n")
	})

	t.Run("Glyph Content Survives", func(t *testing.T) {
		doc := render.RewriteDocument(nativeExport, stops, "headerGradient")
		assert.Contains(t, doc, ">H</text>")
		assert.Contains(t, doc, ">i</text>")
	})
}

func TestDocumentWidth(t *testing.T) {
	assert.Equal(t, 96, render.DocumentWidth(nativeExport))
	assert.Equal(t, 100, render.DocumentWidth("<svg></svg>"))
	assert.Equal(t, 100, render.DocumentWidth(""))
}
