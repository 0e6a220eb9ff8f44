package svg_test

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintermark/giftqr/qr"
	"github.com/wintermark/giftqr/writer/svg"
)

var moduleRe = regexp.MustCompile(`M(\d+) (\d+)h1v1h-1z`)

// paintedModules parses the merged module path back into a coordinate set.
func paintedModules(t *testing.T, doc string) map[[2]int]bool {
	t.Helper()
	painted := map[[2]int]bool{}
	for _, m := range moduleRe.FindAllStringSubmatch(doc, -1) {
		x, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		y, err := strconv.Atoi(m[2])
		require.NoError(t, err)
		painted[[2]int{x, y}] = true
	}
	return painted
}

func encode(t *testing.T, url string) *qr.Symbol {
	t.Helper()
	sym, err := qr.Encode(url, qr.High)
	require.NoError(t, err)
	return sym
}

func TestRender_RootElementContract(t *testing.T) {
	sym := encode(t, "https://example.com/alice.html")
	doc := svg.Render(sym, svg.WithFgColorHex("#112233"))

	assert.True(t, strings.HasPrefix(doc, "<svg"), "document must start at the svg root")
	assert.Contains(t, doc, `class="qr-svg"`)
	assert.Contains(t, doc, svg.DefaultColorAttr+`="#112233"`)
	assert.Contains(t, doc, `style="color:#112233"`)
	assert.Contains(t, doc, `fill="currentColor"`)
	assert.NotContains(t, doc, `fill="#112233"`, "modules must not be painted with a literal color")

	total := sym.Side() + 8 // default quiet zone of 4 on each side
	assert.Contains(t, doc, fmt.Sprintf(`viewBox="0 0 %d %d"`, total, total))
}

func TestRender_ModuleFidelity(t *testing.T) {
	sym := encode(t, "https://example.com/bob.html")
	doc := svg.Render(sym)
	painted := paintedModules(t, doc)

	quiet := 4
	total := sym.Side() + 2*quiet
	for y := 0; y < total; y++ {
		for x := 0; x < total; x++ {
			want := sym.Matrix().Dark(x-quiet, y-quiet)
			assert.Equal(t, want, painted[[2]int{x, y}], "module (%d,%d)", x, y)
		}
	}
}

func TestRender_InvertedTransparent(t *testing.T) {
	sym := encode(t, "https://example.com/carol.html")
	doc := svg.Render(sym, svg.WithBgColorHex(svg.TransparentBackground))

	assert.NotContains(t, doc, "<rect", "inverted mode draws no background rect")

	painted := paintedModules(t, doc)
	quiet := 4
	total := sym.Side() + 2*quiet

	// the selection flips: light modules and the whole quiet zone are painted
	assert.True(t, painted[[2]int{0, 0}], "quiet zone corner must be painted")
	for y := 0; y < total; y++ {
		for x := 0; x < total; x++ {
			want := !sym.Matrix().Dark(x-quiet, y-quiet)
			assert.Equal(t, want, painted[[2]int{x, y}], "module (%d,%d)", x, y)
		}
	}
}

func TestRender_QuietZoneFloor(t *testing.T) {
	sym := encode(t, "https://example.com/dave.html")

	narrow := svg.Render(sym, svg.WithQuietZone(1))
	assert.Contains(t, narrow, fmt.Sprintf(`viewBox="0 0 %d %d"`, sym.Side()+8, sym.Side()+8),
		"quiet zone below four is raised to four")

	wide := svg.Render(sym, svg.WithQuietZone(6))
	assert.Contains(t, wide, fmt.Sprintf(`viewBox="0 0 %d %d"`, sym.Side()+12, sym.Side()+12))
}

func TestRender_BackgroundRect(t *testing.T) {
	sym := encode(t, "https://example.com/erin.html")
	doc := svg.Render(sym, svg.WithBgColorHex("#fff8f0"))
	assert.Contains(t, doc, `fill="#fff8f0"`)
}

func TestSanitize(t *testing.T) {
	in := "<?xml version=\"1.0\"?>\n<!-- Generated -->\n<!DOCTYPE svg>\n<svg>x</svg>"
	assert.Equal(t, "<svg>x</svg>", svg.Sanitize(in))

	// already clean documents pass through
	assert.Equal(t, "<svg>x</svg>", svg.Sanitize("<svg>x</svg>"))
}
