// Package svg renders QR symbols as self-contained, CSS-restyleable SVG
// documents and composites decorative overlays into them. Dark modules are
// emitted as one merged path painted with currentColor, so a single external
// style rule recolors the whole code without regeneration.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/wintermark/giftqr/qr"
)

const (
	// ClassToken is the stable class carried by every generated root
	// element; stylesheets target it to recolor the modules.
	ClassToken = "qr-svg"

	// DefaultColorAttr records the foreground color the document was
	// generated with. Provenance only: it never affects rendering once CSS
	// overrides the color.
	DefaultColorAttr = "data-qr-default-foreground-color"
)

// Render draws the symbol as an SVG document string. The module grid is
// surrounded by the quiet zone, the background (when not transparent) is a
// literal rect, and every painted module goes into a single merged path
// filled with currentColor. When the background is TransparentBackground
// the renderer runs in inverted mode: light modules (quiet zone included)
// are painted and dark modules are left see-through.
func Render(sym *qr.Symbol, opts ...Option) string {
	o := buildOptions(opts...)

	n := sym.Side()
	q := o.quietZone
	total := n + 2*q
	inverted := o.bgHex == TransparentBackground

	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(o.pixelSize, o.pixelSize,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, total, total),
		fmt.Sprintf(`class=%q`, ClassToken),
		fmt.Sprintf(`%s=%q`, DefaultColorAttr, o.fgHex),
		fmt.Sprintf(`style="color:%s"`, o.fgHex),
	)

	if !inverted {
		canvas.Rect(0, 0, total, total, fmt.Sprintf(`fill=%q`, o.bgHex))
	}

	canvas.Path(modulePath(sym.Matrix(), q, inverted), `fill="currentColor"`)
	canvas.End()

	return Sanitize(buf.String())
}

// modulePath merges every painted module into one path using unit squares
// in module coordinates. In inverted mode the selection flips and the quiet
// zone is painted too.
func modulePath(m *qr.Matrix, quiet int, inverted bool) string {
	var d strings.Builder
	total := m.Side() + 2*quiet
	for y := 0; y < total; y++ {
		for x := 0; x < total; x++ {
			dark := m.Dark(x-quiet, y-quiet)
			if dark != inverted {
				fmt.Fprintf(&d, "M%d %dh1v1h-1z", x, y)
			}
		}
	}
	return d.String()
}

// Sanitize strips the XML prolog, DOCTYPE and generator comment so the
// document is safe to inline into HTML.
func Sanitize(doc string) string {
	s := doc
	for {
		t := strings.TrimLeft(s, " \t\r\n")
		switch {
		case strings.HasPrefix(t, "<?"):
			if i := strings.Index(t, "?>"); i >= 0 {
				s = t[i+2:]
				continue
			}
		case strings.HasPrefix(t, "<!--"):
			if i := strings.Index(t, "-->"); i >= 0 {
				s = t[i+3:]
				continue
			}
		case strings.HasPrefix(t, "<!DOCTYPE"), strings.HasPrefix(t, "<!doctype"):
			if i := strings.Index(t, ">"); i >= 0 {
				s = t[i+1:]
				continue
			}
		}
		return strings.TrimSpace(t)
	}
}
