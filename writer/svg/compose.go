package svg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/wintermark/giftqr/decor"
)

// DecorationClass marks the composited overlay group inside a document.
const DecorationClass = "qr-decoration"

var viewBoxRe = regexp.MustCompile(`viewBox="0 0 (\d+(?:\.\d+)?) (\d+(?:\.\d+)?)"`)

// Compose merges a decoration fragment into a rendered document. The
// overlay is anchored to the bottom-right corner: a rect of
// sizeFraction*drawable area is reserved there, the fragment is scaled to
// multiplier times that rect, displaced by the shift and per-type nudge
// fractions, and clamped back inside the grid if it would overflow. A solid
// rect in the background color is laid under the fragment first so module
// paths cannot print through (skipped in transparent mode, where covering
// the backing surface would defeat the point).
//
// Composition does not verify the obscured area against the error
// correction budget; callers keep the overlay within roughly the
// bottom-right quarter and encode at a high level.
//
// When decoration is disabled through the options, the document is returned
// untouched.
func Compose(doc string, frag decor.Fragment, opts ...Option) (string, error) {
	o := buildOptions(opts...)
	if !o.decorate {
		return doc, nil
	}

	vbW, vbH, err := parseViewBox(doc)
	if err != nil {
		return "", err
	}

	rectW := vbW * o.sizeFraction
	rectH := vbH * o.sizeFraction
	padding := vbW * 0.01
	rectX := vbW - rectW - padding
	rectY := vbH - rectH - padding

	desiredW := rectW * o.multiplier
	desiredH := rectH * o.multiplier
	scale := desiredW / frag.RefBox

	// anchor the fragment's bottom-right to the reserved rect's bottom-right,
	// then apply shift and the fragment's own nudge
	tx := rectX + rectW - desiredW + rectW*(o.shiftX+frag.NudgeX)
	ty := rectY + rectH - desiredH + rectH*(o.shiftY+frag.NudgeY)

	tx = clamp(tx, 0, vbW-desiredW)
	ty = clamp(ty, 0, vbH-desiredH)

	var overlay strings.Builder
	if o.bgHex != TransparentBackground {
		fmt.Fprintf(&overlay, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill=%q/>`,
			tx, ty, desiredW, desiredH, o.bgHex)
		overlay.WriteString("\n")
	}
	fmt.Fprintf(&overlay, `<g class=%q transform="translate(%.2f, %.2f) scale(%.6f)" aria-hidden="true">`,
		DecorationClass, tx, ty, scale)
	overlay.WriteString("\n")
	overlay.WriteString(frag.Body)
	overlay.WriteString("\n</g>\n")

	closing := strings.LastIndex(doc, "</svg>")
	if closing < 0 {
		return "", errors.New("svg: document has no closing svg tag")
	}
	return doc[:closing] + overlay.String() + doc[closing:], nil
}

func parseViewBox(doc string) (w, h float64, err error) {
	m := viewBoxRe.FindStringSubmatch(doc)
	if m == nil {
		return 0, 0, errors.New("svg: document has no viewBox")
	}
	w, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "svg: bad viewBox width")
	}
	h, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "svg: bad viewBox height")
	}
	return w, h, nil
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
