// Package decor is a static library of festive vector fragments that can be
// composited over a QR symbol. Fragments are pure data: looking one up has
// no side effects and the same (type, style) pair always returns the same
// drawing.
package decor

import "github.com/pkg/errors"

// Type selects a decoration drawing.
type Type string

const (
	Tree      Type = "tree"
	Snowman   Type = "snowman"
	Santa     Type = "santa"
	Gift      Type = "gift"
	Star      Type = "star"
	CandyCane Type = "candy-cane"
	Bell      Type = "bell"
)

// Style selects a variant of a decoration type. Only the tree currently has
// more than one.
type Style string

const (
	StyleFancy Style = "fancy"
	StylePlain Style = "plain"
)

// ErrUnknownDecoration is returned for a type no fragment exists for. An
// unknown style is not an error; it falls back to the type's default.
var ErrUnknownDecoration = errors.New("decor: unknown decoration type")

// Fragment is a named vector drawing in a 200x200 reference coordinate
// space, anchored to the bottom-right corner of the symbol when composited.
// NudgeX/NudgeY are small per-type placement offsets, expressed as fractions
// of the reserved overlay rect, tuned so each drawing sits visually centered
// in its corner.
type Fragment struct {
	Type   Type
	Style  Style
	RefBox float64 // side of the reference coordinate space
	Body   string  // inner SVG, a single <g> element
	NudgeX float64
	NudgeY float64
}

// ParseType validates a decoration type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Tree, Snowman, Santa, Gift, Star, CandyCane, Bell:
		return Type(s), nil
	}
	return "", errors.Wrap(ErrUnknownDecoration, s)
}

// Get returns the fragment for a type and style. Unknown types fail with
// ErrUnknownDecoration; unknown styles silently fall back to the type's
// default style.
func Get(typ Type, style Style) (Fragment, error) {
	f := Fragment{Type: typ, Style: style, RefBox: refBoxSide}
	switch typ {
	case Tree:
		if style != StylePlain {
			f.Style = StyleFancy
			f.Body = treeFancyBody
		} else {
			f.Body = treePlainBody
		}
	case Snowman:
		f.Style = StyleFancy
		f.Body = snowmanBody
		f.NudgeX, f.NudgeY = 0.06, 0.45
	case Santa:
		f.Style = StyleFancy
		f.Body = santaBody
		f.NudgeY = 0.50
	case Gift:
		f.Style = StyleFancy
		f.Body = giftBody
		f.NudgeX = 0.05
	case Star:
		f.Style = StyleFancy
		f.Body = starBody
		f.NudgeX, f.NudgeY = 0.10, 0.50
	case CandyCane:
		f.Style = StyleFancy
		f.Body = candyCaneBody
	case Bell:
		f.Style = StyleFancy
		f.Body = bellBody
		f.NudgeX, f.NudgeY = 0.10, 0.12
	default:
		return Fragment{}, errors.Wrap(ErrUnknownDecoration, string(typ))
	}
	return f, nil
}
