package svg

import "github.com/wintermark/giftqr/decor"

// Option configures rendering and overlay composition.
type Option interface {
	apply(o *options)
}

// funcOption wraps a function that modifies options into an implementation
// of the Option interface.
type funcOption struct {
	f func(o *options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(o *options)) *funcOption {
	return &funcOption{f: f}
}

// TransparentBackground is the background value that switches the renderer
// into inverted mode: light modules are drawn and dark ones left empty, so
// the viewer's backing surface supplies the "off" color.
const TransparentBackground = "transparent"

const (
	defaultForeground   = "#0b6623"
	defaultBackground   = "#ffffff"
	defaultQuietZone    = 4
	defaultPixelSize    = 250
	defaultSizeFraction = 0.20
	defaultShiftX       = 0.90
	defaultShiftY       = 0.50
	defaultMultiplier   = 3.0
)

type options struct {
	fgHex     string
	bgHex     string
	quietZone int
	pixelSize int

	decorate     bool
	decoType     decor.Type
	decoStyle    decor.Style
	sizeFraction float64
	shiftX       float64
	shiftY       float64
	multiplier   float64
}

func defaultOptions() *options {
	return &options{
		fgHex:        defaultForeground,
		bgHex:        defaultBackground,
		quietZone:    defaultQuietZone,
		pixelSize:    defaultPixelSize,
		decorate:     true,
		decoType:     decor.Tree,
		decoStyle:    decor.StyleFancy,
		sizeFraction: defaultSizeFraction,
		shiftX:       defaultShiftX,
		shiftY:       defaultShiftY,
		multiplier:   defaultMultiplier,
	}
}

func buildOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

// WithFgColorHex sets the default foreground color recorded on the root
// element. Modules are still painted with currentColor so CSS can recolor
// them without regeneration.
func WithFgColorHex(hex string) Option {
	return newFuncOption(func(o *options) {
		if hex != "" {
			o.fgHex = hex
		}
	})
}

// WithBgColorHex sets the background color, or TransparentBackground to
// enable inverted mode.
func WithBgColorHex(hex string) Option {
	return newFuncOption(func(o *options) {
		if hex != "" {
			o.bgHex = hex
		}
	})
}

// WithQuietZone sets the quiet zone width in modules. Values below four are
// raised to four; a thinner margin degrades scan reliability.
func WithQuietZone(modules int) Option {
	return newFuncOption(func(o *options) {
		if modules > defaultQuietZone {
			o.quietZone = modules
		}
	})
}

// WithPixelSize sets the rendered width/height attributes.
func WithPixelSize(px int) Option {
	return newFuncOption(func(o *options) {
		if px > 0 {
			o.pixelSize = px
		}
	})
}

// WithDecoration enables overlay composition with the given type and style.
func WithDecoration(typ decor.Type, style decor.Style) Option {
	return newFuncOption(func(o *options) {
		o.decorate = true
		o.decoType = typ
		o.decoStyle = style
	})
}

// WithoutDecoration disables overlay composition; Compose becomes a
// pass-through.
func WithoutDecoration() Option {
	return newFuncOption(func(o *options) {
		o.decorate = false
	})
}

// WithOverlaySizeFraction sets the reserved overlay rect as a fraction of
// the drawable area. Callers should keep the resulting overlay within
// roughly the bottom-right quarter of the modules and encode at a high
// error correction level.
func WithOverlaySizeFraction(f float64) Option {
	return newFuncOption(func(o *options) {
		if f > 0 {
			o.sizeFraction = f
		}
	})
}

// WithOverlayShift displaces the overlay by fractions of the reserved rect;
// positive x moves right, positive y moves down.
func WithOverlayShift(x, y float64) Option {
	return newFuncOption(func(o *options) {
		o.shiftX = x
		o.shiftY = y
	})
}

// WithOverlayMultiplier scales the overlay relative to the reserved rect.
func WithOverlayMultiplier(m float64) Option {
	return newFuncOption(func(o *options) {
		if m > 0 {
			o.multiplier = m
		}
	})
}
