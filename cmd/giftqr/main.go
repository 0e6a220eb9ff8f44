// Command giftqr generates QR code SVGs for static gift-list pages and
// injects them into the pages between placeholder markers.
//
//	giftqr generate --pattern 'pages/*.html' --out-dir pages/qr
//	giftqr inject   --pattern 'pages/*.html' --svg-dir pages/qr
package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wintermark/giftqr/decor"
	"github.com/wintermark/giftqr/inject"
	"github.com/wintermark/giftqr/internal/batch"
	"github.com/wintermark/giftqr/internal/config"
	"github.com/wintermark/giftqr/internal/logging"
	"github.com/wintermark/giftqr/meta"
	"github.com/wintermark/giftqr/qr"
	"github.com/wintermark/giftqr/writer/svg"
)

func main() {
	app := &cli.App{
		Name:  "giftqr",
		Usage: "generate and inject scannable, CSS-restyleable QR code SVGs",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "concurrent file workers"},
		},
		Commands: []*cli.Command{
			generateCommand(),
			injectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "render one QR SVG per matched host document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pattern", Value: "*.html", Usage: "glob selecting host documents"},
			&cli.StringFlag{Name: "out-dir", Value: "qr", Usage: "directory generated SVGs are written to"},
			&cli.StringFlag{Name: "root-domain", Usage: "public domain the pages are served from (overrides config and ROOT_DOMAIN)"},
			&cli.StringFlag{Name: "fg-color", Value: "#0b6623", Usage: "default foreground color hex"},
			&cli.StringFlag{Name: "bg-color", Value: "#ffffff", Usage: "background color hex, or 'transparent'"},
			&cli.StringFlag{Name: "ec-level", Value: "H", Usage: "error correction level: L, M, Q or H"},
			&cli.BoolFlag{Name: "decorate", Value: true, Usage: "composite a decoration into the corner"},
			&cli.StringFlag{Name: "decoration-type", Value: "tree", Usage: "tree, snowman, santa, gift, star, candy-cane or bell"},
			&cli.StringFlag{Name: "decoration-style", Value: "fancy", Usage: "fancy or plain (tree only)"},
			&cli.Float64Flag{Name: "logo-size", Value: 0.20, Usage: "reserved overlay rect as a fraction of the drawable area"},
			&cli.Float64Flag{Name: "multiplier", Value: 3.0, Usage: "overlay scale relative to the reserved rect"},
			&cli.Float64Flag{Name: "shift-x", Value: 0.90, Usage: "horizontal overlay shift, fraction of the reserved rect"},
			&cli.Float64Flag{Name: "shift-y", Value: 0.50, Usage: "vertical overlay shift, fraction of the reserved rect"},
			&cli.IntFlag{Name: "quiet-zone", Value: 4, Usage: "quiet zone width in modules, minimum 4"},
			&cli.IntFlag{Name: "pixel-size", Value: 250, Usage: "rendered width and height in pixels"},
		},
		Action: runGenerate,
	}
}

func injectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inject",
		Usage: "splice previously generated SVGs into matched host documents",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pattern", Value: "*.html", Usage: "glob selecting host documents"},
			&cli.StringFlag{Name: "svg-dir", Value: "qr", Usage: "directory holding generated SVGs"},
			&cli.BoolFlag{Name: "preserve-manual", Value: true, Usage: "skip spans marked " + inject.ManualToken},
			&cli.BoolFlag{Name: "allow-missing", Usage: "treat documents without the marker pair as skipped, not failed"},
		},
		Action: runInject,
	}
}

func runGenerate(c *cli.Context) error {
	log := logging.New(c.Bool("debug"))
	defer func() { _ = log.Sync() }()

	level, ok := qr.ParseECLevel(c.String("ec-level"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown error correction level %q", c.String("ec-level")), 2)
	}
	if _, err := decor.ParseType(c.String("decoration-type")); c.Bool("decorate") && err != nil {
		return cli.Exit(err.Error(), 2)
	}

	rootDomain := config.ResolveRootDomain(c.String("root-domain"))

	paths, err := filepath.Glob(c.String("pattern"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "bad pattern").Error(), 2)
	}
	if len(paths) == 0 {
		log.Warnw("no files matched", "pattern", c.String("pattern"))
		return nil
	}

	outDir := c.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return cli.Exit(errors.Wrap(err, "create out-dir").Error(), 1)
	}

	gen := &generator{
		log:        log,
		level:      level,
		rootDomain: rootDomain,
		outDir:     outDir,

		fgHex:        c.String("fg-color"),
		bgHex:        c.String("bg-color"),
		decorate:     c.Bool("decorate"),
		decoType:     c.String("decoration-type"),
		decoStyle:    c.String("decoration-style"),
		sizeFraction: c.Float64("logo-size"),
		multiplier:   c.Float64("multiplier"),
		shiftX:       c.Float64("shift-x"),
		shiftY:       c.Float64("shift-y"),
		quietZone:    c.Int("quiet-zone"),
		pixelSize:    c.Int("pixel-size"),
	}

	runner := &batch.Runner{Workers: c.Int("workers"), Log: log}
	failures := runner.Run(paths, gen.one)
	if len(failures) > 0 {
		return cli.Exit(fmt.Sprintf("generate: %d of %d files failed", len(failures), len(paths)), 1)
	}
	return nil
}

// generator holds the per-invocation defaults; document metadata overrides
// them file by file.
type generator struct {
	log        *zap.SugaredLogger
	level      qr.ECLevel
	rootDomain string
	outDir     string

	fgHex        string
	bgHex        string
	decorate     bool
	decoType     string
	decoStyle    string
	sizeFraction float64
	multiplier   float64
	shiftX       float64
	shiftY       float64
	quietZone    int
	pixelSize    int
}

// renderSettings is the per-document view of the generator's defaults after
// the host document's metadata has been folded in.
type renderSettings struct {
	fg        string
	bg        string
	decorate  bool
	decoType  string
	decoStyle string
}

// settingsFor merges a host document's qr-* metadata over the invocation
// defaults. Metadata always beats the flag value for the keys it declares.
func (g *generator) settingsFor(document string) renderSettings {
	s := renderSettings{
		fg:        g.fgHex,
		bg:        g.bgHex,
		decorate:  g.decorate,
		decoType:  g.decoType,
		decoStyle: g.decoStyle,
	}
	overrides := meta.Read(document)
	if v, ok := overrides[meta.KeyForeground]; ok {
		s.fg = v
	}
	if v, ok := overrides[meta.KeyBackground]; ok {
		s.bg = v
	}
	if v, ok := overrides[meta.KeyDecorate]; ok {
		s.decorate = meta.Bool(v, s.decorate)
	}
	if v, ok := overrides[meta.KeyDecorationType]; ok {
		s.decoType = v
	}
	if v, ok := overrides[meta.KeyDecorationStyle]; ok {
		s.decoStyle = v
	}
	return s
}

func (g *generator) one(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read host document")
	}
	s := g.settingsFor(string(raw))

	publicURL := g.rootDomain + "/" + url.PathEscape(filepath.Base(path))
	sym, err := qr.Encode(publicURL, g.level)
	if err != nil {
		return errors.Wrap(err, "encode")
	}

	opts := []svg.Option{
		svg.WithFgColorHex(s.fg),
		svg.WithBgColorHex(s.bg),
		svg.WithQuietZone(g.quietZone),
		svg.WithPixelSize(g.pixelSize),
		svg.WithOverlaySizeFraction(g.sizeFraction),
		svg.WithOverlayMultiplier(g.multiplier),
		svg.WithOverlayShift(g.shiftX, g.shiftY),
	}
	doc := svg.Render(sym, opts...)

	if s.decorate {
		typ, err := decor.ParseType(s.decoType)
		if err != nil {
			return err
		}
		frag, err := decor.Get(typ, decor.Style(s.decoStyle))
		if err != nil {
			return err
		}
		opts = append(opts, svg.WithDecoration(typ, frag.Style))
		doc, err = svg.Compose(doc, frag, opts...)
		if err != nil {
			return errors.Wrap(err, "compose")
		}
	}

	outPath := filepath.Join(g.outDir, svgName(path))
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return errors.Wrap(err, "write svg")
	}
	g.log.Infow("generated", "svg", outPath, "url", publicURL, "version", sym.Version())
	return nil
}

func runInject(c *cli.Context) error {
	log := logging.New(c.Bool("debug"))
	defer func() { _ = log.Sync() }()

	paths, err := filepath.Glob(c.String("pattern"))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "bad pattern").Error(), 2)
	}
	if len(paths) == 0 {
		log.Warnw("no files matched", "pattern", c.String("pattern"))
		return nil
	}

	svgDir := c.String("svg-dir")
	preserveManual := c.Bool("preserve-manual")
	allowMissing := c.Bool("allow-missing")

	runner := &batch.Runner{Workers: c.Int("workers"), Log: log}
	failures := runner.Run(paths, func(path string) error {
		svgPath := filepath.Join(svgDir, svgName(path))
		payload, err := os.ReadFile(svgPath)
		if err != nil {
			return errors.Wrap(err, "read generated svg")
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "read host document")
		}

		out, result, err := inject.Inject(string(raw),
			inject.MarkerStart, inject.MarkerEnd,
			strings.TrimRight(string(payload), "\n"), preserveManual)
		if err != nil {
			if allowMissing && errors.Is(err, inject.ErrMarkersNotFound) {
				log.Infow("skipped-no-markers", "path", path)
				return nil
			}
			return err
		}
		if result.Changed() {
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return errors.Wrap(err, "write host document")
			}
		}
		log.Infow(result.String(), "path", path, "svg", svgPath)
		return nil
	})
	if len(failures) > 0 {
		return cli.Exit(fmt.Sprintf("inject: %d of %d files failed", len(failures), len(paths)), 1)
	}
	return nil
}

// svgName maps a host document path to its generated SVG filename.
func svgName(htmlPath string) string {
	base := filepath.Base(htmlPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".svg"
}
