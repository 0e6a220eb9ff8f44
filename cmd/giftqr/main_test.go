package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wintermark/giftqr/qr"
	"github.com/wintermark/giftqr/writer/svg"
)

func defaultGenerator(outDir string) *generator {
	return &generator{
		log:        zap.NewNop().Sugar(),
		level:      qr.High,
		rootDomain: "https://example.com",
		outDir:     outDir,

		fgHex:        "#0b6623",
		bgHex:        "#ffffff",
		decorate:     true,
		decoType:     "tree",
		decoStyle:    "fancy",
		sizeFraction: 0.20,
		multiplier:   3.0,
		shiftX:       0.90,
		shiftY:       0.50,
		quietZone:    4,
		pixelSize:    250,
	}
}

func TestSettingsFor_MetadataBeatsDefaults(t *testing.T) {
	g := defaultGenerator(t.TempDir())

	doc := `<head>
<meta name="qr-foreground-color" content="#112233">
<meta name="qr-decoration-type" content="snowman">
<meta name="qr-decorate" content="false">
</head>`

	s := g.settingsFor(doc)
	assert.Equal(t, "#112233", s.fg)
	assert.Equal(t, "#ffffff", s.bg, "undeclared keys keep the flag default")
	assert.Equal(t, "snowman", s.decoType)
	assert.False(t, s.decorate)
	assert.Equal(t, "fancy", s.decoStyle)
}

func TestSettingsFor_NoMetadataKeepsDefaults(t *testing.T) {
	g := defaultGenerator(t.TempDir())
	s := g.settingsFor("<html><head></head></html>")
	assert.Equal(t, renderSettings{
		fg:        "#0b6623",
		bg:        "#ffffff",
		decorate:  true,
		decoType:  "tree",
		decoStyle: "fancy",
	}, s)
}

func TestGenerate_MetadataOverridePrecedence(t *testing.T) {
	dir := t.TempDir()
	host := filepath.Join(dir, "alice.html")
	require.NoError(t, os.WriteFile(host, []byte(`<!DOCTYPE html>
<html>
<head>
    <meta name="qr-foreground-color" content="#112233">
    <meta name="qr-decoration-type" content="bell">
</head>
<body></body>
</html>`), 0o644))

	g := defaultGenerator(dir)
	require.NoError(t, g.one(host))

	out, err := os.ReadFile(filepath.Join(dir, "alice.svg"))
	require.NoError(t, err)
	doc := string(out)

	// the document's declared foreground wins over the flag default
	assert.Contains(t, doc, svg.DefaultColorAttr+`="#112233"`)
	assert.Contains(t, doc, `style="color:#112233"`)
	assert.NotContains(t, doc, "#0b6623")

	// metadata also drives decoration selection
	assert.Contains(t, doc, `class="qr-decoration"`)
	assert.Contains(t, doc, `class="qr-svg"`)
}

func TestGenerate_MetadataDisablesDecoration(t *testing.T) {
	dir := t.TempDir()
	host := filepath.Join(dir, "bob.html")
	require.NoError(t, os.WriteFile(host, []byte(
		`<head><meta name="qr-decorate" content="false"></head>`), 0o644))

	g := defaultGenerator(dir)
	require.NoError(t, g.one(host))

	out, err := os.ReadFile(filepath.Join(dir, "bob.svg"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="qr-decoration"`)
}

func TestSvgName(t *testing.T) {
	assert.Equal(t, "alice.svg", svgName("pages/alice.html"))
	assert.Equal(t, "index.svg", svgName("index.html"))
}
