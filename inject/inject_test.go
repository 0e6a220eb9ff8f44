package inject_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintermark/giftqr/inject"
)

const payload = "<svg class=\"qr-svg\">\n<path d=\"M0 0\"/>\n</svg>"

func page(span string) string {
	return "<html>\n<body>\n    " + inject.MarkerStart + span + inject.MarkerEnd + "\n</body>\n</html>"
}

func TestInject_Replace(t *testing.T) {
	doc := page("\n    ")
	out, result, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.NoError(t, err)
	assert.Equal(t, inject.Replaced, result)
	assert.True(t, result.Changed())

	// payload lines re-indented one unit past the marker line
	assert.Contains(t, out, "\n        <svg class=\"qr-svg\">\n")
	assert.Contains(t, out, "\n        </svg>\n")
	// end marker keeps the start marker's leading whitespace
	assert.Contains(t, out, "\n    "+inject.MarkerEnd)
	// surrounding document untouched
	assert.True(t, strings.HasPrefix(out, "<html>\n<body>\n"))
	assert.True(t, strings.HasSuffix(out, "</body>\n</html>"))
}

func TestInject_Idempotent(t *testing.T) {
	doc := page("\nold content\n    ")
	once, result, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.NoError(t, err)
	require.Equal(t, inject.Replaced, result)

	twice, result, err := inject.Inject(once, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.NoError(t, err)
	assert.Equal(t, inject.SkippedUnchanged, result)
	assert.False(t, result.Changed())
	assert.Equal(t, once, twice)
}

func TestInject_TabIndent(t *testing.T) {
	doc := "<html>\n\t" + inject.MarkerStart + "\n\t" + inject.MarkerEnd + "\n</html>"
	out, result, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, "<svg/>", true)
	require.NoError(t, err)
	assert.Equal(t, inject.Replaced, result)
	assert.Contains(t, out, "\n\t\t<svg/>\n\t"+inject.MarkerEnd)
}

func TestInject_BlankPayloadLinesStayEmpty(t *testing.T) {
	doc := page("")
	out, _, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, "a\n\nb", true)
	require.NoError(t, err)
	assert.Contains(t, out, "\n        a\n\n        b\n")
}

func TestInject_ManualProtection(t *testing.T) {
	doc := page("\nhand tuned " + inject.ManualToken + "\n    ")
	out, result, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.NoError(t, err)
	assert.Equal(t, inject.SkippedProtected, result)
	assert.Equal(t, doc, out)

	// without preservation the span is fair game
	out, result, err = inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, payload, false)
	require.NoError(t, err)
	assert.Equal(t, inject.Replaced, result)
	assert.NotContains(t, out, "hand tuned")
}

func TestInject_MarkersMissing(t *testing.T) {
	_, _, err := inject.Inject("<html></html>", inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inject.ErrMarkersNotFound))

	onlyStart := "<html>" + inject.MarkerStart + "</html>"
	out, _, err := inject.Inject(onlyStart, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inject.ErrMarkersNotFound))
	assert.Equal(t, onlyStart, out, "errors leave the document unchanged")
}

func TestInject_MarkersReversed(t *testing.T) {
	doc := "<html>" + inject.MarkerEnd + "middle" + inject.MarkerStart + "</html>"
	out, _, err := inject.Inject(doc, inject.MarkerStart, inject.MarkerEnd, payload, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inject.ErrMarkersOrder))
	assert.Equal(t, doc, out)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "replaced", inject.Replaced.String())
	assert.Equal(t, "skipped-protected", inject.SkippedProtected.String())
	assert.Equal(t, "skipped-unchanged", inject.SkippedUnchanged.String())
}
