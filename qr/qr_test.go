package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		level ECLevel
	}{
		{"byte url high", "https://gifts.example.com/alice.html", High},
		{"byte url low", "https://gifts.example.com/alice.html", Low},
		{"escaped filename", "https://example.com/j%C3%BCrgen.html", High},
		{"alphanumeric", "HELLO WORLD", Quartile},
		{"numeric", "31415926535897932384", Medium},
		{"single char", "7", High},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sym, err := Encode(tc.text, tc.level)
			require.NoError(t, err)

			got, level, err := decodeMatrix(sym.Matrix(), sym.Version())
			require.NoError(t, err)
			assert.Equal(t, tc.text, got)
			assert.Equal(t, tc.level, level)
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode("https://example.com/page.html", High)
	require.NoError(t, err)
	b, err := Encode("https://example.com/page.html", High)
	require.NoError(t, err)

	require.Equal(t, a.Side(), b.Side())
	a.Matrix().Iterate(func(x, y int, dark bool, _ Role) {
		assert.Equal(t, dark, b.Matrix().Dark(x, y), "module (%d,%d)", x, y)
	})
}

func TestEncode_EmptyContent(t *testing.T) {
	_, err := Encode("", High)
	require.Error(t, err)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestEncode_CapacityBoundary(t *testing.T) {
	// version 40 at High holds 1276 data codewords; byte mode overhead is
	// 4+16 bits, so 1273 characters fit and 1274 do not
	fits := strings.Repeat("a", 1273)
	sym, err := Encode(fits, High)
	require.NoError(t, err)
	assert.Equal(t, 40, sym.Version())

	_, err = Encode(fits+"a", High)
	require.Error(t, err)
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 1274, encErr.Length)
}

func TestEncode_MinimalVersion(t *testing.T) {
	sym, err := Encode("HELLO WORLD", Quartile)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Side())

	// a longer payload must not stay at version 1
	sym, err = Encode(strings.Repeat("A", 200), Quartile)
	require.NoError(t, err)
	assert.Greater(t, sym.Version(), 1)
}

func TestEncode_VersionInfoPlacement(t *testing.T) {
	// 70 bytes exceed version 6 High capacity, forcing version >= 7 and
	// therefore version information blocks
	sym, err := Encode("https://example.com/"+strings.Repeat("x", 50), High)
	require.NoError(t, err)
	require.GreaterOrEqual(t, sym.Version(), 7)

	m := sym.Matrix()
	assert.Equal(t, RoleVersion, m.Role(0, m.Side()-11))
	assert.Equal(t, RoleVersion, m.Role(m.Side()-11, 0))

	got, _, err := decodeMatrix(m, sym.Version())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/"+strings.Repeat("x", 50), got)
}

func TestEncode_FunctionPatterns(t *testing.T) {
	sym, err := Encode("https://example.com/a.html", High)
	require.NoError(t, err)
	m := sym.Matrix()
	n := m.Side()

	// finder cores
	for _, a := range [3][2]int{{0, 0}, {n - 7, 0}, {0, n - 7}} {
		assert.True(t, m.Dark(a[0], a[1]), "finder ring at (%d,%d)", a[0], a[1])
		assert.True(t, m.Dark(a[0]+3, a[1]+3), "finder core at (%d,%d)", a[0], a[1])
		assert.False(t, m.Dark(a[0]+1, a[1]+1), "finder gap at (%d,%d)", a[0], a[1])
	}

	// timing alternates between the finders
	for i := 8; i < n-8; i++ {
		assert.Equal(t, i%2 == 0, m.Dark(i, 6), "timing row at %d", i)
		assert.Equal(t, i%2 == 0, m.Dark(6, i), "timing column at %d", i)
	}

	// the dark module
	assert.True(t, m.Dark(8, n-8))
	assert.Equal(t, RoleDark, m.Role(8, n-8))
}

func TestMatrix_QuietZoneReadsLight(t *testing.T) {
	sym, err := Encode("https://example.com/a.html", High)
	require.NoError(t, err)
	m := sym.Matrix()
	assert.False(t, m.Dark(-1, 0))
	assert.False(t, m.Dark(0, -4))
	assert.False(t, m.Dark(m.Side(), m.Side()))
}

func TestParseECLevel(t *testing.T) {
	for in, want := range map[string]ECLevel{
		"L": Low, "l": Low, "low": Low,
		"M": Medium, "medium": Medium,
		"Q": Quartile, "quartile": Quartile,
		"H": High, "h": High, "high": High,
	} {
		got, ok := ParseECLevel(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseECLevel("ultra")
	assert.False(t, ok)
}

func TestBlockTableConsistency(t *testing.T) {
	// every (version, level) block structure must exactly fill the symbol's
	// codeword capacity
	for v := minVersion; v <= maxVersion; v++ {
		total := totalCodewords(v)
		for _, level := range []ECLevel{Low, Medium, Quartile, High} {
			bs := blocksOf(v, level)
			sum := bs.totalDataCodewords() + bs.numEC*bs.totalBlocks()
			assert.Equal(t, total, sum, "version %d level %s", v, level)
		}
	}
}

// totalCodewords derives the symbol's codeword capacity from its geometry.
func totalCodewords(version int) int {
	side := sideOf(version)
	modules := side * side
	modules -= 3 * 64 // finders with separators
	modules -= 2 * (side - 16) // timing
	modules -= 31 // format info + dark module
	if version >= 7 {
		modules -= 36
	}
	numAlign := len(alignCenters[version-1])
	if numAlign > 0 {
		count := numAlign*numAlign - 3
		modules -= count * 25
		// alignment patterns overlapping the timing strips give back the
		// timing modules already subtracted
		modules += (numAlign - 2) * 2 * 5
	}
	return modules / 8
}
