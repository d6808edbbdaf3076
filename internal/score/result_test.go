package score

import (
	"encoding/json"
	"io"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}

func ansiPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return NewPalette(r)
}

func TestNew_WinningResult(t *testing.T) {
	r := New("Input", "Input")
	assert.True(t, r.Valid())
	assert.True(t, r.Complete())
	assert.Equal(t, "Input", r.Guess())
	assert.Equal(t, "Input", r.Answer())
	assert.Equal(t, 5, r.Len())
}

func TestNew_LengthMismatch(t *testing.T) {
	tests := []struct {
		guess, answer string
		wantLen       int
	}{
		{"abc", "abcd", 4},
		{"abcdef", "abc", 6},
		{"", "a", 1},
		// same byte length, different rune counts
		{"café", "cafe!", 5},
	}
	for _, tc := range tests {
		r := New(tc.guess, tc.answer)
		assert.False(t, r.Valid(), "%q/%q", tc.guess, tc.answer)
		assert.False(t, r.Complete(), "%q/%q", tc.guess, tc.answer)
		require.Equal(t, tc.wantLen, r.Len())
		for _, c := range r.Classifications() {
			assert.Equal(t, Absent, c)
		}
	}
}

func TestNew_CountsRunesNotBytes(t *testing.T) {
	r := New("café", "cafe")
	assert.True(t, r.Valid())
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []Classification{E, E, E, A}, r.Classifications())
}

func TestNew_InvalidBytesAreNotInterchangeable(t *testing.T) {
	r := New("\xff\xfe", "\xfe\xff")
	assert.True(t, r.Valid())
	assert.False(t, r.Complete())
	assert.Equal(t, []Classification{P, P}, r.Classifications())

	assert.False(t, New("\xff\xff", "\xfe\xfe").Complete())
	assert.True(t, New("x\xff", "X\xff").Complete())
}

func TestResult_ClassificationsIsCopy(t *testing.T) {
	r := New("abc", "abc")
	cs := r.Classifications()
	cs[0] = Absent
	assert.Equal(t, Exact, r.At(0))
}

func TestResult_Counts(t *testing.T) {
	exact, present, absent := New("cacca", "acccc").Counts()
	assert.Equal(t, 2, exact)
	assert.Equal(t, 2, present)
	assert.Equal(t, 1, absent)
}

func TestResult_Symbols(t *testing.T) {
	r := New("cacca", "acccc")
	assert.Equal(t, "🟡🟡🟢🟢⚫", r.Symbols())
	assert.Equal(t, r.Len(), utf8.RuneCountInString(r.Symbols()))

	inv := New("ab", "abcd")
	assert.Equal(t, "⚫⚫⚫⚫", inv.Symbols())
}

func TestClassification_SymbolIsBijective(t *testing.T) {
	seen := map[string]Classification{}
	for _, c := range []Classification{Absent, Present, Exact} {
		s := c.Symbol()
		_, dup := seen[s]
		require.False(t, dup, "symbol %q reused", s)
		seen[s] = c
	}
}

func TestResult_ColorizedPlain(t *testing.T) {
	r := New("crâne", "CRÂNE")
	assert.Equal(t, "CRÂNE", r.ColorizedWith(plainPalette()))
}

func TestResult_ColorizedANSI(t *testing.T) {
	out := New("cat", "cut").ColorizedWith(ansiPalette())
	assert.Contains(t, out, "\x1b[32mC")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "\x1b[32mT")

	out = New("ta", "at").ColorizedWith(ansiPalette())
	assert.Contains(t, out, "\x1b[33mT")
}

func TestResult_ColorizedShorterGuess(t *testing.T) {
	assert.Equal(t, "AB", New("ab", "abcd").ColorizedWith(plainPalette()))
}

func TestResult_Summary(t *testing.T) {
	p := plainPalette()
	assert.Equal(t, "{OK, ✅, crane, crane, CRANE, 🟢🟢🟢🟢🟢}", New("crane", "crane").Summary(p))
	assert.Equal(t, "{OK, ❌, cacca, acccc, CACCA, 🟡🟡🟢🟢⚫}", New("cacca", "acccc").Summary(p))
	assert.Equal(t, "{INVALID, ❌, ab, abc, AB, ⚫⚫⚫}", New("ab", "abc").Summary(p))
}

func TestResult_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(New("ta", "at"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"guess": "ta",
		"answer": "at",
		"valid": true,
		"complete": false,
		"classifications": ["present", "present"],
		"symbols": "🟡🟡"
	}`, string(b))
}

func TestClassification_TextRoundTrip(t *testing.T) {
	var c Classification
	require.NoError(t, c.UnmarshalText([]byte("present")))
	assert.Equal(t, Present, c)
	assert.Error(t, c.UnmarshalText([]byte("green")))

	_, err := Classification(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Classification(9)", Classification(9).String())
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "Always": ColorAlways, " never ": ColorNever, "auto": ColorAuto} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestPaletteFor_NonTerminalIsPlain(t *testing.T) {
	p := PaletteFor(io.Discard, ColorAuto)
	assert.Equal(t, "CAT", New("cat", "cat").ColorizedWith(p))

	p = PaletteFor(io.Discard, ColorAlways)
	assert.Contains(t, New("cat", "cat").ColorizedWith(p), "\x1b[")
}
