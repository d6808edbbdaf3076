package score

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColorMode selects when colorized output carries escape sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never (case-insensitive). Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("score: unknown color mode %q", s)
}

// Palette maps classifications to foreground styles.
type Palette struct {
	exact   lipgloss.Style
	present lipgloss.Style
	absent  lipgloss.Style
}

// NewPalette builds the green / yellow / neutral palette on renderer r.
func NewPalette(r *lipgloss.Renderer) *Palette {
	return &Palette{
		exact:   r.NewStyle().Foreground(lipgloss.Color("2")),
		present: r.NewStyle().Foreground(lipgloss.Color("3")),
		absent:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PaletteFor returns a palette for output written to w.
// In auto mode colour is only emitted when w is a terminal.
func PaletteFor(w io.Writer, mode ColorMode) *Palette {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return NewPalette(r)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

func (p *Palette) style(c Classification) lipgloss.Style {
	switch c {
	case Exact:
		return p.exact
	case Present:
		return p.present
	default:
		return p.absent
	}
}

// Colorized renders the upper-cased guess with the default palette.
func (r Result) Colorized() string { return r.ColorizedWith(defaultPalette) }

// ColorizedWith renders each guess character upper-cased and coloured by its
// classification.
func (r Result) ColorizedWith(p *Palette) string {
	if p == nil {
		p = defaultPalette
	}
	upper := cases.Upper(language.Und)
	var b strings.Builder
	i := 0
	for _, ch := range r.guess {
		b.WriteString(p.style(r.classifications[i]).Render(upper.String(string(ch))))
		i++
	}
	return b.String()
}
