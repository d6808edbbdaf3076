package score

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// New scores guess against answer.
//
// New never fails: when the character counts differ the Result is marked
// invalid, Complete is false and Classifications is an all-Absent slice of
// the longer length. Callers must check Valid before trusting the rest.
func New(guess, answer string) Result {
	gn := utf8.RuneCountInString(guess)
	an := utf8.RuneCountInString(answer)

	r := Result{
		guess:  guess,
		answer: answer,
		valid:  gn == an,
	}
	if r.valid {
		r.classifications, r.complete = Classify(guess, answer)
	} else {
		r.classifications = make([]Classification, max(gn, an))
	}
	return r
}

// Valid reports whether guess and answer have the same number of characters.
func (r Result) Valid() bool { return r.valid }

// Complete reports whether every position is Exact. Always false when !Valid().
func (r Result) Complete() bool { return r.complete }

// Guess returns the guess as given, case preserved.
func (r Result) Guess() string { return r.guess }

// Answer returns the answer as given.
func (r Result) Answer() string { return r.answer }

// Len is the number of classified positions.
func (r Result) Len() int { return len(r.classifications) }

// Classifications returns a copy of the per-position verdicts.
func (r Result) Classifications() []Classification {
	out := make([]Classification, len(r.classifications))
	copy(out, r.classifications)
	return out
}

// At returns the verdict for position i.
func (r Result) At(i int) Classification { return r.classifications[i] }

// Counts tallies the verdicts. Meaningless when !Valid().
func (r Result) Counts() (exact, present, absent int) {
	for _, c := range r.classifications {
		switch c {
		case Exact:
			exact++
		case Present:
			present++
		default:
			absent++
		}
	}
	return exact, present, absent
}

// Symbols renders one marker per position, e.g. "🟢🟡⚫⚫🟢".
func (r Result) Symbols() string {
	var b strings.Builder
	for _, c := range r.classifications {
		b.WriteString(c.Symbol())
	}
	return b.String()
}

// Summary combines validity, completion, the inputs and both renderings:
//
//	{OK, ✅, crane, crane, CRANE, 🟢🟢🟢🟢🟢}
func (r Result) Summary(p *Palette) string {
	valid := "INVALID"
	if r.valid {
		valid = "OK"
	}
	done := "❌"
	if r.complete {
		done = "✅"
	}
	return fmt.Sprintf("{%s, %s, %s, %s, %s, %s}",
		valid, done, r.guess, r.answer, r.ColorizedWith(p), r.Symbols())
}

// String is Summary with the default palette.
func (r Result) String() string { return r.Summary(defaultPalette) }

type resultJSON struct {
	Guess           string           `json:"guess"`
	Answer          string           `json:"answer"`
	Valid           bool             `json:"valid"`
	Complete        bool             `json:"complete"`
	Classifications []Classification `json:"classifications"`
	Symbols         string           `json:"symbols"`
}

// MarshalJSON encodes the inputs, flags, verdict names and symbols.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Guess:           r.guess,
		Answer:          r.answer,
		Valid:           r.valid,
		Complete:        r.complete,
		Classifications: r.classifications,
		Symbols:         r.Symbols(),
	})
}
