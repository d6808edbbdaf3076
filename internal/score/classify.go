// apps/go-scorer/internal/score/classify.go
//
// Two-pass Wordle scoring over Unicode characters.
//
// Pass 1:
//   - Mark exact matches as Exact and consume that answer slot.
//
// Pass 2:
//   - For each remaining guess character, consume the first unconsumed answer
//     slot holding the same character and mark Present; otherwise Absent.
//
// Both passes draw from one pool of answer slots, so no answer character is
// ever credited to more than one guess position.

package score

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Classify scores guess against answer and reports whether every position is Exact.
// guess and answer must have the same number of runes; if they do not, the
// result is an all-Absent slice of the longer length and false.
func Classify(guess, answer string) ([]Classification, bool) {
	g := foldRunes(guess)
	a := foldRunes(answer)
	res := make([]Classification, max(len(g), len(a)))
	if len(g) != len(a) {
		return res, false
	}

	consumed := make([]bool, len(a))

	// First pass: exact hits.
	for i := range g {
		if g[i] == a[i] {
			res[i] = Exact
			consumed[i] = true
		}
	}

	// Second pass: leftmost unconsumed match anywhere in the answer.
	for i := range g {
		if res[i] == Exact {
			continue
		}
		for pos := range a {
			if !consumed[pos] && a[pos] == g[i] {
				res[i] = Present
				consumed[pos] = true
				break
			}
		}
	}

	return res, allExact(res)
}

// foldRunes splits s into characters and case-folds each one independently.
// A folded character may expand to several runes (ß → ss), so keys are strings.
// An invalid UTF-8 byte is keyed by the raw byte itself, so it only matches
// the identical byte and never another invalid byte or a real U+FFFD.
func foldRunes(s string) []string {
	c := cases.Fold()
	out := make([]string, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, s[i:i+1])
		} else {
			out = append(out, c.String(s[i:i+size]))
		}
		i += size
	}
	return out
}

// allExact returns true if every entry of m is Exact.
func allExact(m []Classification) bool {
	for _, x := range m {
		if x != Exact {
			return false
		}
	}
	return true
}
