// apps/go-scorer/internal/score/types.go
//
// Core type definitions for guess scoring.
// Defines:
//   - Classification: per-position verdict of a guess (exact/present/absent).
//   - Result: immutable scoring of one guess against one answer.

package score

import "fmt"

// Classification represents the evaluation result for a single character of a guess.
// Possible values:
//   - Absent:  character does not occur in any unmatched answer position.
//   - Present: character occurs elsewhere in the answer, not yet matched.
//   - Exact:   character matches the answer at this position.
//
// The zero value is Absent, so freshly allocated slices start out all-absent.
type Classification uint8

const (
	Absent Classification = iota
	Present
	Exact
)

// String returns the lowercase name used in logs and JSON.
func (c Classification) String() string {
	switch c {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	}
	return fmt.Sprintf("Classification(%d)", uint8(c))
}

// Symbol returns the compact marker for c.
func (c Classification) Symbol() string {
	switch c {
	case Exact:
		return "🟢"
	case Present:
		return "🟡"
	default:
		return "⚫"
	}
}

// MarshalText encodes c by its String name; unknown values are an error.
func (c Classification) MarshalText() ([]byte, error) {
	switch c {
	case Absent, Present, Exact:
		return []byte(c.String()), nil
	}
	return nil, fmt.Errorf("score: invalid classification %d", uint8(c))
}

// UnmarshalText accepts the names produced by MarshalText.
func (c *Classification) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*c = Absent
	case "present":
		*c = Present
	case "exact":
		*c = Exact
	default:
		return fmt.Errorf("score: unknown classification %q", b)
	}
	return nil
}

// Result holds the scoring of a guess against an answer.
// It is never mutated after New returns; accessors hand out copies.
type Result struct {
	guess           string           // guess as given (case preserved)
	answer          string           // answer as given
	valid           bool             // equal rune counts
	complete        bool             // every classification is Exact
	classifications []Classification // len == max(runes(guess), runes(answer))
}
