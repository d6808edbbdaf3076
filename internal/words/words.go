// apps/go-scorer/internal/words/words.go
//
// Word list management for secret selection.
//
// Responsibilities:
//   - Load a newline-delimited word list from disk, or fall back to the list
//     bundled in the assets package.
//   - Supply RandomAnswer-style helpers: Random, At, Contains, Len.
//
// Constraints:
//   • Lists are trimmed and normalized to lowercase.
//   • Blank lines and '#' comments are skipped.
//   • Word length is not restricted; the scorer handles any Unicode word.
//   • The bundled list is loaded once (sync.Once).

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-scorer/assets"
)

// ErrEmpty is returned when a word list has no usable entries.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable word list with a lookup set.
type List struct {
	words []string
	set   map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// Default returns the bundled word list, loading it on first use.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		ws, err := assets.WordList()
		if err != nil {
			defaultErr = fmt.Errorf("words: read bundled list: %w", err)
			return
		}
		defaultList, defaultErr = New(ws)
	})
	return defaultList, defaultErr
}

// Load reads one word per line from path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	ws, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return New(ws)
}

// Open loads path when set, otherwise the bundled list.
func Open(path string) (*List, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// New builds a List from ws. Entries are normalized and de-duplicated,
// first occurrence wins.
func New(ws []string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in file order.
func (l *List) At(i int) string { return l.words[i] }

// Contains reports whether w is in the list (case-insensitive).
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// Stats reports the number of words and the distinct word lengths (in runes).
func (l *List) Stats() (count int, lengths map[int]int) {
	lengths = make(map[int]int)
	for _, w := range l.words {
		lengths[utf8.RuneCountInString(w)]++
	}
	return len(l.words), lengths
}
