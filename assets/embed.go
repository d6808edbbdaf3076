// Package assets bundles the default secret-word list into the binary.
package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// DefaultWordsFile is the bundled list read by WordList.
const DefaultWordsFile = "words.txt"

// ReadLines returns the trimmed, lowercased, non-blank lines of r.
// Lines starting with '#' are comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the bundled word list.
func WordList() ([]string, error) {
	f, err := FS.Open(DefaultWordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
