// Package daily picks a deterministic secret word per calendar day.
//
// A Schedule maps each UTC date to a position in a word list by keying
// HMAC-SHA256 with a salt, so every player using the same salt and list
// gets the same word on the same day, and the sequence cannot be guessed
// without the salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker is the subset of a word list a Schedule draws from.
type Picker interface {
	Len() int
	At(i int) string
}

// Schedule assigns one word per UTC day.
type Schedule struct {
	Salt string
}

// Index returns the list position for date in a list of n words.
// It is 0 when n <= 0.
func (s Schedule) Index(date time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(s.Salt))
	mac.Write([]byte(DateKey(date)))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return int(seed % uint64(n))
}

// Word returns the word scheduled for date and its position in list.
func (s Schedule) Word(list Picker, date time.Time) (string, int) {
	i := s.Index(date, list.Len())
	return list.At(i), i
}
