// apps/go-scorer/internal/game/types.go
//
// Core type definitions for an interactive guessing session.
// Defines:
//   - State: coarse session state (playing/won/lost).
//   - Game: state for a single in-progress or finished session.

package game

import "github.com/robalobadob/wordle/apps/go-scorer/internal/score"

// State is the coarse state of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single guessing session.
type Game struct {
	ID         string         // Unique session identifier (UUID).
	Answer     string         // The secret word, as supplied.
	MaxGuesses int            // Maximum valid guesses; 0 means unlimited.
	Guesses    []score.Result // Valid guesses scored so far.
	Finished   bool           // True once the game is over (won or lost).
	Won        bool           // True if the game was finished with a win.

	// Allowed, when set, rejects guesses that are not in a word list.
	Allowed func(guess string) bool
}
