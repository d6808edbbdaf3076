// apps/go-scorer/internal/game/engine.go
//
// Game engine for a single interactive session.
// Responsibilities:
//   - Create sessions around a fixed secret answer.
//   - Score guesses via the score package.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Guesses whose length differs from the answer come back as invalid
//     Results; they are not errors and do not use up a turn.
//   - Secret selection (random, daily, explicit) is the caller's job.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
)

var (
	ErrFinished  = errors.New("game finished")
	ErrNotInList = errors.New("not in word list")
)

// New constructs a new game for answer. maxGuesses <= 0 means unlimited.
func New(answer string, maxGuesses int) *Game {
	if maxGuesses < 0 {
		maxGuesses = 0
	}
	return &Game{
		ID:         uuid.NewString(),
		Answer:     answer,
		MaxGuesses: maxGuesses,
	}
}

// Apply scores guess against the answer and updates the game state.
//
// Validation rules:
//   - Game must not be finished (ErrFinished).
//   - A guess of the wrong length is returned as an invalid Result with no
//     state change.
//   - If Allowed is set, the guess must pass it (ErrNotInList).
//
// State transitions:
//   - Complete result → Finished = true, Won = true.
//   - Else if the number of guesses reaches MaxGuesses → Finished = true (loss).
func (g *Game) Apply(guess string) (score.Result, error) {
	if g.Finished {
		return score.Result{}, ErrFinished
	}
	r := score.New(guess, g.Answer)
	if !r.Valid() {
		return r, nil
	}
	if g.Allowed != nil && !g.Allowed(guess) {
		return r, ErrNotInList
	}

	g.Guesses = append(g.Guesses, r)
	if r.Complete() {
		g.Finished, g.Won = true, true
	} else if g.MaxGuesses > 0 && len(g.Guesses) >= g.MaxGuesses {
		g.Finished = true
	}
	return r, nil
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining returns the guesses left, or -1 when unlimited.
func (g *Game) Remaining() int {
	if g.MaxGuesses == 0 {
		return -1
	}
	return g.MaxGuesses - len(g.Guesses)
}
