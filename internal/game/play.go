package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
)

// Play runs the read-guess-print loop: one guess per input line, the
// colorized result printed after each. It returns nil when the game ends or
// input is exhausted, and ctx.Err() if ctx is cancelled between guesses.
func Play(ctx context.Context, in io.Reader, out io.Writer, g *Game, p *score.Palette) error {
	log := zerolog.Ctx(ctx).With().Str("game", g.ID).Logger()
	n := utf8.RuneCountInString(g.Answer)

	fmt.Fprintf(out, "Guess the %d-letter word.\n", n)

	sc := bufio.NewScanner(in)
	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read guess: %w", err)
			}
			log.Debug().Int("guesses", len(g.Guesses)).Msg("input closed")
			return nil
		}
		guess := sc.Text()

		r, err := g.Apply(guess)
		switch {
		case errors.Is(err, ErrNotInList):
			fmt.Fprintf(out, "%s  not in word list\n", r.ColorizedWith(p))
			continue
		case err != nil:
			return err
		case !r.Valid():
			fmt.Fprintf(out, "%q has %d letters, need %d\n", guess, utf8.RuneCountInString(guess), n)
			continue
		}

		log.Debug().Str("result", r.Summary(p)).Int("guess", len(g.Guesses)).Msg("scored")
		fmt.Fprintln(out, r.ColorizedWith(p))
	}

	switch g.State() {
	case StateWon:
		fmt.Fprintf(out, "Solved in %d.\n", len(g.Guesses))
	case StateLost:
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", g.Answer)
	}
	log.Info().Str("state", string(g.State())).Int("guesses", len(g.Guesses)).Msg("game over")
	return nil
}
