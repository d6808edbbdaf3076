package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/daily"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/game"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/words"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		answer     string
		useDaily   bool
		strict     bool
		maxGuesses int
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess a secret word interactively",
		Long: "Reads one guess per line and prints the colorized result until the word is found.\n" +
			"The secret is --answer if given, otherwise today's daily word with --daily, otherwise a random word.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-guesses") {
				maxGuesses = a.cfg.MaxGuesses
			}
			if maxGuesses < 0 {
				return fmt.Errorf("--max-guesses must be >= 0")
			}

			var list *words.List
			if answer == "" || strict {
				var err error
				if list, err = words.Open(a.cfg.WordsFile); err != nil {
					return fmt.Errorf("load word list: %w", err)
				}
			}

			secret := answer
			switch {
			case secret != "":
			case useDaily:
				now := time.Now()
				var idx int
				secret, idx = daily.Schedule{Salt: a.cfg.DailySalt}.Word(list, now)
				log.Debug().Str("date", daily.DateKey(now)).Int("index", idx).Msg("daily word")
			default:
				secret = list.Random()
			}

			g := game.New(secret, maxGuesses)
			if strict {
				g.Allowed = list.Contains
			}
			log.Info().Str("game", g.ID).Int("maxGuesses", maxGuesses).Msg("starting game")

			out := cmd.OutOrStdout()
			return game.Play(cmd.Context(), cmd.InOrStdin(), out, g, score.PaletteFor(out, a.cfg.ColorMode()))
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "Fixed secret word")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "Use today's deterministic word")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject guesses that are not in the word list")
	cmd.Flags().IntVar(&maxGuesses, "max-guesses", 0, "Maximum guesses, 0 for unlimited (overrides WORDLE_MAX_GUESSES)")
	return cmd
}
