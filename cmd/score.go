package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/score"
)

func newScoreCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "score <guess> <answer> [<guess> <answer>...]",
		Short: "Score guess/answer pairs",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected guess/answer pairs, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := score.PaletteFor(out, a.cfg.ColorMode())
			enc := json.NewEncoder(out)

			for i := 0; i+1 < len(args); i += 2 {
				r := score.New(args[i], args[i+1])
				log.Debug().Str("guess", r.Guess()).Bool("valid", r.Valid()).Bool("complete", r.Complete()).Msg("scored")
				if asJSON {
					if err := enc.Encode(r); err != nil {
						return fmt.Errorf("encode result: %w", err)
					}
					continue
				}
				fmt.Fprintf(out, "scored = %s\n", r.Summary(p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per pair")
	return cmd
}
