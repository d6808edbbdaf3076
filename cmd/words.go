package cmd

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/daily"
	"github.com/robalobadob/wordle/apps/go-scorer/internal/words"
)

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show word list statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := words.Open(a.cfg.WordsFile)
			if err != nil {
				return fmt.Errorf("load word list: %w", err)
			}
			source := a.cfg.WordsFile
			if source == "" {
				source = "bundled"
			}

			out := cmd.OutOrStdout()
			n, lengths := list.Stats()
			fmt.Fprintf(out, "source: %s\n", source)
			fmt.Fprintf(out, "words: %d\n", n)
			for _, l := range slices.Sorted(maps.Keys(lengths)) {
				fmt.Fprintf(out, "  %d letters: %d\n", l, lengths[l])
			}
			now := time.Now()
			fmt.Fprintf(out, "daily index %s: %d\n", daily.DateKey(now), daily.Schedule{Salt: a.cfg.DailySalt}.Index(now, n))
			return nil
		},
	}
}
