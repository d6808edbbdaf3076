// Package cmd wires the scorer's command-line interface.
package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-scorer/internal/config"
)

// app carries the resolved configuration to subcommands.
type app struct {
	cfg config.Config
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Score Wordle guesses",
		Long:          "wordle scores guesses against an answer: exact, present or absent per character.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (overrides WORDLE_CONFIG env var)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().String("words", "", "Path to newline-delimited word list (overrides WORDS_FILE)")
	root.PersistentFlags().String("color", "", "Color output: auto, always, never (overrides WORDLE_COLOR)")

	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newWordsCmd(a))
	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup resolves config (env, file, flags) and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("words") {
		c.WordsFile, _ = flags.GetString("words")
	}
	if flags.Changed("color") {
		c.Color, _ = flags.GetString("color")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	a.cfg = c

	zerolog.SetGlobalLevel(c.Level())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.Logger.WithContext(ctx))
	log.Debug().Str("words", c.WordsFile).Str("color", c.Color).Msg("config loaded")
	return nil
}
