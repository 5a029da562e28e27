package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/render"
	"github.com/robalobadob/wordle/apps/go-engine/internal/wordle"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score SECRET GUESS",
		Short: "Score a guess against a secret",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, guess := strings.ToLower(args[0]), strings.ToLower(args[1])
			g, err := wordle.NewGuess(secret, guess)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.NewStyles(cmd.OutOrStdout()).Row(g))
			return nil
		},
	}
}

func newFilterCmd(a *app) *cobra.Command {
	var dictPath string
	cmd := &cobra.Command{
		Use:   "filter GUESS MASK",
		Short: "List answers consistent with a scored guess",
		Long: `Print every word of the dictionary that would have produced MASK for GUESS.
MASK uses G (correct), Y (misplaced) and . (wrong), e.g. "GY..G".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := wordle.ParseMask(args[1])
			if err != nil {
				return err
			}
			dict, err := words.Load(dictPath, "")
			if err != nil {
				return err
			}
			out, err := wordle.FilterParallel(cmd.Context(), strings.ToLower(args[0]), mask,
				dict.Answers(), a.cfg.Game.FilterWorkers)
			if err != nil {
				return err
			}
			for _, w := range out {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			log.Debug().Int("candidates", len(out)).Msg("filtered")
			return nil
		},
	}
	cmd.Flags().StringVar(&dictPath, "dict", "", "word file, one per line (default embedded answers)")
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip-dict IN OUT",
		Short: "Drop frequency counts from a \"word count\" dictionary file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := words.StripCountsFile(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d words to %s\n", n, args[1])
			return nil
		},
	}
}
