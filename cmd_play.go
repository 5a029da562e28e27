package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/render"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

type playOpts struct {
	bot    bool
	daily  bool
	rounds int
}

func newPlayCmd(a *app) *cobra.Command {
	o := &playOpts{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.rounds < 1 {
				return fmt.Errorf("--rounds must be at least 1")
			}
			if o.daily && o.rounds > 1 {
				return fmt.Errorf("--daily plays a single round; drop --rounds")
			}
			dict, err := words.Load(a.cfg.Words.AnswersFile, a.cfg.Words.AllowedFile)
			if err != nil {
				return err
			}
			return play(cmd.Context(), a, dict, o, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&o.bot, "bot", false, "let the random-candidate bot guess")
	cmd.Flags().BoolVar(&o.daily, "daily", false, "play today's word")
	cmd.Flags().IntVar(&o.rounds, "rounds", 1, "number of rounds")
	return cmd
}

func play(ctx context.Context, a *app, dict *words.Dictionary, o *playOpts, in io.Reader, out io.Writer) error {
	st := render.NewStyles(out)
	kind := game.KindHuman
	if o.bot {
		kind = game.KindBot
	}
	guesser, err := game.NewGuesser(kind, in, out, dict.Answers())
	if err != nil {
		return err
	}
	picker := daily.Picker{Salt: a.cfg.Daily.Salt}

	var record game.ScoreRecord
	for round := 1; round <= o.rounds; round++ {
		secret := dict.RandomAnswer()
		if o.daily {
			date, s, ok := picker.Pick(dict.Answers())
			if !ok {
				return words.ErrEmpty
			}
			secret = s
			fmt.Fprintf(out, "daily word for %s\n", date)
		}
		if bot, ok := guesser.(*game.BotGuesser); ok {
			bot.Reset(dict.Answers())
		}

		g := game.New(secret,
			game.WithMaxGuesses(a.cfg.Game.MaxGuesses),
			game.WithAllowed(dict.IsAllowed),
			game.WithCandidates(dict.Answers()),
			game.WithWorkers(a.cfg.Game.FilterWorkers),
		)
		fmt.Fprintf(out, "round %d: %d guesses\n", round, g.MaxGuesses)

		state, err := game.Play(ctx, g, guesser, func(t game.Turn) {
			switch {
			case errors.Is(t.Err, game.ErrNotAllowed):
				fmt.Fprintln(out, "not in word list")
			case t.Err != nil:
				fmt.Fprintf(out, "please enter a %d-letter word\n", g.Length)
			case o.bot:
				fmt.Fprintf(out, "%s  %d left\n", st.Row(t.Guess), t.Remaining)
			default:
				fmt.Fprintln(out, st.Row(t.Guess))
			}
		})
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		record.Record(state == game.StateWon)
		fmt.Fprintln(out, st.Board(g.Guesses(), g.MaxGuesses, g.Length))
		if state == game.StateWon {
			fmt.Fprintf(out, "solved in %d\n", len(g.Guesses()))
		} else {
			fmt.Fprintf(out, "the word was %s\n", secret)
		}
	}
	fmt.Fprintln(out, st.Summary(record))
	return nil
}

