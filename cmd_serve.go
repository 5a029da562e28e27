package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	cfg := a.cfg
	dict, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		return err
	}
	na, ng := dict.Stats()
	log.Info().Int("answers", na).Int("allowed", ng).Msg("word lists loaded")

	if cfg.Words.Watch {
		go func() {
			if err := words.Watch(ctx, dict, words.DefaultDebounce); err != nil {
				log.Error().Err(err).Msg("word list watcher stopped")
			}
		}()
	}

	players, err := store.OpenPlayers(cfg.DBPath)
	if err != nil {
		return err
	}
	defer players.Close()

	mem := store.NewMemoryStore()
	go mem.RunSweeper(ctx, cfg.Sessions.SweepInterval, cfg.Sessions.MaxAge)

	srv := httpserver.New(cfg, dict, mem, players)
	log.Info().Str("port", cfg.Port).Msg("starting go-engine")
	return srv.Run(ctx, ":"+cfg.Port)
}
