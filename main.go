// Command wordle-engine scores Wordle guesses, narrows candidate lists,
// serves the HTTP API and runs console rounds.
//
//	wordle-engine serve
//	wordle-engine play [--bot] [--daily] [--rounds N]
//	wordle-engine score SECRET GUESS
//	wordle-engine filter GUESS MASK [--dict FILE]
//	wordle-engine strip-dict IN OUT
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
)

// app carries what PersistentPreRunE loaded to the subcommands.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "wordle-engine",
		Short:         "Wordle scoring and candidate filtering",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
			}
			setupLogging(cfg)
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $WORDLE_CONFIG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override LOG_LEVEL")

	root.AddCommand(
		newServeCmd(a),
		newPlayCmd(a),
		newScoreCmd(a),
		newFilterCmd(a),
		newStripCmd(a),
	)
	return root
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg *config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wordle-engine")
		os.Exit(1)
	}
}
