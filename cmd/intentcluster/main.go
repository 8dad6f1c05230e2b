// Package main provides the intentcluster command line interface.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/internal/config"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/textnorm"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "intentcluster",
	Short: "Cluster support utterances into intent groups",
	Long: `intentcluster groups short support utterances by intent.

Each batch is normalized, TF-IDF weighted, and clustered with DBSCAN over
cosine similarity. Runs are stateless: no vocabulary or model state is
carried from one batch to the next.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.intentcluster/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig builds the effective configuration and applies its log level.
// The --debug flag wins over the configured level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Level()
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

// newNormalizer assembles the English lexicon and normalizer from config.
func newNormalizer(cfg *config.Config) (*textnorm.Normalizer, error) {
	lex, err := textnorm.English(cfg.ExtraStopWords, cfg.KeepWords)
	if err != nil {
		return nil, err
	}
	return textnorm.New(lex, textnorm.Config{MinTokenLength: cfg.MinTokenLength}), nil
}

func main() {
	// Cluster results go to stdout, so log to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}
