package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the clustering HTTP API",
	Long: `Serve the clustering pipeline over HTTP. Every request is an
independent batch; the process keeps no state between requests beyond
run counters.`,
	RunE: runServeCmd,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}

	norm, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	svc := server.New(cfg, norm, Version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return svc.Shutdown(shutdownCtx)
}
