package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/williamzebrowskI/Intent-Cluster-Analysis/internal/config"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/internal/watcher"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/cluster"
	"github.com/williamzebrowskI/Intent-Cluster-Analysis/pkg/pipeline"
)

var (
	clusterInput     string
	clusterOutput    string
	clusterFormat    string
	clusterEps       float64
	clusterMinPoints int
	clusterWorkers   int
	clusterWatch     bool
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster a batch of utterances from a file or stdin",
	Long: `Read one utterance per line, blank lines skipped, and print the
intent groups. With --watch the batch is re-run whenever the input file
changes; each run is still a full, independent batch.`,
	RunE: runClusterCmd,
}

func init() {
	clusterCmd.Flags().StringVarP(&clusterInput, "input", "i", "-", "input file, - for stdin")
	clusterCmd.Flags().StringVarP(&clusterOutput, "output", "o", "-", "output file, - for stdout")
	clusterCmd.Flags().StringVar(&clusterFormat, "format", "text", "output format: text or json")
	clusterCmd.Flags().Float64Var(&clusterEps, "eps", config.DefaultEps, "neighborhood radius in cosine distance")
	clusterCmd.Flags().IntVar(&clusterMinPoints, "min-points", config.DefaultMinPoints, "minimum neighborhood size for a core point")
	clusterCmd.Flags().IntVar(&clusterWorkers, "workers", config.DefaultWorkers, "similarity matrix worker count")
	clusterCmd.Flags().BoolVar(&clusterWatch, "watch", false, "re-run when the input file changes")
	rootCmd.AddCommand(clusterCmd)
}

func runClusterCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("eps") {
		cfg.Eps = clusterEps
	}
	if cmd.Flags().Changed("min-points") {
		cfg.MinPoints = clusterMinPoints
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = clusterWorkers
	}
	if clusterFormat != "text" && clusterFormat != "json" {
		return fmt.Errorf("unknown format %q, want text or json", clusterFormat)
	}

	norm, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	p, err := pipeline.New(norm, pipeline.Options{
		Eps:       cfg.Eps,
		MinPoints: cfg.MinPoints,
		Workers:   cfg.Workers,
	})
	if err != nil {
		return err
	}

	run := func() error {
		utterances, err := readUtterances(clusterInput)
		if err != nil {
			return err
		}
		res, err := p.Run(cmd.Context(), utterances)
		if err != nil {
			return err
		}
		return writeResult(clusterOutput, clusterFormat, res)
	}

	if err := run(); err != nil {
		return err
	}
	if !clusterWatch {
		return nil
	}
	if clusterInput == "" || clusterInput == "-" {
		return errors.New("--watch needs --input pointing at a file")
	}

	w, err := watcher.New(clusterInput, func() {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("Re-run failed")
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	log.Info().Str("path", clusterInput).Msg("Watching input for changes")
	<-cmd.Context().Done()
	return nil
}

// readUtterances reads one utterance per line, skipping blank lines.
func readUtterances(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var utterances []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			utterances = append(utterances, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return utterances, nil
}

func writeResult(path, format string, res *pipeline.Result) error {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return writeText(w, res)
}

// writeText prints the groups in label order, noise first.
func writeText(w io.Writer, res *pipeline.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d utterances, %d clusters, %d noise\n",
		len(res.Labels), res.ClusterCount, res.NoiseCount)
	for _, g := range res.Groups {
		name := fmt.Sprintf("cluster %d", g.Label)
		if g.Label == cluster.Noise {
			name = "noise"
		}
		fmt.Fprintf(bw, "\n%s (%d):\n", name, len(g.Utterances))
		for _, u := range g.Utterances {
			fmt.Fprintf(bw, "  %s\n", u)
		}
	}
	return bw.Flush()
}
