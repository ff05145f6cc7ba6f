// Command fastqdedup clusters near-duplicate reads out of a FASTQ
// file. It is a thin driver over the fastqdedup library: no retry
// logic, no resumability, no parallelism.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seqtrie/fastqdedup"
	"github.com/seqtrie/fastqdedup/internal/fastqio"
)

var (
	cfgPath          string
	verbose          bool
	maxDistanceFlag  int
	qualityThreshold float64
	phredOffsetFlag  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fastqdedup",
		Short: "Cluster near-duplicate sequences from a FASTQ file",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (defaults to environment variables)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newDedupCmd())
	return root
}

func newDedupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedup [fastq file]",
		Short: "Read a FASTQ file and print one cluster of near-duplicate reads per line group",
		Args:  cobra.ExactArgs(1),
		RunE:  runDedup,
	}
	cmd.Flags().IntVar(&maxDistanceFlag, "max-distance", -1, "maximum Hamming distance for clustering (overrides config)")
	cmd.Flags().Float64Var(&qualityThreshold, "quality-threshold", -1, "maximum average error rate to keep a read (overrides config)")
	cmd.Flags().IntVar(&phredOffsetFlag, "phred-offset", -1, "ASCII phred offset (overrides config)")
	return cmd
}

func runDedup(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := log.With().Str("component", "dedup").Logger()

	cfg, err := fastqdedup.LoadConfig(cfgPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if maxDistanceFlag >= 0 {
		cfg.MaxHammingDistance = maxDistanceFlag
	}
	if qualityThreshold >= 0 {
		cfg.QualityThreshold = qualityThreshold
	}
	if phredOffsetFlag >= 0 {
		cfg.PhredOffset = byte(phredOffsetFlag)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "open %q", args[0])
	}
	defer f.Close()

	trie := fastqdedup.NewTrie()
	if cfg.SeedAlphabet != "" {
		trie, err = fastqdedup.NewTrieWithSeed([]byte(cfg.SeedAlphabet))
		if err != nil {
			return errors.Wrap(err, "seed alphabet")
		}
	}

	qf := fastqdedup.NewQualityFilter(cfg.QualityThreshold, cfg.PhredOffset)
	reader := fastqio.NewReader(f)

	var total, kept int
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read record")
		}
		total++

		ok, err := qf.Passes(rec.Quality)
		if err != nil {
			return errors.Wrapf(err, "quality filter for %q", rec.ID)
		}
		if !ok {
			continue
		}
		if err := trie.Add(rec.Sequence); err != nil {
			return errors.Wrapf(err, "add sequence %q", rec.ID)
		}
		kept++
	}
	logger.Info().Int("total", total).Int("kept", kept).Msg("loaded records")
	if verbose {
		stats := trie.PoolStats()
		logger.Debug().Int64("nodes_allocated", stats.TotalAllocated).Int64("nodes_live", stats.CurrentLive).Msg("node pool")
	}

	clusters := 0
	for {
		cluster, err := trie.PopCluster(cfg.MaxHammingDistance)
		if err != nil {
			if errors.Is(err, fastqdedup.ErrEmpty) {
				break
			}
			return errors.Wrap(err, "pop cluster")
		}
		clusters++
		fmt.Printf("cluster %d:\n", clusters)
		for _, m := range cluster {
			fmt.Printf("  %d\t%s\n", m.Count, m.Sequence)
		}
	}
	logger.Info().Int("clusters", clusters).Msg("done")
	return nil
}
