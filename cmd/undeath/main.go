// Command undeath searches for Game of Life predecessor chains: given a
// target board, it runs the chain driver until interrupted, periodically
// persisting the longest discovered chain to a run directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"undeath/internal/chain"
	"undeath/internal/config"
	"undeath/internal/grid"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var workers int
	var microStepSize int
	var maxAttempts int
	var outDir string

	root := &cobra.Command{
		Use:   "undeath",
		Short: "Search for Game of Life predecessor chains",
	}

	cmd := &cobra.Command{
		Use:   "search <board-file>",
		Short: "Search for Game of Life predecessor chains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Board = args[0]
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("micro-step") {
				cfg.MicroStepSize = microStepSize
			}
			if cmd.Flags().Changed("max-attempts") {
				cfg.MaxAttempts = maxAttempts
			}
			if cmd.Flags().Changed("out-dir") {
				cfg.OutDir = outDir
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file overlaid with defaults")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size")
	cmd.Flags().IntVar(&microStepSize, "micro-step", 0, "iterations per Searcher.Search call")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "sequences dispatched per macro-step")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "parent directory for run directories")

	root.AddCommand(cmd)
	return root
}

func run(cfg config.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	f, err := os.Open(cfg.Board)
	if err != nil {
		log.Fatal().Err(err).Str("board", cfg.Board).Msg("failed to open target board")
	}
	start, err := grid.ParseBoard(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse target board")
	}

	runDir, err := chain.NewRunDir(cfg.OutDir, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create run directory")
	}
	log.Info().Str("run_dir", runDir).Msg("starting search")

	driver := chain.NewDriver(chain.Config{
		Workers:       cfg.Workers,
		MicroStepSize: cfg.MicroStepSize,
		MaxAttempts:   cfg.MaxAttempts,
		Shuffle:       true,
	}, start, log, time.Now().UnixNano())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		running, err := driver.Step(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("macro-step aborted")
		}

		if driver.MacroStep()%cfg.SnapshotEvery == 0 {
			if best := driver.BestSequence(); best != nil {
				if err := chain.WriteSnapshot(runDir, driver.MacroStep(), best); err != nil {
					log.Fatal().Err(err).Msg("failed to persist snapshot")
				}
			}
		}

		if !running {
			fmt.Fprintln(os.Stdout, "all sequences terminated")
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}
