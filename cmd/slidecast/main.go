package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/slidecast/internal/batch"
	"github.com/nguyentantai21042004/slidecast/internal/config"
	"github.com/nguyentantai21042004/slidecast/internal/logger"
	"github.com/nguyentantai21042004/slidecast/internal/pipeline"
	"github.com/nguyentantai21042004/slidecast/pkg/executor"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "slidecast",
		Short:         "Turn slide decks into narrated videos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "config file path")
	root.AddCommand(newConvertCmd(), newBatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <deck-dir>",
		Short: "Convert one deck directory into a narrated video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipe, err := pipeline.New(cfg, executor.New(), log)
			if err != nil {
				return err
			}

			deckDir := args[0]
			out := output
			if out == "" {
				out = filepath.Base(filepath.Clean(deckDir)) + ".mp4"
			}

			report, err := pipe.Run(ctx, deckDir, out)
			if err != nil {
				return err
			}

			log.Info(ctx, "Done: %s (%.1fs)", report.Output, report.Seconds)
			if report.Dropped > 0 {
				log.Warn(ctx, "%d of %d slides have no own narration", report.Dropped, report.Slides)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output video path (default: <deck>.mp4)")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert every deck under paths.input into paths.output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipe, err := pipeline.New(cfg, executor.New(), log)
			if err != nil {
				return err
			}

			if err := batch.New(cfg, pipe, log, watch).Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep watching paths.input for new decks")
	return cmd
}

func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()
	log.Info(ctx, "slidecast starting on %s/%s (%d CPUs)", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Language: %s, resolution: %s, workers: %d",
		cfg.TTS.Language, cfg.Video.Resolution, cfg.Performance.MaxWorkers)

	return cfg, log, nil
}
