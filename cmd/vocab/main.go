package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kapu/vocab-sampler-go/internal/app"
	"github.com/kapu/vocab-sampler-go/internal/config"
	"github.com/kapu/vocab-sampler-go/internal/util"
)

const version = "1.0.0"

var (
	cfg    *config.Config
	logger *zap.Logger

	flagConfig string
	flagInput  string
	flagCount  int
	flagLevel  string
	flagSeed   int64
	flagOut    string
)

var rootCmd = &cobra.Command{
	Use:     "vocab",
	Short:   "Sample vocabulary words and enrich them with dictionary data",
	Long: `vocab draws a random sample from a CSV vocabulary dataset, looks each
word up in WordsAPI, prints a practice report and writes the session
as a JSON artifact. Without WORDS_API_KEY the lookup step is skipped
and the report carries the dataset columns only.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}

		applyFlagOverrides(cmd, cfg)
		// Flags can reintroduce invalid values after the initial load.
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Vocabulary sampler starting",
			zap.String("version", version),
			zap.String("dataset", cfg.Dataset.Path),
			zap.String("log_level", cfg.Logging.Level),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Interrupt cancels the context: remaining lookups fail fast without
	// pacing and the run completes with whatever was fetched.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	return app.NewPipeline(cfg, logger).Run(ctx)
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Dataset.Path = flagInput
	}
	if flags.Changed("count") {
		cfg.Sampler.Count = flagCount
	}
	if flags.Changed("level") {
		cfg.Sampler.Level = flagLevel
	}
	if flags.Changed("seed") {
		cfg.Sampler.Seed = flagSeed
	}
	if flags.Changed("out") {
		cfg.Output.Path = flagOut
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Path to the vocabulary CSV dataset")

	rootCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "Number of words to sample")
	rootCmd.Flags().StringVarP(&flagLevel, "level", "l", "", "Only sample words tagged with this level")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Fixed sampler seed (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Path for the JSON session artifact")

	rootCmd.AddCommand(newLevelsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("Session failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
