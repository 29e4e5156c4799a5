package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/stegotext"
	"github.com/yyyoichi/stegotext/config"
	"github.com/yyyoichi/stegotext/harness"
	"github.com/yyyoichi/stegotext/internal/db"
	"github.com/yyyoichi/stegotext/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Benchmark both methods over the cover texts and secrets",
	Long: `Runs every cover x secret combination with the Space and Zero-Width
methods, repeats each one, and prints the averaged results as a table.
The corpus is built in unless --config points to a YAML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runBenchmark(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "", "YAML file with covers, secrets and settings")
	runCmd.Flags().IntP("repeat", "n", 0, "repetitions per combination (default 3)")
	runCmd.Flags().String("staging", "", "HTML staging file")
	runCmd.Flags().String("db", "", "sqlite file to store trials and averages")
	runCmd.Flags().String("chart", "", "write an HTML chart of the averages to this file")
	runCmd.Flags().String("cache-dir", "", "HTTP cache directory for url covers")
	runCmd.Flags().BoolP("quiet", "q", false, "log nothing, print only the results table")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("repeat") {
		cfg.Repeat, _ = flags.GetInt("repeat")
	}
	if flags.Changed("staging") {
		cfg.Staging, _ = flags.GetString("staging")
	}
	if flags.Changed("db") {
		cfg.Database, _ = flags.GetString("db")
	}
	if flags.Changed("chart") {
		cfg.Chart, _ = flags.GetString("chart")
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir, _ = flags.GetString("cache-dir")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBenchmark(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		logger = log.New(io.Discard, "", 0)
	}

	covers, err := cfg.Resolve(ctx, config.NewCachedFetcher(cfg.CacheDirOrDefault()))
	if err != nil {
		return err
	}
	secrets := cfg.SecretMessages()
	for _, s := range secrets {
		if !stegotext.Representable(s.Msg) {
			logger.Printf("[WARN] Secret=%s has runes above U+00FF; only their low byte is embedded\n", s.Name)
		}
	}

	h, err := harness.New(
		harness.WithRepeat(cfg.RepeatOrDefault()),
		harness.WithStagingPath(cfg.StagingOrDefault()),
		harness.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	started := time.Now()
	logger.Printf("Starting benchmark: %d covers x %d secrets x %d repetitions\n",
		len(covers), len(secrets), cfg.RepeatOrDefault())
	trials, err := h.Run(ctx, covers, secrets)
	if err != nil {
		return fmt.Errorf("benchmark aborted after %d trials: %w", len(trials), err)
	}
	logger.Printf("Finished %d trials in %v\n", len(trials), time.Since(started))

	aggregates := harness.Aggregate(trials)
	if err := report.WriteTable(cmd.OutOrStdout(), aggregates); err != nil {
		return err
	}

	if cfg.Chart != "" {
		if err := writeChart(cfg.Chart, aggregates); err != nil {
			return err
		}
		logger.Printf("Generated: %s\n", cfg.Chart)
	}
	if cfg.Database != "" {
		runID, err := storeResults(cfg.Database, started, cfg.RepeatOrDefault(), trials, aggregates)
		if err != nil {
			return err
		}
		logger.Printf("Stored run %s in %s\n", runID, cfg.Database)
	}
	return nil
}

func writeChart(path string, aggregates []harness.AggregateResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed create chart file: %w", err)
	}
	defer f.Close()
	return report.WriteChart(f, aggregates)
}

func storeResults(path string, started time.Time, repeat int, trials []harness.TrialResult, aggregates []harness.AggregateResult) (string, error) {
	database, err := db.Open(path)
	if err != nil {
		return "", err
	}
	defer database.Close()

	run, err := database.InsertRun(started, repeat)
	if err != nil {
		return "", err
	}
	trialRows := make([]*db.Trial, len(trials))
	for i, t := range trials {
		trialRows[i] = db.TrialFromResult(run.ID, i, t)
	}
	aggregateRows := make([]*db.Aggregate, len(aggregates))
	for i, a := range aggregates {
		aggregateRows[i] = db.AggregateFromResult(run.ID, i, a)
	}
	if err := database.InsertResults(trialRows, aggregateRows); err != nil {
		return "", err
	}
	return run.ID, nil
}
