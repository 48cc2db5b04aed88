package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/geodes"
	"github.com/pdrpinto/geodes/internal/cache"
	"github.com/pdrpinto/geodes/internal/parse"
)

type solveFlags struct {
	mode        string
	cacheDir    string
	metricsFile string
	jsonOutput  bool
}

func newSolveCmd(a *app) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve INPUT",
		Short: "Score every blueprint in INPUT",
		Long: `Score the blueprints in INPUT.

Modes:
  weighted - every blueprint at the weighted horizon (24), summing id * geodes
  product  - the first three blueprints at the product horizon (32), multiplying geodes
  both     - run weighted, then product

Examples:
  geodes solve input.txt
  geodes solve input.txt --mode both --json
  geodes solve input.txt --cache-dir ~/.cache/geodes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.mode, "mode", "weighted",
		"Scoring mode: weighted, product, both")
	cmd.Flags().StringVar(&flags.cacheDir, "cache-dir", "",
		"Directory of the yield cache (overrides config)")
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "",
		"Write Prometheus metrics in text format to this file when done")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false,
		"Output results as JSON")
	return cmd
}

// solveOutput is the JSON shape of a solve run.
type solveOutput struct {
	Runs []solveRun `json:"runs"`
}

type solveRun struct {
	Mode    string          `json:"mode"`
	Horizon int             `json:"horizon"`
	Score   uint64          `json:"score"`
	Results []blueprintLine `json:"results"`
}

type blueprintLine struct {
	Blueprint    uint32 `json:"blueprint"`
	Geodes       uint32 `json:"geodes"`
	PeakFrontier int    `json:"peakFrontier"`
	TimeMs       int64  `json:"timeMs"`
	Cached       bool   `json:"cached"`
}

func runSolve(cmd *cobra.Command, a *app, flags *solveFlags, inputPath string) error {
	var modes []geodes.Mode
	switch flags.mode {
	case "weighted":
		modes = []geodes.Mode{geodes.WeightedSum}
	case "product":
		modes = []geodes.Mode{geodes.Product}
	case "both":
		modes = []geodes.Mode{geodes.WeightedSum, geodes.Product}
	default:
		return fmt.Errorf("unknown mode %q (want weighted, product or both)", flags.mode)
	}

	blueprints, err := parse.File(inputPath)
	if err != nil {
		return err
	}
	a.logger.Info("loaded blueprints", slog.String("input", inputPath), slog.Int("count", len(blueprints)))

	options, err := a.searchOptions()
	if err != nil {
		return err
	}

	cacheDir := a.cfg.Cache.Dir
	if flags.cacheDir != "" {
		cacheDir = flags.cacheDir
	}
	if cacheDir != "" && (a.cfg.Cache.Enabled || flags.cacheDir != "") {
		yieldCache, err := cache.Open(cache.Config{Path: cacheDir, SyncWrites: true, Logger: a.logger})
		if err != nil {
			return err
		}
		defer yieldCache.Close()
		options = append(options, geodes.WithCache(yieldCache))
	}

	var out solveOutput
	for _, mode := range modes {
		horizon := a.cfg.Solve.WeightedHorizon
		modeOptions := append([]geodes.Option{}, options...)
		if mode == geodes.Product {
			horizon = a.cfg.Solve.ProductHorizon
			modeOptions = append(modeOptions, geodes.WithBlueprintLimit(a.cfg.Solve.ProductBlueprints))
		}
		modeOptions = append(modeOptions, geodes.WithHorizon(horizon))

		batch, err := geodes.Evaluate(cmd.Context(), blueprints, mode, modeOptions...)
		if err != nil {
			return err
		}
		run := solveRun{Mode: mode.String(), Horizon: batch.Horizon, Score: batch.Score}
		for _, r := range batch.Results {
			run.Results = append(run.Results, blueprintLine{
				Blueprint:    r.BlueprintID,
				Geodes:       r.Yield,
				PeakFrontier: r.PeakFrontier,
				TimeMs:       r.Duration.Milliseconds(),
				Cached:       r.Cached,
			})
		}
		out.Runs = append(out.Runs, run)
	}

	if flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(flags.metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if flags.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, run := range out.Runs {
		fmt.Fprintln(cmd.OutOrStdout(), renderRun(run))
	}
	return nil
}
