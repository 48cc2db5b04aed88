package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdrpinto/geodes"
	"github.com/pdrpinto/geodes/internal/parse"
)

type stepsFlags struct {
	blueprint uint32
	horizon   int
}

func newStepsCmd(a *app) *cobra.Command {
	flags := &stepsFlags{}

	cmd := &cobra.Command{
		Use:   "steps INPUT",
		Short: "Trace the search for one blueprint minute by minute",
		Long: `Run the search for a single blueprint and print the frontier after every minute.

Examples:
  geodes steps input.txt --blueprint 2
  geodes steps input.txt --blueprint 1 --horizon 32`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, a, flags, args[0])
		},
	}

	cmd.Flags().Uint32Var(&flags.blueprint, "blueprint", 1, "Blueprint id to trace")
	cmd.Flags().IntVar(&flags.horizon, "horizon", 0, "Minutes to simulate (default: weighted horizon from config)")
	return cmd
}

func runSteps(cmd *cobra.Command, a *app, flags *stepsFlags, inputPath string) error {
	blueprints, err := parse.File(inputPath)
	if err != nil {
		return err
	}
	var (
		blueprint geodes.Blueprint
		found     bool
	)
	for _, bp := range blueprints {
		if bp.ID == flags.blueprint {
			blueprint, found = bp, true
			break
		}
	}
	if !found {
		return fmt.Errorf("blueprint %d not found in %s", flags.blueprint, inputPath)
	}

	horizon := flags.horizon
	if horizon == 0 {
		horizon = a.cfg.Solve.WeightedHorizon
	}
	options, err := a.searchOptions()
	if err != nil {
		return err
	}

	ctx, span := a.tracerProvider.Tracer("github.com/pdrpinto/geodes/cmd/geodes").Start(cmd.Context(), "geodes.steps",
		trace.WithAttributes(
			attribute.Int64("blueprint", int64(blueprint.ID)),
			attribute.Int("horizon", horizon),
		),
	)
	defer span.End()

	snaps, err := traceSteps(ctx, blueprint, horizon, options)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	last := snaps[len(snaps)-1]
	span.SetAttributes(
		attribute.Int("steps", len(snaps)),
		attribute.Int64("yield", int64(last.MaxGeodes)),
	)

	fmt.Fprintln(cmd.OutOrStdout(), renderSteps(blueprint, snaps))
	return nil
}

func traceSteps(ctx context.Context, blueprint geodes.Blueprint, horizon int, options []geodes.Option) ([]geodes.StepSnapshot, error) {
	stepper, err := geodes.NewStepper(ctx, blueprint, horizon, options...)
	if err != nil {
		return nil, err
	}
	var snaps []geodes.StepSnapshot
	for !stepper.Done() {
		snap, err := stepper.Step()
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
