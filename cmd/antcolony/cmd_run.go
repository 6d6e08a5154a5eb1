package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/report"
)

func newRunCmd(opts *cliOptions) *cobra.Command {
	var (
		iterations int
		executions int
		polishFlag bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve headless and print the results",
		Long: `Runs the colony for a fixed number of iterations without a display and
prints a results table per execution. The --iterations flag wins over
run.iterations from a config file; both default to 200. With 0 iterations
the colony runs until interrupted (Ctrl-C), and the results are printed then.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Run.Iterations = iterations
			}
			if cmd.Flags().Changed("polish") {
				cfg.Run.Polish = polishFlag
			}
			if cfg.Run.Iterations < 0 {
				return fmt.Errorf("--iterations must be >= 0 (got %d)", cfg.Run.Iterations)
			}
			if executions < 1 {
				return fmt.Errorf("--executions must be >= 1 (got %d)", executions)
			}

			sess, err := newSession(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.close()

			out := cmd.OutOrStdout()
			if err := report.Banner(out, cfg.ColonyConfig(), len(sess.cities), false); err != nil {
				return err
			}

			ctx := cmd.Context()
			for e := 1; e <= executions; e++ {
				solver, err := sess.newSolver(e)
				if err != nil {
					return err
				}

				_, runErr := solver.Run(ctx, cfg.Run.Iterations)
				st := solver.Stats()
				logStats(sess.log.Slog(), e, st)
				summary := report.FromStats(e, st)
				if cfg.Run.Polish {
					if summary.PolishedDistance, err = polish(sess.log.Slog(), solver, st); err != nil {
						return err
					}
				}
				if err := report.Render(out, summary); err != nil {
					return err
				}
				if runErr != nil {
					if errors.Is(runErr, context.Canceled) {
						return nil
					}
					return runErr
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "iterations per execution (0 = until interrupted)")
	cmd.Flags().IntVar(&executions, "executions", 1, "independent executions on the same cities")
	cmd.Flags().BoolVar(&polishFlag, "polish", false, "refine the best tour with 2-opt before reporting")

	return cmd
}

// polish runs 2-opt on the best-ever tour of a finished execution and
// returns the refined length. An execution without a tour yields 0.
func polish(l *slog.Logger, solver *aco.Solver, st aco.Stats) (float64, error) {
	if len(st.BestTour) == 0 {
		return 0, nil
	}
	tour, length, err := aco.TwoOpt(st.BestTour, solver.Distances(), 0)
	if err != nil {
		return 0, fmt.Errorf("polish: %w", err)
	}
	l.Info("best tour polished", "before", st.BestDistance, "after", length, "tour", tour)

	return length, nil
}
