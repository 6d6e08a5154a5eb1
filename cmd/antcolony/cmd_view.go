package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcolony/render"
	"github.com/katalvlaran/antcolony/report"
)

// newScreen is swapped by tests for a simulation screen.
var newScreen = tcell.NewScreen

func newViewCmd(opts *cliOptions) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the colony in the terminal",
		Long: `Opens a two-panel terminal view: the best tour found so far on top and
the best tour of the current iteration below. The colony advances one
iteration per frame. Press Esc or q to stop and print the results.
Without --iterations the view runs until stopped, unless a config file
sets run.iterations (default 200 when the file omits it).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") || opts.configPath == "" {
				cfg.Run.Iterations = iterations
			}
			if cfg.Run.Iterations < 0 {
				return fmt.Errorf("--iterations must be >= 0 (got %d)", cfg.Run.Iterations)
			}

			sess, err := newSession(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.close()

			solver, err := sess.newSolver(1)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.Banner(out, cfg.ColonyConfig(), len(sess.cities), true); err != nil {
				return err
			}

			screen, err := newScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}

			view, err := render.NewView(screen, solver,
				render.WithFrameInterval(cfg.Run.FrameInterval),
				render.WithCanvas(cfg.Cities.Width, cfg.Cities.Height),
				render.WithIterationLimit(cfg.Run.Iterations),
				render.WithLogger(sess.log.Slog()),
			)
			if err != nil {
				screen.Fini()
				return err
			}

			st, loopErr := view.Loop(cmd.Context())
			screen.Fini()

			logStats(sess.log.Slog(), 1, st)
			if err := report.Render(out, report.FromStats(1, st)); err != nil {
				return err
			}
			if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
				return loopErr
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "stop after this many iterations (0 = until Esc)")

	return cmd
}
