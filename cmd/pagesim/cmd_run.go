package main

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/config"
	"github.com/bietkhonhungvandi212/pagesim/internal/engine"
	"github.com/bietkhonhungvandi212/pagesim/internal/input"
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [page...]",
		Short: "Simulate FIFO and LRU over a reference string",
		Long: `Replay a reference string against FIFO and LRU and print every step.

Pages are separated by whitespace or commas.

Examples:
  pagesim run A B C A B D A B C D --frames 3
  pagesim run "7,0,1,2,0,3,0,4" --frames 4 --step 5
  pagesim run --file refs.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			pages, err := referencePages(cmd, args)
			if err != nil {
				return err
			}
			frames, err := positiveFlag(cmd, "frames", s.cfg.Simulation.Frames, util.ErrInvalidFrames)
			if err != nil {
				return err
			}
			step, _ := cmd.Flags().GetInt("step")

			return runSimulation(s, pages, frames, step)
		},
	}

	// Parsed by positiveFlag.
	cmd.Flags().String("frames", "", "Number of frames (default from config)")
	cmd.Flags().String("file", "", "Read the reference string from a file (- for stdin)")
	cmd.Flags().Int("step", 0, "Step to draw frame boxes for (default: last step)")

	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demo reference string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			ref := s.cfg.Simulation.DemoReference
			if ref == "" {
				ref = config.DemoReference
			}
			pages := input.ParsePages(ref)
			if err := input.ValidatePages(pages); err != nil {
				return err
			}
			return runSimulation(s, pages, s.cfg.Simulation.Frames, 0)
		},
	}
}

// runSimulation prints the trace of pages at frames capacity plus the frame boxes of step
// (0 selects the last step).
func runSimulation(s *session, pages []util.PageRef, frames int, step int) error {
	s.log.Debug("simulation started", zap.Int("pages", len(pages)), zap.Int("frames", frames))
	res := engine.Simulate(pages, frames)
	s.log.Info("simulation finished",
		zap.Int("pages", len(pages)),
		zap.Int("frames", frames),
		zap.Int("fifo_faults", res.FIFOFaults),
		zap.Int("lru_faults", res.LRUFaults),
		zap.String("verdict", string(res.Verdict())),
	)

	if s.jsonOut {
		return report.WriteJSON(s.out, res)
	}

	if err := report.WriteTrace(s.out, res, s.opts); err != nil {
		return err
	}

	if step == 0 {
		step = len(res.Trace)
	}
	row, err := res.Row(step)
	if err != nil {
		return fmt.Errorf("invalid --step: %w", err)
	}
	fmt.Fprintln(s.out)
	return report.WriteFrameBoxes(s.out, row, frames, s.opts)
}
