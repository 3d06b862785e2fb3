package main

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/benchmark"
	"github.com/bietkhonhungvandi212/pagesim/internal/engine"
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [page...]",
		Short: "Compare FIFO and LRU fault totals across frame counts",
		Long: `Simulate the reference string with 1..N frames and report the winner at each size.

Examples:
  pagesim bench A B C A B D A B C D --max-frames 5
  pagesim bench --file refs.txt --max-frames 50 --workers 4`,
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
			maxFrames, err := positiveFlag(cmd, "max-frames", s.cfg.Simulation.MaxFrames, util.ErrInvalidMaxFrames)
			if err != nil {
				return err
			}
			workers, err := positiveFlag(cmd, "workers", s.cfg.Simulation.Workers, util.ErrInvalidWorkers)
			if err != nil {
				return err
			}

			s.log.Debug("sweep started", zap.Int("pages", len(pages)), zap.Int("max_frames", maxFrames), zap.Int("workers", workers))
			var rows []benchmark.Row
			if workers == 1 {
				rows = benchmark.Benchmark(pages, maxFrames, engine.Simulate)
			} else {
				rows, err = benchmark.BenchmarkParallel(cmd.Context(), pages, maxFrames, engine.Simulate, workers)
				if err != nil {
					return err
				}
			}
			for _, r := range rows {
				s.log.Debug("capacity simulated",
					zap.Int("frames", r.Frames),
					zap.Int("fifo_faults", r.FIFOFaults),
					zap.Int("lru_faults", r.LRUFaults),
					zap.String("winner", string(r.Winner)),
				)
			}

			summary := benchmark.Summarize(rows)
			s.log.Info("sweep finished",
				zap.Int("rows", summary.Rows),
				zap.Int("lru_wins", summary.LRUWins),
				zap.Int("fifo_wins", summary.FIFOWins),
				zap.Int("ties", summary.Ties),
			)

			if s.jsonOut {
				return report.WriteJSON(s.out, struct {
					Rows    []benchmark.Row   `json:"rows"`
					Summary benchmark.Summary `json:"summary"`
				}{rows, summary})
			}
			return report.WriteBenchmark(s.out, rows, summary, s.opts)
		},
	}

	// Parsed by positiveFlag.
	cmd.Flags().String("max-frames", "", "Largest frame count to simulate (default from config)")
	cmd.Flags().String("workers", "", "Capacities simulated concurrently (default from config, 1 = sequential)")
	cmd.Flags().String("file", "", "Read the reference string from a file (- for stdin)")

	return cmd
}
