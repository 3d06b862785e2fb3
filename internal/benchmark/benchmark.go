// Package benchmark sweeps a simulation across frame capacities 1..N and compares
// the FIFO and LRU fault totals at each capacity.
package benchmark

import (
	"context"
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/engine"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"golang.org/x/sync/errgroup"
)

// SimulateFunc is the simulation the sweep runs at every capacity. engine.Simulate
// satisfies it; tests pass stubs.
type SimulateFunc func(pages []util.PageRef, frames int) engine.Result

// Row is the comparison at one capacity.
type Row struct {
	Frames     int         `json:"frames"`
	FIFOFaults int         `json:"fifo_faults"`
	LRUFaults  int         `json:"lru_faults"`
	Winner     util.Winner `json:"winner"`
	Difference int         `json:"difference"`
}

func newRow(frames int, res engine.Result) Row {
	return Row{
		Frames:     frames,
		FIFOFaults: res.FIFOFaults,
		LRUFaults:  res.LRUFaults,
		Winner:     util.CompareFaults(res.FIFOFaults, res.LRUFaults),
		Difference: util.AbsDiff(res.FIFOFaults, res.LRUFaults),
	}
}

// Benchmark runs simulate for every capacity from 1 to maxFrames, in order.
// Fault totals are reported as simulated; FIFO may fault more at a larger capacity.
func Benchmark(pages []util.PageRef, maxFrames int, simulate SimulateFunc) []Row {
	rows := make([]Row, 0, max(maxFrames, 0))
	for f := 1; f <= maxFrames; f++ {
		rows = append(rows, newRow(f, simulate(pages, f)))
	}
	return rows
}

// BenchmarkParallel produces the same rows as Benchmark, running up to workers
// capacities at once. Every capacity writes only its own row.
func BenchmarkParallel(ctx context.Context, pages []util.PageRef, maxFrames int, simulate SimulateFunc, workers int) ([]Row, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("[benchmark] [BenchmarkParallel] workers=%d: %w", workers, util.ErrInvalidWorkers)
	}
	if maxFrames <= 0 {
		return []Row{}, nil
	}

	rows := make([]Row, maxFrames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for f := 1; f <= maxFrames; f++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[f-1] = newRow(f, simulate(pages, f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("[benchmark] [BenchmarkParallel] sweep aborted: %w", err)
	}
	return rows, nil
}
