// Package engine replays a reference string against FIFO and LRU frame sets in lockstep.
package engine

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// TraceRow is the state of both policies right after one request.
type TraceRow struct {
	Step       int            `json:"step"`
	Requested  util.PageRef   `json:"requested"`
	FIFOStatus util.Status    `json:"fifo_status"`
	FIFOFrames []util.PageRef `json:"fifo_frames"`
	LRUStatus  util.Status    `json:"lru_status"`
	LRUFrames  []util.PageRef `json:"lru_frames"`
}

// HasFault reports whether either policy faulted on this step.
func (r TraceRow) HasFault() bool {
	return r.FIFOStatus == util.StatusFault || r.LRUStatus == util.StatusFault
}

// Frames returns the snapshot recorded for policy.
func (r TraceRow) Frames(policy util.Policy) []util.PageRef {
	if policy == util.LRU {
		return r.LRUFrames
	}
	return r.FIFOFrames
}

// Status returns the outcome recorded for policy.
func (r TraceRow) Status(policy util.Policy) util.Status {
	if policy == util.LRU {
		return r.LRUStatus
	}
	return r.FIFOStatus
}

// Result is one simulation of a (reference string, capacity) pair.
type Result struct {
	Frames     int        `json:"frames"`
	Trace      []TraceRow `json:"trace"`
	FIFOFaults int        `json:"fifo_faults"`
	LRUFaults  int        `json:"lru_faults"`
}

// Verdict compares the fault totals of the run.
func (r Result) Verdict() util.Winner {
	return util.CompareFaults(r.FIFOFaults, r.LRUFaults)
}

// Row returns the 1-based step of the trace.
func (r Result) Row(step int) (TraceRow, error) {
	if step < 1 || step > len(r.Trace) {
		return TraceRow{}, fmt.Errorf("[engine] [Row] step %d of %d: %w", step, len(r.Trace), util.ErrStepOutOfRange)
	}
	return r.Trace[step-1], nil
}

// newReplacer sizes the frame set by what the reference can actually fill: a set
// never holds more distinct pages than the reference has requests.
func newReplacer(policy util.Policy, frames int, pages []util.PageRef) replacement.Replacer {
	slots := min(frames, max(len(pages), 1))
	r, err := replacement.NewReplacer(policy, slots)
	if err != nil {
		panic(fmt.Sprintf("[engine] [newReplacer] %v", err))
	}
	return r
}

// Simulate replays pages against a FIFO set and an LRU set, each holding at most frames pages.
// FIFO is applied before LRU on every step. frames must be positive; an empty
// reference yields an empty trace with zero faults.
func Simulate(pages []util.PageRef, frames int) Result {
	fifo := newReplacer(util.FIFO, frames, pages)
	lru := newReplacer(util.LRU, frames, pages)

	res := Result{
		Frames: frames,
		Trace:  make([]TraceRow, 0, len(pages)),
	}
	for i, p := range pages {
		fifoStatus := fifo.Access(p)
		if fifoStatus == util.StatusFault {
			res.FIFOFaults++
		}

		lruStatus := lru.Access(p)
		if lruStatus == util.StatusFault {
			res.LRUFaults++
		}

		res.Trace = append(res.Trace, TraceRow{
			Step:       i + 1,
			Requested:  p,
			FIFOStatus: fifoStatus,
			FIFOFrames: fifo.Snapshot(),
			LRUStatus:  lruStatus,
			LRUFrames:  lru.Snapshot(),
		})
	}
	return res
}
