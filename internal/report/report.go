// Package report renders simulation traces and benchmark sweeps for a terminal.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/bietkhonhungvandi212/pagesim/internal/benchmark"
	"github.com/bietkhonhungvandi212/pagesim/internal/engine"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/fatih/color"
)

// EmptySlot marks a frame holding no page.
const EmptySlot = "—"

const (
	minBoxWidth = 14
	// maxEmptyBoxes bounds how many empty slots are drawn; the rest are summarized on one line.
	maxEmptyBoxes = 8
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI highlighting regardless of whether w is a terminal.
	Color bool
}

type palette struct {
	fault   *color.Color
	hit     *color.Color
	lruWin  *color.Color
	fifoWin *color.Color
	header  *color.Color
}

func newPalette(opts Options) palette {
	p := palette{
		fault:   color.New(color.FgRed),
		hit:     color.New(color.FgGreen),
		lruWin:  color.New(color.FgGreen),
		fifoWin: color.New(color.FgBlue),
		header:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.fault, p.hit, p.lruWin, p.fifoWin, p.header} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) status(s util.Status) string {
	if s == util.StatusHit {
		return p.hit.Sprint(s)
	}
	return p.fault.Sprint(s)
}

// JoinFrames renders a snapshot the way the trace table shows it.
func JoinFrames(frames []util.PageRef) string {
	parts := make([]string, len(frames))
	for i, f := range frames {
		parts[i] = string(f)
	}
	return strings.Join(parts, " | ")
}

// VerdictText describes the winner of a single run.
func VerdictText(w util.Winner) string {
	switch w {
	case util.WinnerLRU:
		return "LRU wins (fewer page faults)."
	case util.WinnerFIFO:
		return "FIFO wins (fewer page faults)."
	default:
		return "Tie (same number of page faults)."
	}
}

// table aligns rows with tabwriter and then lets paint color each finished line.
// Coloring after alignment keeps escape codes out of the width computation.
func table(w io.Writer, header []string, rows [][]string, paint func(i int, line string) string, hdr *color.Color) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("[report] [table] flush: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if i == 0 {
			line = hdr.Sprint(line)
		} else {
			line = paint(i-1, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTrace prints one row per step, the fault totals and the verdict.
// Steps where either policy faulted are highlighted.
func WriteTrace(w io.Writer, res engine.Result, opts Options) error {
	p := newPalette(opts)

	rows := make([][]string, len(res.Trace))
	for i, r := range res.Trace {
		rows[i] = []string{
			fmt.Sprint(r.Step),
			string(r.Requested),
			string(r.FIFOStatus),
			JoinFrames(r.FIFOFrames),
			string(r.LRUStatus),
			JoinFrames(r.LRUFrames),
		}
	}
	header := []string{"Step", "Requested", "FIFO", "FIFO Frames", "LRU", "LRU Frames"}
	paint := func(i int, line string) string {
		if res.Trace[i].HasFault() {
			return p.fault.Sprint(line)
		}
		return line
	}
	if err := table(w, header, rows, paint, p.header); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nFIFO faults: %d   LRU faults: %d   %s\n",
		res.FIFOFaults, res.LRUFaults, p.header.Sprint(VerdictText(res.Verdict())))
	return err
}

// WriteBenchmark prints one row per capacity followed by the summary line.
func WriteBenchmark(w io.Writer, rows []benchmark.Row, summary benchmark.Summary, opts Options) error {
	p := newPalette(opts)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			fmt.Sprint(r.Frames),
			fmt.Sprint(r.FIFOFaults),
			fmt.Sprint(r.LRUFaults),
			string(r.Winner),
			fmt.Sprint(r.Difference),
		}
	}
	header := []string{"Frames", "FIFO Faults", "LRU Faults", "Winner", "Difference"}
	paint := func(i int, line string) string {
		switch rows[i].Winner {
		case util.WinnerLRU:
			return p.lruWin.Sprint(line)
		case util.WinnerFIFO:
			return p.fifoWin.Sprint(line)
		default:
			return line
		}
	}
	if err := table(w, header, cells, paint, p.header); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+p.header.Sprint(SummaryText(summary)))
	return err
}

// SummaryText is the one-line aggregate shown under a benchmark table.
func SummaryText(s benchmark.Summary) string {
	return fmt.Sprintf("LRU wins: %d | FIFO wins: %d | Ties: %d   (Avg faults → FIFO: %.2f, LRU: %.2f)",
		s.LRUWins, s.FIFOWins, s.Ties, s.AvgFIFOFaults, s.AvgLRUFaults)
}

// WriteFrameBoxes draws the frame slots of both policies for one step.
// Slots beyond the resident pages show EmptySlot, up to maxEmptyBoxes of them.
// Boxes widen to fit the longest page name.
func WriteFrameBoxes(w io.Writer, row engine.TraceRow, capacity int, opts Options) error {
	p := newPalette(opts)

	width := minBoxWidth
	for _, policy := range []util.Policy{util.FIFO, util.LRU} {
		for _, f := range row.Frames(policy) {
			width = max(width, utf8.RuneCountInString(string(f)))
		}
	}
	border := "+" + strings.Repeat("-", width+2) + "+"

	var b strings.Builder
	fmt.Fprintln(&b, p.header.Sprint("Selected Step"))
	fmt.Fprintf(&b, "Step:       %d\n", row.Step)
	fmt.Fprintf(&b, "Requested:  %s\n", row.Requested)

	for _, policy := range []util.Policy{util.FIFO, util.LRU} {
		frames := row.Frames(policy)
		fmt.Fprintf(&b, "\n%s  Status: %s\n", p.header.Sprintf("%s Frames", policy), p.status(row.Status(policy)))

		drawn := min(capacity, len(frames)+maxEmptyBoxes)
		for i := 0; i < drawn; i++ {
			label := EmptySlot
			if i < len(frames) {
				label = string(frames[i])
			}
			fmt.Fprintf(&b, "  %s\n  | %-*s |\n", border, width, label)
		}
		if drawn > 0 {
			fmt.Fprintf(&b, "  %s\n", border)
		}
		if hidden := capacity - drawn; hidden > 0 {
			fmt.Fprintf(&b, "  ... %d more empty frames\n", hidden)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("[report] [WriteJSON] encode: %w", err)
	}
	return nil
}
