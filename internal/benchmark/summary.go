package benchmark

import util "github.com/bietkhonhungvandi212/pagesim/internal/utils"

// Summary aggregates a sweep for display.
type Summary struct {
	Rows          int     `json:"rows"`
	LRUWins       int     `json:"lru_wins"`
	FIFOWins      int     `json:"fifo_wins"`
	Ties          int     `json:"ties"`
	AvgFIFOFaults float64 `json:"avg_fifo_faults"`
	AvgLRUFaults  float64 `json:"avg_lru_faults"`
}

// Summarize counts winners and averages the fault totals. No rows gives zero averages.
func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}
	if len(rows) == 0 {
		return s
	}

	fifoSum, lruSum := 0, 0
	for _, r := range rows {
		fifoSum += r.FIFOFaults
		lruSum += r.LRUFaults
		switch r.Winner {
		case util.WinnerLRU:
			s.LRUWins++
		case util.WinnerFIFO:
			s.FIFOWins++
		default:
			s.Ties++
		}
	}
	s.AvgFIFOFaults = float64(fifoSum) / float64(len(rows))
	s.AvgLRUFaults = float64(lruSum) / float64(len(rows))
	return s
}
