package benchmark

import (
	"testing"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := []Row{
		{Frames: 1, FIFOFaults: 9, LRUFaults: 9, Winner: util.WinnerTie},
		{Frames: 2, FIFOFaults: 9, LRUFaults: 9, Winner: util.WinnerTie},
		{Frames: 3, FIFOFaults: 7, LRUFaults: 5, Winner: util.WinnerLRU, Difference: 2},
		{Frames: 4, FIFOFaults: 4, LRUFaults: 6, Winner: util.WinnerFIFO, Difference: 2},
	}

	s := Summarize(rows)

	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 1, s.LRUWins)
	assert.Equal(t, 1, s.FIFOWins)
	assert.Equal(t, 2, s.Ties)
	assert.InDelta(t, 7.25, s.AvgFIFOFaults, 1e-9)
	assert.InDelta(t, 7.25, s.AvgLRUFaults, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
