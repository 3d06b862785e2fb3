package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareFaults(t *testing.T) {
	tests := []struct {
		name string
		fifo int
		lru  int
		want Winner
	}{
		{"LRUFewer", 9, 8, WinnerLRU},
		{"FIFOFewer", 3, 5, WinnerFIFO},
		{"Equal", 4, 4, WinnerTie},
		{"Zero", 0, 0, WinnerTie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareFaults(tt.fifo, tt.lru))
		})
	}
}

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 1, AbsDiff(9, 8))
	assert.Equal(t, 1, AbsDiff(8, 9))
	assert.Equal(t, 0, AbsDiff(4, 4))
}
