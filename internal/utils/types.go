package util

// PageRef is one requested page in a reference string. Pages are compared by equality only.
type PageRef string

// Status is the outcome of one access against a frame set.
type Status string

const (
	StatusHit   Status = "HIT"
	StatusFault Status = "FAULT"
)

// Policy identifies a replacement policy.
type Policy string

const (
	// FIFO evicts the earliest inserted resident page.
	FIFO Policy = "FIFO"
	// LRU evicts the resident page with the oldest last access.
	LRU Policy = "LRU"
)

// Winner is the verdict of comparing FIFO and LRU fault totals.
type Winner string

const (
	WinnerFIFO Winner = "FIFO"
	WinnerLRU  Winner = "LRU"
	WinnerTie  Winner = "TIE"
)

// CompareFaults picks the policy with fewer faults. Equal totals are a tie.
func CompareFaults(fifoFaults, lruFaults int) Winner {
	switch {
	case lruFaults < fifoFaults:
		return WinnerLRU
	case fifoFaults < lruFaults:
		return WinnerFIFO
	default:
		return WinnerTie
	}
}

// AbsDiff returns |a - b|.
func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
