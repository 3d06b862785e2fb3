package replacement

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Replacer defines the contract for a capacity-bounded frame set driven by one replacement policy.
type Replacer interface {
	// Access requests a page. A resident page is a hit; otherwise the page is loaded,
	// evicting a victim first when every frame is occupied.
	Access(ref util.PageRef) util.Status
	Contains(ref util.PageRef) bool
	// Snapshot returns a copy of the resident pages, eviction end first.
	Snapshot() []util.PageRef
	Size() int
	Capacity() int
	Policy() util.Policy
}

// NewReplacer builds the replacer for policy with size frames.
func NewReplacer(policy util.Policy, size int) (Replacer, error) {
	switch policy {
	case util.FIFO:
		return NewFIFOReplacer(size), nil
	case util.LRU:
		return NewLRUReplacer(size), nil
	default:
		return nil, fmt.Errorf("[replacer] [NewReplacer] %q: %w", policy, util.ErrUnknownPolicy)
	}
}
