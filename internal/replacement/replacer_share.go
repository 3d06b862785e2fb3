package replacement

import (
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// ReplacerShared provides common state and methods for replacement policies.
type ReplacerShared struct {
	pageToIdx map[util.PageRef]int // Map page to frame index
	nextFree  []int                // Free list for allocation
	freeHead  int                  // Head of free list
	poolSize  int                  // Total frames
}

// NewReplacerShared initializes the shared replacer state.
func NewReplacerShared(size int) *ReplacerShared {
	if size <= 0 {
		panic(util.ErrInvalidCapacity)
	}
	rs := &ReplacerShared{
		pageToIdx: make(map[util.PageRef]int, size),
		nextFree:  make([]int, size),
		poolSize:  size,
	}
	rs.resetFree()
	return rs
}

// Size reports how many frames hold a page.
func (rs *ReplacerShared) Size() int {
	return len(rs.pageToIdx)
}

func (rs *ReplacerShared) Capacity() int {
	return rs.poolSize
}

func (rs *ReplacerShared) Contains(ref util.PageRef) bool {
	_, ok := rs.pageToIdx[ref]
	return ok
}

// allocFromFree allocates a free frame index, lowest index first on a fresh set.
func (rs *ReplacerShared) allocFromFree() int {
	if rs.freeHead == -1 {
		return -1
	}
	freeIdx := rs.freeHead
	rs.freeHead = rs.nextFree[freeIdx]
	rs.nextFree[freeIdx] = -1
	return freeIdx
}

func (rs *ReplacerShared) removePageMapping(ref util.PageRef) {
	delete(rs.pageToIdx, ref)
}

// resetFree rebuilds the free list 0→1→...→size-1→-1 and forgets every mapping.
func (rs *ReplacerShared) resetFree() {
	rs.pageToIdx = make(map[util.PageRef]int, rs.poolSize)
	rs.freeHead = 0
	for i := 0; i < rs.poolSize; i++ {
		rs.nextFree[i] = i + 1
	}
	rs.nextFree[rs.poolSize-1] = -1
}
