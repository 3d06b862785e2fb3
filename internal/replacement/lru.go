package replacement

import (
	"errors"
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

type LRUDesc struct {
	page    util.PageRef
	nextIdx int
	prevIdx int
}

type LRUReplacer struct {
	frames []*LRUDesc
	*ReplacerShared
	lruHead int // Head of LRU (evict first)
	lruTail int // Tail of LRU (most recent)
}

func NewLRUReplacer(size int) *LRUReplacer {
	return &LRUReplacer{
		ReplacerShared: NewReplacerShared(size),
		frames:         make([]*LRUDesc, size),
		lruHead:        -1,
		lruTail:        -1,
	}
}

func (lr *LRUReplacer) Policy() util.Policy {
	return util.LRU
}

// Access moves a resident page to the tail. A miss evicts the head when no frame is free
// and links the new page at the tail.
func (lr *LRUReplacer) Access(ref util.PageRef) util.Status {
	if frameIdx, exists := lr.pageToIdx[ref]; exists {
		if err := lr.moveToTail(frameIdx); err != nil {
			panic(fmt.Sprintf("[lru] [Access] %v", err))
		}
		return util.StatusHit
	}

	frameIdx := lr.allocFromFree()
	if frameIdx == -1 {
		victimIdx, err := lr.evict()
		if err != nil {
			panic(fmt.Sprintf("[lru] [Access] %v", err))
		}
		frameIdx = victimIdx
	}

	lr.frames[frameIdx] = &LRUDesc{page: ref, prevIdx: -1, nextIdx: -1}
	lr.linkTail(frameIdx)
	lr.pageToIdx[ref] = frameIdx
	return util.StatusFault
}

// evict unlinks the least recently used page and returns its frame index.
func (lr *LRUReplacer) evict() (int, error) {
	current := lr.lruHead
	if current == -1 {
		return -1, errors.New("[lru] [evict] no evictable frame")
	}
	node := lr.frames[current]
	if err := lr.removeLRUByIndex(current); err != nil {
		return -1, err
	}
	lr.removePageMapping(node.page)
	lr.frames[current] = nil
	return current, nil
}

// Snapshot walks head to tail: least recently used first.
func (lr *LRUReplacer) Snapshot() []util.PageRef {
	out := make([]util.PageRef, 0, lr.Size())
	for current := lr.lruHead; current != -1; current = lr.frames[current].nextIdx {
		out = append(out, lr.frames[current].page)
	}
	return out
}

func (lr *LRUReplacer) reset() {
	for i := range lr.frames {
		lr.frames[i] = nil
	}
	lr.resetFree()
	lr.lruHead = -1
	lr.lruTail = -1
}

func (lr *LRUReplacer) moveToTail(frameIdx int) error {
	if frameIdx == lr.lruTail {
		return nil
	}
	if err := lr.removeLRUByIndex(frameIdx); err != nil {
		return err
	}
	lr.linkTail(frameIdx)
	return nil
}

func (lr *LRUReplacer) linkTail(frameIdx int) {
	tmp := lr.lruTail
	lr.lruTail = frameIdx
	node := lr.frames[frameIdx]
	node.prevIdx = tmp
	node.nextIdx = -1

	if tmp != -1 {
		lr.frames[tmp].nextIdx = frameIdx
	}
	if lr.lruHead == -1 {
		lr.lruHead = frameIdx
	}
}

func (lr *LRUReplacer) removeLRUByIndex(frameIdx int) error {
	if frameIdx >= lr.poolSize || frameIdx < 0 {
		return fmt.Errorf("invalid frame index %d", frameIdx)
	}
	node := lr.frames[frameIdx]
	if lr.lruHead == -1 || node == nil || (node.nextIdx == -1 && node.prevIdx == -1 && lr.lruHead != frameIdx) {
		return fmt.Errorf("invalid LRU state for frame %d", frameIdx)
	}
	prev := node.prevIdx
	next := node.nextIdx
	isHead := prev == -1
	isTail := next == -1

	switch {
	case isHead && isTail:
		// Only one node in the list
		lr.lruHead = -1
		lr.lruTail = -1
	case isHead && !isTail:
		lr.lruHead = next
		lr.frames[next].prevIdx = -1
	case !isHead && isTail:
		lr.lruTail = prev
		lr.frames[prev].nextIdx = -1
	case !isHead && !isTail:
		// Removing middle node, connect prev and next
		lr.frames[prev].nextIdx = next
		lr.frames[next].prevIdx = prev
	}

	node.nextIdx = -1
	node.prevIdx = -1
	return nil
}
