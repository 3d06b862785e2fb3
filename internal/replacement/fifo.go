package replacement

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

type FIFODesc struct {
	page util.PageRef
}

// FIFOReplacer keeps pages in fixed frame slots. Slots are filled in index order and
// the victim hand walks them in the same order, so the slot under the hand always
// holds the earliest inserted page once the set is full.
type FIFOReplacer struct {
	frames []*FIFODesc
	*ReplacerShared
	nextVictimIdx int
}

func NewFIFOReplacer(size int) *FIFOReplacer {
	return &FIFOReplacer{
		ReplacerShared: NewReplacerShared(size),
		frames:         make([]*FIFODesc, size),
	}
}

func (this *FIFOReplacer) Policy() util.Policy {
	return util.FIFO
}

// Access checks residency without touching the order. A miss takes a free frame
// or the victim's frame.
func (this *FIFOReplacer) Access(ref util.PageRef) util.Status {
	if _, exists := this.pageToIdx[ref]; exists {
		return util.StatusHit
	}

	frameIdx := this.allocFromFree()
	if frameIdx == -1 {
		victimIdx, err := this.evict()
		if err != nil {
			panic(fmt.Sprintf("[fifo] [Access] %v", err))
		}
		frameIdx = victimIdx
	}

	this.frames[frameIdx] = &FIFODesc{page: ref}
	this.pageToIdx[ref] = frameIdx
	return util.StatusFault
}

// evict removes the earliest inserted page and returns its frame index.
func (this *FIFOReplacer) evict() (int, error) {
	victimIdx := this.nextVictimIdx
	desc := this.frames[victimIdx]
	if desc == nil {
		return -1, fmt.Errorf("[fifo] [evict] frame %d is not allocated", victimIdx)
	}

	this.removePageMapping(desc.page)
	this.frames[victimIdx] = nil
	this.nextVictimIdx = (victimIdx + 1) % this.poolSize
	return victimIdx, nil
}

// Snapshot lists resident pages oldest first, starting at the victim hand.
func (this *FIFOReplacer) Snapshot() []util.PageRef {
	out := make([]util.PageRef, 0, this.Size())
	for i := range this.poolSize {
		desc := this.frames[(this.nextVictimIdx+i)%this.poolSize]
		if desc != nil {
			out = append(out, desc.page)
		}
	}
	return out
}

func (this *FIFOReplacer) reset() {
	for i := range this.frames {
		this.frames[i] = nil
	}
	this.resetFree()
	this.nextVictimIdx = 0
}
