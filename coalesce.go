package malloc

// coalesce implements §4.8: bp's header/footer already report alloc==0,
// but bp is not yet on any free list. It merges bp with any free
// neighbor(s), inserts the resulting block into its free list, and returns
// the resulting block's payload pointer (bp itself, or its left neighbor
// when the merge absorbs leftward).
func (h *Heap) coalesce(bp uintptr) uintptr {
	prev, next := prevBlock(bp), nextBlock(bp)
	prevFree := allocAt(prev) == 0
	nextFree := !isEpilogue(next) && allocAt(next) == 0

	switch {
	case !prevFree && !nextFree: // C1: both allocated
		h.fl.insert(bp)
		return bp

	case !prevFree && nextFree: // C2: prev allocated, next free
		h.fl.unlink(next)
		size := sizeAt(bp) + sizeAt(next)
		setHeaderFooter(bp, size, 0)
		h.fl.insert(bp)
		return bp

	case prevFree && !nextFree: // C3: prev free, next allocated
		h.fl.unlink(prev)
		size := sizeAt(prev) + sizeAt(bp)
		setHeaderFooter(prev, size, 0)
		h.fl.insert(prev)
		return prev

	default: // C4: both free
		h.fl.unlink(prev)
		h.fl.unlink(next)
		size := sizeAt(prev) + sizeAt(bp) + sizeAt(next)
		setHeaderFooter(prev, size, 0)
		h.fl.insert(prev)
		return prev
	}
}
