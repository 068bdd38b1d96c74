package malloc

// place implements §4.7: installs an allocated block at the low address of
// block, of exactly asize bytes when the free remainder would meet the
// minimum block size (the remainder is split off and re-inserted), and of
// the whole block otherwise. Precondition: sizeAt(block) >= asize. If
// unlink is true, block is first removed from its current free list; pass
// false only when the caller has already done so or the block was never
// on a free list. A block fresh from extend is already on a free list.
func (h *Heap) place(block, asize uintptr, unlink bool) {
	if unlink {
		h.fl.unlink(block)
	}
	csize := sizeAt(block)

	if csize-asize >= minBlockSize {
		setHeaderFooter(block, asize, 1)
		tail := nextBlock(block)
		setHeaderFooter(tail, csize-asize, 0)
		h.fl.insert(tail)
		return
	}
	setHeaderFooter(block, csize, 1)
}
