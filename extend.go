package malloc

// extend implements §4.6: request at least minBytes new bytes from the
// arena (rounded up to the configured extend step, if any, and to an even
// word count to preserve double-word alignment), stamp a fresh free block,
// then coalesce it with its predecessor and insert the result into the
// appropriate free list. Returns the coalesced block's payload pointer, or
// 0 on arena failure.
func (h *Heap) extend(minBytes uintptr) (uintptr, error) {
	size := minBytes
	if size%doubleWordSize != 0 {
		size += doubleWordSize - (size % doubleWordSize)
	}
	if h.extendStep > size {
		size = h.extendStep
		if size%doubleWordSize != 0 {
			size += doubleWordSize - (size % doubleWordSize)
		}
	}

	bp, err := h.extendRaw(size)
	if err != nil {
		return 0, err
	}
	tracef("malloc: extended heap by %d bytes at %#x", size, bp)
	return h.coalesce(bp), nil
}
