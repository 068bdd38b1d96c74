package malloc

import "unsafe"

// adjustSize implements §4.9 adjust: the block size needed to back a
// payload request of size bytes, reserving header+footer overhead and
// rounding up to double-word alignment with minimum-block-size
// enforcement.
func adjustSize(size uintptr) uintptr {
	if size <= doubleWordSize {
		return 2 * doubleWordSize
	}
	return doubleWordSize * ((size + doubleWordSize + doubleWordSize - 1) / doubleWordSize)
}

// Allocate returns a payload pointer for a block of at least size bytes,
// aligned to double-word, or nil if size is 0 or the arena cannot supply
// more heap.
func (h *Heap) Allocate(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	asize := adjustSize(size)

	if asize != h.lastMissSize {
		if bp := h.fl.findFit(asize); bp != 0 {
			h.place(bp, asize, true)
			debugf("malloc: allocate %d -> %#x (asize %d, reused)", size, bp, asize)
			return unsafe.Pointer(bp)
		}
	}

	bp, err := h.extend(asize)
	if err != nil {
		h.lastMissSize = asize
		warnf("malloc: allocate %d failed: %v", size, err)
		return nil
	}
	h.lastMissSize = 0
	h.place(bp, asize, true)
	debugf("malloc: allocate %d -> %#x (asize %d, extended)", size, bp, asize)
	return unsafe.Pointer(bp)
}

// Free returns a previously allocated block to the heap. Freeing nil is a
// no-op. Freeing an invalid pointer or double-freeing is caller misuse and
// is not detected; see CheckHeap for offline diagnosis.
func (h *Heap) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	bp := uintptr(ptr)
	size := sizeAt(bp)
	setHeaderFooter(bp, size, 0)
	if size == h.lastMissSize {
		h.lastMissSize = 0
	}
	debugf("malloc: free %#x (size %d)", bp, size)
	h.coalesce(bp)
}

// Reallocate resizes the block at ptr to size bytes, preserving the
// leading min(old, size) bytes of payload. ptr == nil behaves like
// Allocate(size); size == 0 behaves like Free(ptr) and returns nil.
func (h *Heap) Reallocate(ptr unsafe.Pointer, size uintptr) unsafe.Pointer {
	if size == 0 {
		h.Free(ptr)
		return nil
	}
	if ptr == nil {
		return h.Allocate(size)
	}

	bp := uintptr(ptr)
	asize := adjustSize(size)
	old := sizeAt(bp)

	if asize <= old {
		if old-asize >= minBlockSize {
			// Unlike place, bp's right neighbor may already be free (bp is a
			// live allocated block, not a fresh extension), so the carved
			// remainder must go through coalesce rather than a bare insert
			// to avoid leaving two adjacent free blocks.
			setHeaderFooter(bp, asize, 1)
			tail := nextBlock(bp)
			setHeaderFooter(tail, old-asize, 0)
			h.coalesce(tail)
		}
		return ptr
	}

	next := nextBlock(bp)
	if isEpilogue(next) {
		growBy := asize - old
		if growBy%doubleWordSize != 0 {
			growBy += doubleWordSize - (growBy % doubleWordSize)
		}
		if _, err := h.extendRaw(growBy); err != nil {
			warnf("malloc: reallocate grow-at-tail %d failed: %v", size, err)
			return nil
		}
		setHeaderFooter(bp, old+growBy, 1)
		return ptr
	}

	newPtr := h.Allocate(size)
	if newPtr == nil {
		return nil
	}
	copyWords(uintptr(newPtr), bp, old-doubleWordSize)
	h.Free(ptr)
	return newPtr
}

// copyWords copies n bytes of payload between two heap addresses, word at
// a time, matching the granularity every other boundary-tag operation in
// this package already uses.
func copyWords(dst, src, n uintptr) {
	var i uintptr
	for ; i+wordSize <= n; i += wordSize {
		storeWord(dst+i, loadWord(src+i))
	}
	for ; i < n; i++ {
		*(*byte)(unsafe.Pointer(dst + i)) = *(*byte)(unsafe.Pointer(src + i))
	}
}
