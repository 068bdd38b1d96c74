package malloc

import "unsafe"

// wordSize and doubleWordSize are fixed by the target platform's native
// pointer width, exactly like WSIZE/DSIZE in a C boundary-tag allocator are
// fixed by sizeof(void*). They are not settings: DefaultSettings exposes
// "wordsize" only so a caller can assert its expectation, and NewHeap
// panics if that expectation disagrees with the platform.
const (
	wordSize       = unsafe.Sizeof(uintptr(0))
	doubleWordSize = 2 * wordSize
	minBlockSize   = 4 * wordSize
)

// packWord encodes a boundary-tag word from a block size and an alloc bit.
// size must already be a multiple of doubleWordSize; its low bits are free
// for the alloc flag.
func packWord(size, alloc uintptr) uintptr {
	return size | (alloc & 1)
}

// sizeOfWord extracts the size field from a boundary-tag word.
func sizeOfWord(w uintptr) uintptr {
	return w &^ (doubleWordSize - 1)
}

// allocOfWord extracts the alloc bit from a boundary-tag word.
func allocOfWord(w uintptr) uintptr {
	return w & 1
}

// loadWord and storeWord are the unsafe core: every boundary-tag read or
// write in this package funnels through them. addr is an absolute address
// inside the heap arena, never a Go-managed object.
func loadWord(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}

func storeWord(addr, v uintptr) {
	*(*uintptr)(unsafe.Pointer(addr)) = v
}

// headerAt returns the address of bp's header word.
func headerAt(bp uintptr) uintptr {
	return bp - wordSize
}

// footerAt returns the address of bp's footer word, computed from bp's
// current header. Callers must not have mutated the header's size field
// without also relocating the footer first.
func footerAt(bp uintptr) uintptr {
	return bp + sizeOfWord(loadWord(headerAt(bp))) - doubleWordSize
}

// sizeAt and allocAt read bp's header directly.
func sizeAt(bp uintptr) uintptr {
	return sizeOfWord(loadWord(headerAt(bp)))
}

func allocAt(bp uintptr) uintptr {
	return allocOfWord(loadWord(headerAt(bp)))
}

// setHeaderFooter stamps identical header and footer words for a block of
// the given size. The footer goes at bp+size-doubleWordSize, computed from
// the size passed in rather than from the current header, so callers that
// change a block's size just pass the new size (see place.go,
// coalesce.go).
func setHeaderFooter(bp, size, alloc uintptr) {
	w := packWord(size, alloc)
	storeWord(headerAt(bp), w)
	storeWord(bp+size-doubleWordSize, w)
}
