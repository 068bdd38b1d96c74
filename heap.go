package malloc

import (
	"fmt"
	"unsafe"

	s "github.com/bnclabs/gosettings"

	"github.com/samuelc1231/mymalloc/arena"
)

// Heap is one independent allocator instance: its own free-list array, its
// own arena.Provider, and its own allocator state. Per the re-architecture
// the design notes call for, none of this is process-global. A process
// may run any number of Heaps, each with its own arena. Heap is not safe
// for concurrent use.
type Heap struct {
	provider arena.Provider
	fl       freeList

	prologue     uintptr // prologue's payload pointer, constant once init completes
	extendStep   uintptr
	lastMissSize uintptr // 0 means "no sticky miss recorded"
}

// NewHeap validates settings, then bootstraps a fresh heap over provider:
// a 4-word prologue/epilogue region followed by a permanently-allocated
// free-list head array. Settings defaults to DefaultSettings() if nil.
func NewHeap(provider arena.Provider, setts s.Settings) (*Heap, error) {
	if setts == nil {
		setts = DefaultSettings()
	}
	if ws := uintptr(settingsInt64(setts, "wordsize", int64(wordSize))); ws != wordSize {
		panicerr("malloc: settings wordsize %d does not match platform word size %d", ws, wordSize)
	}
	thresholds := settingsThresholds(setts)
	if !validateThresholds(thresholds) {
		return nil, fmt.Errorf("%w: classthresholds must be strictly increasing", ErrorBadSettings)
	}
	if settingsBool(setts, "verbose", false) {
		LogComponents("all")
	}

	h := &Heap{
		provider: provider,
		fl: freeList{
			thresholds: thresholds,
			heads:      make([]uintptr, len(thresholds)+1),
		},
		extendStep: uintptr(settingsInt64(setts, "extendstep", 0)),
	}
	if err := h.bootstrap(); err != nil {
		return nil, err
	}
	tracef("malloc: heap initialized, prologue=%#x classes=%d", h.prologue, len(h.fl.heads))
	return h, nil
}

// bootstrap implements §4.5: a 4-word prologue/epilogue extension, followed
// by a second extension carved into a permanently-allocated block that
// backs the free-list head array. Failure of either leaves no partial
// state for later calls to observe, since neither arena.Extend call has a
// partial-success mode of its own.
func (h *Heap) bootstrap() error {
	raw, err := h.provider.Extend(4 * wordSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorOutofMemory, err)
	}
	storeWord(raw, 0)                                                // alignment pad
	storeWord(raw+wordSize, packWord(doubleWordSize, 1))             // prologue header
	storeWord(raw+2*wordSize, packWord(doubleWordSize, 1))           // prologue footer
	storeWord(raw+3*wordSize, packWord(0, 1))                        // epilogue header
	h.prologue = raw + 2*wordSize

	headBytes := uintptr(len(h.fl.heads)) * wordSize
	blockSize := adjustSize(headBytes)
	bp, err := h.extendRaw(blockSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorOutofMemory, err)
	}
	setHeaderFooter(bp, blockSize, 1) // permanently allocated: invariant 9

	h.fl.heads = unsafe.Slice((*uintptr)(unsafe.Pointer(bp)), len(h.fl.heads))
	for i := range h.fl.heads {
		storeWord(bp+uintptr(i)*wordSize, 0)
	}
	return nil
}

// extendRaw requests n new bytes from the arena and stamps them as one
// free block of n bytes whose header reuses the address of the old
// epilogue header (the last word the previous extension committed), with a
// fresh epilogue header at the new tail. It does not coalesce the block or
// insert it anywhere: extend coalesces it as stamped, while bootstrap and
// Reallocate's grow-at-tail path restamp the bytes as allocated.
func (h *Heap) extendRaw(n uintptr) (uintptr, error) {
	bp, err := h.provider.Extend(n)
	if err != nil {
		return 0, err
	}
	storeWord(bp+n-wordSize, packWord(0, 1)) // new epilogue
	storeWord(headerAt(bp), packWord(n, 0))  // stamped free
	storeWord(bp+n-doubleWordSize, packWord(n, 0))
	return bp, nil
}
