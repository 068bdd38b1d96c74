package malloc

import "fmt"

// CheckHeap is the read-only debug collaborator: it walks the heap from
// the prologue payload by nextBlock until the epilogue, validating
// invariants 1 (header==footer), 2 (tiling), 6 (no adjacent free blocks),
// 7 (sentinel values) and 8 (alignment), then walks every free list
// validating invariants 3 (a block is on a list iff its alloc bit is 0)
// and 4 (segregation). It never mutates the heap. verbose additionally
// logs each block visited.
func (h *Heap) CheckHeap(verbose bool) []error {
	var problems []error

	problems = append(problems, h.checkTiling(verbose)...)
	problems = append(problems, h.checkFreeLists(verbose)...)
	return problems
}

func (h *Heap) checkTiling(verbose bool) []error {
	var problems []error
	prevWasFree := false

	for bp := h.prologue; ; bp = nextBlock(bp) {
		header := loadWord(headerAt(bp))
		if !isEpilogue(bp) {
			footer := loadWord(footerAt(bp))
			if header != footer {
				problems = append(problems, fmt.Errorf("block %#x: header %#x != footer %#x", bp, header, footer))
			}
		}
		if bp%doubleWordSize != 0 {
			problems = append(problems, fmt.Errorf("block %#x: payload not double-word aligned", bp))
		}
		if bp == h.prologue && header != packWord(doubleWordSize, 1) {
			problems = append(problems, fmt.Errorf("prologue %#x: header %#x, want size %d alloc 1", bp, header, doubleWordSize))
		}
		if verbose {
			tracef("checkheap: block %#x size=%d alloc=%d", bp, sizeOfWord(header), allocOfWord(header))
		}

		isFree := allocOfWord(header) == 0
		if isFree && prevWasFree {
			problems = append(problems, fmt.Errorf("block %#x: adjacent free blocks not coalesced", bp))
		}
		prevWasFree = isFree

		if isEpilogue(bp) {
			if allocOfWord(header) != 1 {
				problems = append(problems, fmt.Errorf("epilogue %#x: alloc bit must be 1", bp))
			}
			break
		}
	}
	return problems
}

func (h *Heap) checkFreeLists(verbose bool) []error {
	var problems []error
	listed := 0

	for i, head := range h.fl.heads {
		for bp := head; bp != 0; bp = getNext(bp) {
			listed++
			if allocAt(bp) != 0 {
				problems = append(problems, fmt.Errorf("block %#x: on free list %d but alloc bit set", bp, i))
			}
			if got := h.fl.classOf(sizeAt(bp)); got != i {
				problems = append(problems, fmt.Errorf("block %#x: size %d belongs on list %d, found on %d", bp, sizeAt(bp), got, i))
			}
			if verbose {
				tracef("checkheap: free list %d: block %#x size=%d", i, bp, sizeAt(bp))
			}
		}
	}

	free := 0
	for bp := nextBlock(h.prologue); !isEpilogue(bp); bp = nextBlock(bp) {
		if allocAt(bp) == 0 {
			free++
		}
	}
	if free != listed {
		problems = append(problems, fmt.Errorf("heap holds %d free blocks but the free lists hold %d", free, listed))
	}
	return problems
}
