package malloc

// nextBlock returns the payload pointer of the block physically following
// bp, found by walking past bp's own declared size. At the high end of the
// heap this lands on the epilogue's header position treated as if it were
// a payload pointer one word in. Callers must check sizeAt(next) == 0
// before treating it as a real block.
func nextBlock(bp uintptr) uintptr {
	return bp + sizeAt(bp)
}

// prevBlock returns the payload pointer of the block physically preceding
// bp, found by reading that block's footer (the word immediately before
// bp's own header). The prologue guarantees a valid footer at the low end
// of the heap.
func prevBlock(bp uintptr) uintptr {
	footer := loadWord(bp - doubleWordSize)
	return bp - sizeOfWord(footer)
}

// isEpilogue reports whether bp is the synthetic epilogue sentinel rather
// than a real block, recognizable by its declared size of zero.
func isEpilogue(bp uintptr) bool {
	return sizeAt(bp) == 0
}
