package malloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelc1231/mymalloc/arena"
)

// allocateRawFreeBlock carves a standalone block straight from the arena
// for free-list unit tests, bypassing Heap entirely.
func allocateRawFreeBlock(t *testing.T, a *arena.SliceArena, size uintptr) uintptr {
	t.Helper()
	addr, err := a.Extend(size + doubleWordSize)
	require.NoError(t, err)
	bp := addr + wordSize
	setHeaderFooter(bp, size+doubleWordSize, 0)
	return bp
}

func TestFreeListInsertAndUnlinkSingle(t *testing.T) {
	a, err := arena.NewSliceArena(1 << 16)
	require.NoError(t, err)
	fl := freeList{thresholds: []uintptr{64, 128}, heads: make([]uintptr, 3)}

	bp := allocateRawFreeBlock(t, a, 32)
	fl.insert(bp)
	assert.Equal(t, bp, fl.heads[0])

	fl.unlink(bp)
	assert.Equal(t, uintptr(0), fl.heads[0])
}

func TestFreeListInsertAtHeadOrdering(t *testing.T) {
	a, err := arena.NewSliceArena(1 << 16)
	require.NoError(t, err)
	fl := freeList{thresholds: []uintptr{64, 128}, heads: make([]uintptr, 3)}

	b1 := allocateRawFreeBlock(t, a, 32)
	b2 := allocateRawFreeBlock(t, a, 32)
	b3 := allocateRawFreeBlock(t, a, 32)

	fl.insert(b1)
	fl.insert(b2)
	fl.insert(b3)

	assert.Equal(t, b3, fl.heads[0])
	assert.Equal(t, b2, getNext(b3))
	assert.Equal(t, b1, getNext(b2))
	assert.Equal(t, uintptr(0), getNext(b1))

	fl.unlink(b2) // middle unlink exercises the prev!=0 && next!=0 case
	assert.Equal(t, b1, getNext(b3))
	assert.Equal(t, b3, getPrev(b1))
}

func TestFreeListFindFitScansHigherClasses(t *testing.T) {
	a, err := arena.NewSliceArena(1 << 16)
	require.NoError(t, err)
	fl := freeList{thresholds: []uintptr{64, 128, 256}, heads: make([]uintptr, 4)}

	big := allocateRawFreeBlock(t, a, 200) // lands in class 2
	fl.insert(big)

	got := fl.findFit(48) // class 0 is empty, must spill over to class 2
	assert.Equal(t, big, got)
}

func TestFreeListFindFitNoneFits(t *testing.T) {
	fl := freeList{thresholds: []uintptr{64}, heads: make([]uintptr, 2)}
	assert.Equal(t, uintptr(0), fl.findFit(1000))
}
