package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceArenaExtendGrowsMonotonically(t *testing.T) {
	a, err := NewSliceArena(256)
	require.NoError(t, err)
	assert.Equal(t, a.Lo(), a.Hi())

	lo := a.Lo()
	addr1, err := a.Extend(64)
	require.NoError(t, err)
	assert.Equal(t, lo, addr1)
	assert.Equal(t, lo+64, a.Hi())

	addr2, err := a.Extend(32)
	require.NoError(t, err)
	assert.Equal(t, lo+64, addr2)
	assert.Equal(t, lo+96, a.Hi())
}

func TestSliceArenaExtendFailsPastCapacity(t *testing.T) {
	a, err := NewSliceArena(64)
	require.NoError(t, err)

	_, err = a.Extend(32)
	require.NoError(t, err)

	hiBefore := a.Hi()
	_, err = a.Extend(64)
	assert.ErrorIs(t, err, ErrOutOfCapacity)
	assert.Equal(t, hiBefore, a.Hi(), "failed extend must not mutate state")
}

func TestSliceArenaAddressesAreWritable(t *testing.T) {
	a, err := NewSliceArena(64)
	require.NoError(t, err)

	addr, err := a.Extend(16)
	require.NoError(t, err)

	word := (*uintptr)(unsafe.Pointer(addr))
	*word = 0xdeadbeef
	assert.Equal(t, uintptr(0xdeadbeef), *word)
}
