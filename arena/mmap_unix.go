//go:build unix

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapArena backs a Provider with one PROT_NONE anonymous mapping reserved
// up front, committing additional pages with Mprotect as Extend is called.
// The reservation never moves, matching the property boundary-tag address
// arithmetic in package malloc depends on.
type MmapArena struct {
	mem  []byte
	base uintptr
	used uintptr
	cap  uintptr
}

// NewMmapArena reserves capacity bytes of address space without committing
// any of it.
func NewMmapArena(capacity uintptr) (*MmapArena, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("arena: capacity must be > 0")
	}
	mem, err := unix.Mmap(-1, 0, int(capacity), unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("arena: reserve %d bytes: %w", capacity, err)
	}
	return &MmapArena{mem: mem, base: uintptr(unsafe.Pointer(&mem[0])), cap: capacity}, nil
}

func (a *MmapArena) Extend(n uintptr) (uintptr, error) {
	if n == 0 {
		return 0, fmt.Errorf("arena: extend request must be > 0")
	}
	if a.used+n > a.cap {
		return 0, fmt.Errorf("%w: used=%d want=%d cap=%d", ErrOutOfCapacity, a.used, n, a.cap)
	}
	// Mprotect needs a page-aligned start; when a.used is not page-aligned,
	// the page holding it was already committed by an earlier Extend.
	pageStart := a.used &^ uintptr(unix.Getpagesize()-1)
	region := a.mem[int(pageStart):int(a.used+n)]
	if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return 0, fmt.Errorf("arena: commit %d bytes: %w", n, err)
	}
	start := a.base + a.used
	a.used += n
	return start, nil
}

func (a *MmapArena) Lo() uintptr { return a.base }
func (a *MmapArena) Hi() uintptr { return a.base + a.used }

// Release unmaps the entire reservation. Callers must not use the arena
// afterward.
func (a *MmapArena) Release() error {
	return unix.Munmap(a.mem)
}
