//go:build windows

package arena

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// MmapArena backs a Provider with one PAGE_NOACCESS reservation obtained
// from VirtualAlloc up front, committing additional pages as Extend is
// called. The reservation never moves, matching the property boundary-tag
// address arithmetic in package malloc depends on.
type MmapArena struct {
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
	addr, err := windows.VirtualAlloc(0, capacity, windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, fmt.Errorf("arena: reserve %d bytes: %w", capacity, err)
	}
	return &MmapArena{base: addr, cap: capacity}, nil
}

func (a *MmapArena) Extend(n uintptr) (uintptr, error) {
	if n == 0 {
		return 0, fmt.Errorf("arena: extend request must be > 0")
	}
	if a.used+n > a.cap {
		return 0, fmt.Errorf("%w: used=%d want=%d cap=%d", ErrOutOfCapacity, a.used, n, a.cap)
	}
	start := a.base + a.used
	if _, err := windows.VirtualAlloc(start, n, windows.MEM_COMMIT, windows.PAGE_READWRITE); err != nil {
		return 0, fmt.Errorf("arena: commit %d bytes: %w", n, err)
	}
	a.used += n
	return start, nil
}

func (a *MmapArena) Lo() uintptr { return a.base }
func (a *MmapArena) Hi() uintptr { return a.base + a.used }

// Release frees the entire reservation. Callers must not use the arena
// afterward.
func (a *MmapArena) Release() error {
	return windows.VirtualFree(a.base, 0, windows.MEM_RELEASE)
}
