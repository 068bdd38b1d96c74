package malloc

import (
	sigar "github.com/cloudfoundry/gosigar"
)

// sysmemFraction is the share of currently-free system RAM that
// SuggestedArenaCapacity is willing to recommend reserving for one heap.
const sysmemFraction = 0.25

// SuggestedArenaCapacity queries free system RAM and returns a conservative
// ceiling for a backing arena's reservation, for callers that would rather
// not hardcode a capacity. It is advisory only: NewHeap never calls this on
// its own, and no allocator operation consults system memory on the hot
// path; the arena is reserved up front and never paged.
func SuggestedArenaCapacity() (uintptr, error) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0, err
	}
	return uintptr(float64(mem.Free) * sysmemFraction), nil
}
