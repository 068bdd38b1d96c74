package malloc

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"
)

// ClassStat reports the state of a single size class's free list.
type ClassStat struct {
	Class      int
	UpperBound uintptr // 0 for the catch-all final class
	Blocks     int
	FreeBytes  uintptr
}

// Utilization reports, per size class, how many free blocks are on that
// class's list and how many bytes they hold. This is observability only,
// no allocator operation consults it when choosing where to place a
// block.
func (h *Heap) Utilization() []ClassStat {
	stats := make([]ClassStat, len(h.fl.heads))
	for i, head := range h.fl.heads {
		stat := ClassStat{Class: i}
		if i < len(h.fl.thresholds) {
			stat.UpperBound = h.fl.thresholds[i]
		}
		for bp := head; bp != 0; bp = getNext(bp) {
			stat.Blocks++
			stat.FreeBytes += sizeAt(bp)
		}
		stats[i] = stat
	}
	return stats
}

// Dump renders Utilization() as a human-readable report, formatting byte
// counts with go-humanize for readability.
func (h *Heap) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "heap %#x-%#x\n", h.provider.Lo(), h.provider.Hi())
	for _, stat := range h.Utilization() {
		bound := "inf"
		if stat.UpperBound > 0 {
			bound = humanize.Bytes(uint64(stat.UpperBound))
		}
		fmt.Fprintf(&b, "  class %d (<=%s): %d blocks, %s free\n",
			stat.Class, bound, stat.Blocks, humanize.Bytes(uint64(stat.FreeBytes)))
	}
	return b.String()
}
