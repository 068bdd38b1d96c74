// Command heapdemo drives a malloc.Heap through a randomized workload from
// the command line, printing humanize-formatted utilization and,
// with -check, running CheckHeap after every call.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"unsafe"

	hm "github.com/dustin/go-humanize"

	"github.com/samuelc1231/mymalloc"
	"github.com/samuelc1231/mymalloc/arena"
)

var options struct {
	capacity int
	n        int
	minsize  int
	maxsize  int
	check    bool
	verbose  bool
}

func argParse() {
	flag.IntVar(&options.capacity, "capacity", 16*1024*1024, "bytes to reserve for the arena")
	flag.IntVar(&options.n, "n", 1000, "number of allocate/free operations to run")
	flag.IntVar(&options.minsize, "minsize", 8, "minimum payload size to request")
	flag.IntVar(&options.maxsize, "maxsize", 2048, "maximum payload size to request")
	flag.BoolVar(&options.check, "check", false, "run CheckHeap after every operation")
	flag.BoolVar(&options.verbose, "verbose", false, "enable allocator logging")
	flag.Parse()
}

func main() {
	argParse()

	a, err := arena.NewSliceArena(uintptr(options.capacity))
	if err != nil {
		fmt.Fprintln(os.Stderr, "arena:", err)
		os.Exit(1)
	}

	setts := malloc.DefaultSettings()
	setts["verbose"] = options.verbose
	h, err := malloc.NewHeap(a, setts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "heap:", err)
		os.Exit(1)
	}

	live := make([]unsafe.Pointer, 0, options.n)
	for i := 0; i < options.n; i++ {
		if len(live) > 0 && rand.Intn(3) == 0 {
			idx := rand.Intn(len(live))
			h.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			size := options.minsize + rand.Intn(options.maxsize-options.minsize+1)
			if p := h.Allocate(uintptr(size)); p != nil {
				live = append(live, p)
			}
		}
		if options.check {
			if problems := h.CheckHeap(false); len(problems) > 0 {
				fmt.Fprintf(os.Stderr, "checkheap failed after op %d:\n", i)
				for _, p := range problems {
					fmt.Fprintln(os.Stderr, " -", p)
				}
				os.Exit(1)
			}
		}
	}

	fmt.Printf("ran %d operations, %d live allocations\n", options.n, len(live))
	fmt.Println(h.Dump())
	fmt.Printf("arena capacity: %s\n", hm.Bytes(uint64(options.capacity)))
}
