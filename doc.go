// Package malloc implements a dynamic memory allocator over a single
// contiguous heap obtained from an external, sbrk-style arena (package
// arena). It follows the classical boundary-tag design from CS:APP:
// explicit segregated free lists indexed by size class, first-fit search,
// boundary-tag coalescing on free, and split-on-placement.
//
// A Heap is created with NewHeap and owns its own free-list array, its own
// arena.Provider, and its own allocator state; a process may run any number
// of independent Heaps. Heap is not safe for concurrent use, like the
// allocator it implements, it is single-threaded and non-reentrant.
//
// Block layout:
//
//	[ header word | payload ... | footer word ]
//
// Header and footer both pack (size, alloc-bit) into one machine word; a
// free block additionally stores its free-list prev/next links in the
// first two words of its own payload. See word.go and block.go for the
// boundary-tag codec and block geometry, freelist.go for the segregated
// free-list registry, and api.go for the public Allocate/Free/Reallocate
// operations.
package malloc
