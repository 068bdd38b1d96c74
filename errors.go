package malloc

import (
	"errors"
	"fmt"
)

// ErrorOutofMemory is returned by NewHeap when the arena cannot supply
// even the bootstrap prologue/epilogue/free-list-head-array extension.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// ErrorBadSettings is returned by NewHeap when the supplied settings are
// internally inconsistent (e.g. a non-monotone class threshold table).
var ErrorBadSettings = errors.New("malloc.badsettings")

// panicerr follows the panic-for-programmer-error convention: NewHeap
// panics through it when the "wordsize" setting disagrees with the
// platform. CheckHeap does not panic; it returns the violations it finds.
func panicerr(format string, args ...interface{}) {
	panic(fmt.Errorf(format, args...))
}
