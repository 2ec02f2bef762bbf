package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
)

// ElementSize is the size in bytes of a single array element.
const ElementSize = 4

// ErrUnknownBackend is returned by Use when the requested backend does not exist.
var ErrUnknownBackend = errors.New("unknown backend")

var (
	lock        = sync.RWMutex{}
	impl        = implementation(blas{})
	totalMemory = memory.TotalMemory()
	available   = map[string]implementation{
		naive{}.Name(): naive{},
		blas{}.Name():  blas{},
		gonum{}.Name(): gonum{},
	}
)

func current() implementation {
	lock.RLock()
	defer lock.RUnlock()
	return impl
}

// Use selects the backend with the given name for every subsequent operation.
func Use(name string) error {
	next, found := available[name]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}

	lock.Lock()
	defer lock.Unlock()
	impl = next
	return nil
}

// Available returns the sorted names of the backends that can be passed to Use.
func Available() []string {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name of the active backend.
func Name() string {
	return current().Name()
}

// Space returns the amount of memory in bytes the active backend can use.
func Space() uint64 {
	return current().Space()
}

// Reserve makes sure a buffer of the given number of elements can be allocated,
// it panics otherwise as running out of memory is not recoverable.
func Reserve(elements int) {
	need := uint64(elements) * ElementSize
	if totalMemory > 0 && need > totalMemory {
		panic(fmt.Sprintf("cannot allocate %d elements: %s requested, %s available",
			elements,
			humanize.Bytes(need),
			humanize.Bytes(totalMemory)))
	}
}

// Add computes dst = a + b using the active backend.
func Add(dst, a, b []float32) {
	current().Add(dst, a, b)
}

// Sub computes dst = a - b using the active backend.
func Sub(dst, a, b []float32) {
	current().Sub(dst, a, b)
}

// MatMul computes the (rows x inner) by (inner x cols) product into dst using the active backend.
func MatMul(dst, a, b []float32, rows, inner, cols int) {
	current().MatMul(dst, a, b, rows, inner, cols)
}
