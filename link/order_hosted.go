//go:build !freestanding

package link

import (
	"cmp"
	"unsafe"
)

// Hosted reports whether Less orders by memory location.
const Hosted = true

// Less reports whether a orders before b.
//
// Go heap objects and mapped regions never move, so the order is the order of
// the blocks in memory, also across unrelated allocations. Sorted free lists
// rely on it to find adjacent blocks.
func Less(a, b unsafe.Pointer) bool {
	return cmp.Less(uintptr(a), uintptr(b))
}
