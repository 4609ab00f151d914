//go:build debug

package link

import (
	"fmt"
	"unsafe"
)

// assertAddress panics if p is nil or not word aligned.
// Only enabled with -tags debug.
func assertAddress(method string, p unsafe.Pointer) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil address", method))
	}
	if uintptr(p)%WordAlign != 0 {
		panic(fmt.Sprintf("%s: address %#x not aligned to %d", method, uintptr(p), WordAlign))
	}
}

// assertDistinct panics if node is one of its own neighbors.
// Only enabled with -tags debug.
func assertDistinct(method string, node, prev, next unsafe.Pointer) {
	if node == prev || node == next {
		panic(fmt.Sprintf("%s: node %#x linked to itself", method, uintptr(node)))
	}
}
