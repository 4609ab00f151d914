package link

import (
	"testing"
	"unsafe"
)

// newBlocks returns n word-sized blocks in ascending address order.
func newBlocks(t testing.TB, n int) []unsafe.Pointer {
	t.Helper()
	buf := make([]uintptr, n)
	blocks := make([]unsafe.Pointer, n)
	for i := range buf {
		blocks[i] = unsafe.Pointer(&buf[i])
	}
	return blocks
}

// walk traverses a XOR list starting at cur, coming from prev.
func walk(cur, prev unsafe.Pointer) (nodes []unsafe.Pointer) {
	for cur != nil {
		nodes = append(nodes, cur)
		Advance(&cur, &prev)
	}
	return
}
