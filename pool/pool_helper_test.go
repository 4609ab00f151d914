package pool

import (
	"testing"
	"unsafe"
)

// newRegion returns a word-aligned region holding n nodes and the node addresses.
func newRegion(t testing.TB, n, nodeSize int) (unsafe.Pointer, []unsafe.Pointer) {
	t.Helper()
	words := make([]uintptr, n*nodeSize/int(unsafe.Sizeof(uintptr(0))))
	region := unsafe.Pointer(unsafe.SliceData(words))
	nodes := make([]unsafe.Pointer, n)
	for i := range nodes {
		nodes[i] = unsafe.Add(region, i*nodeSize)
	}
	return region, nodes
}

func collect(seq func(func(unsafe.Pointer) bool)) (nodes []unsafe.Pointer) {
	for node := range seq {
		nodes = append(nodes, node)
	}
	return
}
