//go:build debug

package pool

import (
	"fmt"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// assertNode panics if node is nil, misaligned or foreign to the arena.
// Only enabled with -tags debug.
func assertNode(method string, arena freemem.Arena, node unsafe.Pointer) {
	if node == nil {
		panic(fmt.Sprintf("%s: nil node", method))
	}
	if !freemem.IsAligned(node, freemem.WordAlign) {
		panic(fmt.Sprintf("%s: node %p not aligned", method, node))
	}
	if o, ok := arena.(interface{ Owns(unsafe.Pointer) bool }); ok && !o.Owns(node) {
		panic(fmt.Sprintf("%s: node %p not owned by arena", method, node))
	}
}

// assertRegion panics if size cannot hold a single node.
// Only enabled with -tags debug.
func assertRegion(method string, size, nodeSize int) {
	if size < nodeSize {
		panic(fmt.Sprintf("%s: region size %d < node size %d", method, size, nodeSize))
	}
}
