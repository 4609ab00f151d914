// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"unsafe"

	"github.com/dacapoday/freemem"
	"github.com/dacapoday/freemem/link"
)

// FreeList tracks free nodes of one size without auxiliary storage.
type FreeList interface {
	// NodeSize returns the size of every node, a multiple of freemem.WordSize.
	NodeSize() int

	// Len returns the number of free nodes.
	Len() int

	// Insert splits the region into size/NodeSize() nodes and adds them.
	// Trailing bytes that do not fill a node are ignored.
	Insert(region unsafe.Pointer, size int)

	// Push adds a single node.
	Push(node unsafe.Pointer)

	// Pop removes and returns a node, or nil if the list is empty.
	Pop() unsafe.Pointer

	// PopArray removes n address-adjacent nodes and returns the first,
	// or nil if no such run exists.
	PopArray(n int) unsafe.Pointer
}

var (
	_ FreeList = (*Stack)(nil)
	_ FreeList = (*Ordered)(nil)
)

// normalizeNodeSize rounds size up to whole words.
// It returns 0 if size is not positive.
func normalizeNodeSize(size int) int {
	if size <= 0 {
		return 0
	}
	return freemem.Align(max(size, freemem.WordSize), freemem.WordAlign)
}

// adjacent reports whether b starts right where the size bytes at a end.
func adjacent(a, b unsafe.Pointer, size int) bool {
	return b != nil && link.TokenOf(b) == link.TokenOf(a)+link.Token(size)
}
