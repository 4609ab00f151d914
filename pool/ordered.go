// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/dacapoday/freemem/link"
)

// Ordered is a free list sorted by address. Each free node stores the XOR
// of its neighbors' addresses, so the list is doubly linked at the cost of
// one word per node. Walking it needs a cursor holding two pointers.
//
// Keeping nodes sorted makes adjacent nodes neighbors in the list, which is
// what PopArray needs to hand out contiguous memory.
type Ordered struct {
	begin, end unsafe.Pointer // lowest and highest node

	// hint is the cursor at the node inserted last, Prev being its lower
	// neighbor. Any removal invalidates it.
	hint link.Cursor

	nodeSize int
	len      int
}

// NewOrdered returns an empty Ordered list of nodes of at least nodeSize bytes.
// It panics if nodeSize is not positive.
func NewOrdered(nodeSize int) *Ordered {
	size := normalizeNodeSize(nodeSize)
	if size == 0 {
		panic(fmt.Errorf("pool: %w: %d", ErrInvalidNodeSize, nodeSize))
	}
	return &Ordered{nodeSize: size}
}

func (o *Ordered) NodeSize() int { return o.nodeSize }
func (o *Ordered) Len() int      { return o.len }

// Empty reports whether the list has no free node.
func (o *Ordered) Empty() bool { return o.begin == nil }

// First returns the lowest free node, or nil.
func (o *Ordered) First() unsafe.Pointer { return o.begin }

// Last returns the highest free node, or nil.
func (o *Ordered) Last() unsafe.Pointer { return o.end }

// locate returns the neighbors p must be linked between.
// Searching starts at the hint when p lies above it.
func (o *Ordered) locate(p unsafe.Pointer) (prev, next unsafe.Pointer) {
	c := link.Cursor{Cur: o.begin}
	if o.hint.Valid() && link.Less(o.hint.Cur, p) {
		c = link.Cursor{Prev: o.hint.Cur, Cur: o.hint.Following()}
	}
	for c.Valid() && link.Less(c.Cur, p) {
		c.Next()
	}
	return c.Prev, c.Cur
}

// Insert splits the region into nodes and splices them into the list as
// one ascending chain. The region must not overlap any free node.
func (o *Ordered) Insert(region unsafe.Pointer, size int) {
	assertRegion("Ordered.Insert", size, o.nodeSize)
	n := size / o.nodeSize
	if n == 0 {
		return
	}

	before, after := o.locate(region)
	prev := before
	for i := range n {
		node := unsafe.Add(region, i*o.nodeSize)
		link.Insert(node, prev, after)
		prev = node
	}
	if before == nil {
		o.begin = region
	}
	if after == nil {
		o.end = prev
	}
	o.hint = link.Cursor{Prev: before, Cur: region}
	o.len += n
}

// Push inserts a single node at its sorted position.
func (o *Ordered) Push(node unsafe.Pointer) {
	prev, next := o.locate(node)
	link.Insert(node, prev, next)
	if prev == nil {
		o.begin = node
	}
	if next == nil {
		o.end = node
	}
	o.hint = link.Cursor{Prev: prev, Cur: node}
	o.len++
}

// Pop removes and returns the lowest node.
func (o *Ordered) Pop() unsafe.Pointer {
	node := o.begin
	if node == nil {
		return nil
	}
	o.unlink(nil, node, node, link.Other(node, nil), 1)
	return node
}

// PopArray removes the lowest run of n adjacent nodes.
func (o *Ordered) PopArray(n int) unsafe.Pointer {
	if n <= 0 {
		return nil
	}

	c := link.Cursor{Cur: o.begin}
	for c.Valid() {
		start, count := c, 1
		for count < n && adjacent(c.Cur, c.Following(), o.nodeSize) {
			c.Next()
			count++
		}
		if count == n {
			o.unlink(start.Prev, start.Cur, c.Cur, c.Following(), n)
			return start.Cur
		}
		c.Next()
	}
	return nil
}

// Remove unlinks node if it is free and reports whether it was.
func (o *Ordered) Remove(node unsafe.Pointer) bool {
	c := link.Cursor{Cur: o.begin}
	for c.Valid() && link.Less(c.Cur, node) {
		c.Next()
	}
	if c.Cur != node || node == nil {
		return false
	}
	o.unlink(c.Prev, node, node, c.Following(), 1)
	return true
}

// Contains reports whether node is in the list.
func (o *Ordered) Contains(node unsafe.Pointer) bool {
	it := o.Iter()
	return it.Seek(node) && it.Addr() == node
}

// unlink removes the n nodes from first to last lying between before and after.
func (o *Ordered) unlink(before, first, last, after unsafe.Pointer, n int) {
	if before == nil {
		o.begin = after
	} else {
		link.Update(before, first, after)
	}
	if after == nil {
		o.end = before
	} else {
		link.Update(after, last, before)
	}
	o.hint = link.Cursor{}
	o.len -= n
}

// All iterates over the free nodes in ascending address order.
// The list must not be modified during the iteration.
func (o *Ordered) All() iter.Seq[unsafe.Pointer] {
	return walk(o.begin)
}

// Backward iterates over the free nodes in descending address order.
// The list must not be modified during the iteration.
func (o *Ordered) Backward() iter.Seq[unsafe.Pointer] {
	return walk(o.end)
}

// walk traverses from a list end; the direction follows from the encoding.
func walk(from unsafe.Pointer) iter.Seq[unsafe.Pointer] {
	return func(yield func(unsafe.Pointer) bool) {
		for c := (link.Cursor{Cur: from}); c.Valid(); c.Next() {
			if !yield(c.Cur) {
				return
			}
		}
	}
}
