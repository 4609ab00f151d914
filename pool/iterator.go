// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"unsafe"

	"github.com/dacapoday/freemem/link"
)

// Iterator is a bidirectional cursor over the free nodes of an Ordered list,
// in address order. It holds the current node and its lower neighbor, which
// is all a XOR-linked list needs to move either way.
//
// Usage:
//
//	for it := list.Iter(); it.Valid(); it.Next() {
//	    node := it.Addr()
//	    // inspect node
//	}
//
// The list must not be modified while an iterator is in use.
type Iterator struct {
	list   *Ordered
	cursor link.Cursor // cursor.Prev is the lower neighbor of cursor.Cur
}

// Iter returns an iterator positioned at the lowest free node.
func (o *Ordered) Iter() *Iterator {
	it := &Iterator{list: o}
	it.SeekFirst()
	return it
}

// Valid returns true if positioned at a free node.
func (it *Iterator) Valid() bool {
	return it.cursor.Valid()
}

// Addr returns the node at the current position.
// Behavior is undefined if Valid() returns false.
func (it *Iterator) Addr() unsafe.Pointer {
	return it.cursor.Cur
}

// Next moves to the next higher node.
// Returns false once the iterator moves past the highest node.
func (it *Iterator) Next() bool {
	if !it.cursor.Valid() {
		return false
	}
	it.cursor.Next()
	return it.cursor.Valid()
}

// Prev moves to the next lower node.
// Returns false once the iterator moves past the lowest node.
func (it *Iterator) Prev() bool {
	if !it.cursor.Valid() {
		return false
	}
	if it.cursor.Prev == nil {
		it.cursor = link.Cursor{}
		return false
	}
	it.cursor.Back()
	return true
}

// SeekFirst positions the iterator at the lowest node.
// Returns false if the list is empty.
func (it *Iterator) SeekFirst() bool {
	it.cursor = link.Cursor{Cur: it.list.begin}
	return it.cursor.Valid()
}

// SeekLast positions the iterator at the highest node.
// Returns false if the list is empty.
func (it *Iterator) SeekLast() bool {
	end := it.list.end
	if end == nil {
		it.cursor = link.Cursor{}
		return false
	}
	it.cursor = link.Cursor{Prev: link.Other(end, nil), Cur: end}
	return true
}

// Seek positions the iterator at the lowest node not below p.
// Returns false if every node lies below p.
func (it *Iterator) Seek(p unsafe.Pointer) bool {
	it.SeekFirst()
	for it.cursor.Valid() && link.Less(it.cursor.Cur, p) {
		it.cursor.Next()
	}
	return it.cursor.Valid()
}
