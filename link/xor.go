// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package link

import "unsafe"

// Other returns the neighbor of p that is not known.
// known must be one of p's current neighbors, nil at a list boundary.
func Other(p, known unsafe.Pointer) unsafe.Pointer {
	return readToken(p).Xor(TokenOf(known)).Pointer()
}

// SetLink stores prev XOR next in the link field of p.
// The order of prev and next does not matter.
func SetLink(p, prev, next unsafe.Pointer) {
	writeToken(p, TokenOf(prev).Xor(TokenOf(next)))
}

// Update replaces the neighbor from of p with to,
// leaving the other neighbor untouched.
func Update(p, from, to unsafe.Pointer) {
	assertAddress("link.Update", p)
	SetLink(p, Other(p, from), to)
}

// Advance moves the cursor pair one step away from *prev:
// (*prev, *cur) becomes (*cur, Other(*cur, *prev)).
// Starting at a list end with *prev == nil walks the list from that end.
func Advance(cur, prev *unsafe.Pointer) {
	next := Other(*cur, *prev)
	*prev = *cur
	*cur = next
}

// Insert links node between the adjacent nodes prev and next.
// Either neighbor may be nil when node becomes a list end.
//
// Insert performs up to three writes and the list is not well formed
// until the last one completes.
func Insert(node, prev, next unsafe.Pointer) {
	assertDistinct("link.Insert", node, prev, next)
	SetLink(node, prev, next)
	if prev != nil {
		Update(prev, next, node)
	}
	if next != nil {
		Update(next, prev, node)
	}
}

// Remove unlinks node from between its neighbors prev and next.
// Either neighbor may be nil when node is a list end.
// The link field of node is stale afterwards.
func Remove(node, prev, next unsafe.Pointer) {
	if prev != nil {
		Update(prev, node, next)
	}
	if next != nil {
		Update(next, node, prev)
	}
}

// Cursor is a position in a XOR-linked list.
// Cur is the current node and Prev the node visited just before it,
// which fixes the direction of travel.
type Cursor struct {
	Prev, Cur unsafe.Pointer
}

// Valid reports whether the cursor is on a node.
func (c *Cursor) Valid() bool {
	return c.Cur != nil
}

// Next steps away from Prev.
func (c *Cursor) Next() {
	Advance(&c.Cur, &c.Prev)
}

// Back steps onto Prev, reversing the last Next.
// Prev must not be nil.
func (c *Cursor) Back() {
	prev := Other(c.Prev, c.Cur)
	c.Cur = c.Prev
	c.Prev = prev
}

// Following returns the node Next would move to, without moving.
func (c *Cursor) Following() unsafe.Pointer {
	return Other(c.Cur, c.Prev)
}
