// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package link

import "unsafe"

// Next decodes the link field of p as the address of the next block.
func Next(p unsafe.Pointer) unsafe.Pointer {
	return readToken(p).Pointer()
}

// SetNext stores next in the link field of p.
func SetNext(p, next unsafe.Pointer) {
	writeToken(p, TokenOf(next))
}

// Push links block in front of *head and makes it the new head.
func Push(head *unsafe.Pointer, block unsafe.Pointer) {
	SetNext(block, *head)
	*head = block
}

// Pop unlinks and returns the head block, or nil if the list is empty.
// The link field of the returned block is stale.
func Pop(head *unsafe.Pointer) unsafe.Pointer {
	block := *head
	if block != nil {
		*head = Next(block)
	}
	return block
}
