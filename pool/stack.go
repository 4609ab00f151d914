// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/dacapoday/freemem/link"
)

// Stack is an unordered free list. Each free node stores the address of the
// next one, and the most recently pushed node is handed out first.
type Stack struct {
	head     unsafe.Pointer
	nodeSize int
	len      int
}

// NewStack returns an empty Stack of nodes of at least nodeSize bytes.
// It panics if nodeSize is not positive.
func NewStack(nodeSize int) *Stack {
	size := normalizeNodeSize(nodeSize)
	if size == 0 {
		panic(fmt.Errorf("pool: %w: %d", ErrInvalidNodeSize, nodeSize))
	}
	return &Stack{nodeSize: size}
}

func (s *Stack) NodeSize() int { return s.nodeSize }
func (s *Stack) Len() int      { return s.len }

// Empty reports whether the list has no free node.
func (s *Stack) Empty() bool { return s.head == nil }

// Insert links the nodes of the region in ascending address order in front
// of the current head, so a fresh region serves array requests directly.
func (s *Stack) Insert(region unsafe.Pointer, size int) {
	assertRegion("Stack.Insert", size, s.nodeSize)
	n := size / s.nodeSize
	for i := n - 1; i >= 0; i-- {
		link.Push(&s.head, unsafe.Add(region, i*s.nodeSize))
	}
	s.len += n
}

func (s *Stack) Push(node unsafe.Pointer) {
	link.Push(&s.head, node)
	s.len++
}

func (s *Stack) Pop() unsafe.Pointer {
	node := link.Pop(&s.head)
	if node != nil {
		s.len--
	}
	return node
}

// PopArray scans the list for n nodes that follow each other both in the
// list and in memory. The scan is linear in the list length.
func (s *Stack) PopArray(n int) unsafe.Pointer {
	if n <= 1 {
		if n == 1 {
			return s.Pop()
		}
		return nil
	}

	var prev unsafe.Pointer // node linked before start
	start := s.head
	for start != nil {
		end, count := start, 1
		for count < n {
			next := link.Next(end)
			if !adjacent(end, next, s.nodeSize) {
				break
			}
			end = next
			count++
		}
		after := link.Next(end)
		if count == n {
			if prev == nil {
				s.head = after
			} else {
				link.SetNext(prev, after)
			}
			s.len -= n
			return start
		}
		// any run starting between start and end breaks at end too
		prev, start = end, after
	}
	return nil
}

// All iterates over the free nodes from head to tail.
// The list must not be modified during the iteration.
func (s *Stack) All() iter.Seq[unsafe.Pointer] {
	return func(yield func(unsafe.Pointer) bool) {
		for node := s.head; node != nil; node = link.Next(node) {
			if !yield(node) {
				return
			}
		}
	}
}
