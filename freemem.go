// Package freemem defines the interfaces shared by the free-list primitives
// in package link and the allocators built on them.
package freemem

import (
	"unsafe"

	"github.com/dacapoday/freemem/link"
)

// Arena hands out raw memory regions to allocators.
//
// The *mem.Arena and *mmap.Arena types satisfy this interface.
type Arena interface {
	// Allocate returns a region of at least size bytes aligned to WordAlign.
	// The region stays valid until Close and is never returned twice.
	Allocate(size int) (unsafe.Pointer, error)

	// Close releases every region handed out by Allocate.
	// Memory obtained from the arena must not be used afterwards.
	Close() error
}

const (
	// WordSize is the size of one link field.
	WordSize = int(link.WordSize)

	// WordAlign is the alignment of every block in a free list.
	WordAlign = int(link.WordAlign)
)

// Align rounds size up to a multiple of align, which must be a power of two.
func Align(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// IsAligned reports whether p is aligned to align, which must be a power of two.
func IsAligned(p unsafe.Pointer, align int) bool {
	return uintptr(p)&uintptr(align-1) == 0
}
