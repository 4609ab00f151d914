// Package mem provides a Go heap backed implementation of freemem.Arena.
package mem

import (
	"fmt"
	"iter"
	"sync"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// Arena is an in-memory implementation of the freemem.Arena interface.
// It is safe for concurrent use by multiple goroutines.
//
// Arena requires no initialization - just declare and use:
//
//	var a Arena
//	p, err := a.Allocate(4096)
//
// Regions are backed by []uintptr so they are word aligned and never scanned
// for pointers by the garbage collector. The arena keeps them reachable until
// Close.
type Arena struct {
	rw       sync.RWMutex
	segments segments
}

var _ freemem.Arena = new(Arena)

// Allocate returns a zeroed region of at least size bytes.
// The size is rounded up to a multiple of freemem.WordSize.
func (arena *Arena) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: allocate %d: %w", size, freemem.ErrInvalidSize)
	}
	words := make([]uintptr, (size+freemem.WordSize-1)/freemem.WordSize)
	seg := unsafe.Pointer(unsafe.SliceData(words))

	arena.rw.Lock()
	arena.segments.append(seg, int64(len(words)*freemem.WordSize))
	arena.rw.Unlock()
	return seg, nil
}

// Close drops all regions and releases them to the garbage collector.
// After Close, the arena size becomes 0.
// It is safe to allocate from the arena again after closing.
func (arena *Arena) Close() error {
	arena.rw.Lock()
	arena.segments.close()
	arena.rw.Unlock()
	return nil
}

// Size returns the total number of bytes handed out since the last Close.
func (arena *Arena) Size() int64 {
	arena.rw.RLock()
	defer arena.rw.RUnlock()
	return arena.segments.size()
}

// Len returns the number of regions handed out since the last Close.
func (arena *Arena) Len() int {
	arena.rw.RLock()
	defer arena.rw.RUnlock()
	return len(arena.segments)
}

// Owns reports whether p lies inside a region of the arena.
func (arena *Arena) Owns(p unsafe.Pointer) bool {
	arena.rw.RLock()
	defer arena.rw.RUnlock()
	return arena.segments.find(p) >= 0
}

// Regions iterates over the regions and their sizes in allocation order.
// The arena is read-locked for the duration of the iteration.
func (arena *Arena) Regions() iter.Seq2[unsafe.Pointer, int] {
	return func(yield func(unsafe.Pointer, int) bool) {
		arena.rw.RLock()
		defer arena.rw.RUnlock()
		for i := range arena.segments {
			if !yield(arena.segments[i].seg, int(arena.segments.segLen(i))) {
				return
			}
		}
	}
}

type segments []segment

type segment = struct {
	seg unsafe.Pointer // start of the region
	off int64          // cumulative offset (end position of this segment)
}

func (s *segments) close() {
	*s = nil
}

func (s *segments) append(seg unsafe.Pointer, size int64) {
	*s = append(*s, segment{seg: seg, off: s.size() + size})
}

func (s segments) size() int64 {
	l := len(s)
	if l == 0 {
		return 0
	}
	return s[l-1].off
}

func (s segments) segLen(idx int) int64 {
	if idx == 0 {
		return s[0].off
	}
	return s[idx].off - s[idx-1].off
}

// find returns the index of the segment containing p, or -1.
func (s segments) find(p unsafe.Pointer) int {
	addr := uintptr(p)
	for i := range s {
		start := uintptr(s[i].seg)
		if addr >= start && addr-start < uintptr(s.segLen(i)) {
			return i
		}
	}
	return -1
}
