// Package mmap provides a freemem.Arena backed by anonymous memory mappings.
//
// Mapped regions live outside the Go heap: the garbage collector neither
// scans nor moves them, which makes them a natural home for intrusive free
// lists whose links are plain integers.
package mmap

import (
	"sync"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// Arena maps a fresh anonymous region for each Allocate call and unmaps
// all of them on Close. It is safe for concurrent use.
//
// The zero value is ready to use.
type Arena struct {
	mu       sync.Mutex
	mappings [][]byte
	size     int64
}

var _ freemem.Arena = new(Arena)

// Allocate maps a zeroed region of size bytes rounded up to the page size.
func (arena *Arena) Allocate(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, freemem.ErrInvalidSize
	}
	data, err := mapAnon(freemem.Align(size, pageSize()))
	if err != nil {
		return nil, err
	}

	arena.mu.Lock()
	arena.mappings = append(arena.mappings, data)
	arena.size += int64(len(data))
	arena.mu.Unlock()
	return unsafe.Pointer(unsafe.SliceData(data)), nil
}

// Close unmaps every region. The arena may be reused afterwards.
// Close returns the first unmap error but still attempts every region.
func (arena *Arena) Close() (err error) {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	for _, data := range arena.mappings {
		if e := unmap(data); e != nil && err == nil {
			err = e
		}
	}
	arena.mappings = nil
	arena.size = 0
	return
}

// Size returns the number of mapped bytes.
func (arena *Arena) Size() int64 {
	arena.mu.Lock()
	defer arena.mu.Unlock()
	return arena.size
}
