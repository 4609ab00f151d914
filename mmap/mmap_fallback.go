//go:build !unix

package mmap

import (
	"os"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// Without mmap the regions come from the Go heap. They are backed by
// []uintptr so they stay word aligned and are not scanned for pointers;
// the arena's mappings slice keeps them reachable until Close.

func pageSize() int {
	return os.Getpagesize()
}

func mapAnon(size int) ([]byte, error) {
	words := make([]uintptr, size/freemem.WordSize)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size), nil
}

func unmap([]byte) error { return nil }
