//go:build unix

package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/dacapoday/freemem"
)

func pageSize() int {
	return unix.Getpagesize()
}

func mapAnon(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			err = freemem.ErrOutOfMemory
		}
		return nil, fmt.Errorf("mmap: map %d bytes: %w", size, err)
	}
	return data, nil
}

func unmap(data []byte) error {
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
