package freemem

import "errors"

var (
	ErrClosed           = errors.New("closed")
	ErrOutOfMemory      = errors.New("out of memory")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidNodeSize  = errors.New("invalid node size")
	ErrInvalidBlockSize = errors.New("invalid block size")
)
