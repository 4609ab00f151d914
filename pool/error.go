package pool

import (
	"github.com/dacapoday/freemem"
)

var (
	ErrClosed           = freemem.ErrClosed
	ErrOutOfMemory      = freemem.ErrOutOfMemory
	ErrInvalidSize      = freemem.ErrInvalidSize
	ErrInvalidNodeSize  = freemem.ErrInvalidNodeSize
	ErrInvalidBlockSize = freemem.ErrInvalidBlockSize
)
