// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// Pool hands out fixed-size nodes. Free nodes are tracked by a FreeList
// living inside them; when it runs dry the pool requests another block
// from its arena.
//
// Not goroutine-safe.
type Pool struct {
	arena     freemem.Arena
	list      FreeList
	blockSize int
	total     int // nodes obtained from the arena
	logger    *slog.Logger
	ownArena  bool
	closed    bool
}

// New creates a pool over arena. Several pools may share one arena.
// The pool closes the arena in Close only when the option reports
// ownership through ArenaOwner; otherwise its regions stay with the arena
// until the arena itself is closed.
func New(arena freemem.Arena, opt Option) (*Pool, error) {
	nodeSize := normalizeNodeSize(opt.NodeSize())
	if nodeSize == 0 {
		return nil, fmt.Errorf("pool: %w: %d", ErrInvalidNodeSize, opt.NodeSize())
	}
	blockSize := getBlockSize(opt)
	if blockSize < nodeSize {
		return nil, fmt.Errorf("pool: %w: %d < node size %d", ErrInvalidBlockSize, blockSize, nodeSize)
	}

	var list FreeList
	if getSorted(opt) {
		list = NewOrdered(nodeSize)
	} else {
		list = NewStack(nodeSize)
	}
	return &Pool{
		arena:     arena,
		list:      list,
		blockSize: blockSize,
		logger:    getLogger(opt),
		ownArena:  getArenaOwner(opt),
	}, nil
}

func (pool *Pool) NodeSize() int  { return pool.list.NodeSize() }
func (pool *Pool) BlockSize() int { return pool.blockSize }

// Capacity returns the number of free nodes available without growing.
func (pool *Pool) Capacity() int { return pool.list.Len() }

// InUse returns the number of nodes currently handed out.
func (pool *Pool) InUse() int { return pool.total - pool.list.Len() }

// FreeList exposes the free list, mainly for inspection.
func (pool *Pool) FreeList() FreeList { return pool.list }

// Allocate returns a node of NodeSize() bytes. Its content is unspecified.
func (pool *Pool) Allocate() (unsafe.Pointer, error) {
	if pool.closed {
		return nil, ErrClosed
	}
	if node := pool.list.Pop(); node != nil {
		return node, nil
	}
	if err := pool.grow(pool.blockSize); err != nil {
		return nil, err
	}
	return pool.list.Pop(), nil
}

// AllocateArray returns n contiguous nodes as one region.
func (pool *Pool) AllocateArray(n int) (unsafe.Pointer, error) {
	if pool.closed {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, fmt.Errorf("pool: allocate %d nodes: %w", n, ErrInvalidSize)
	}
	if n > math.MaxInt/pool.NodeSize() {
		return nil, fmt.Errorf("pool: allocate %d nodes: %w", n, ErrOutOfMemory)
	}
	if p := pool.list.PopArray(n); p != nil {
		return p, nil
	}
	if err := pool.grow(max(pool.blockSize, n*pool.NodeSize())); err != nil {
		return nil, err
	}
	if p := pool.list.PopArray(n); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("pool: allocate %d nodes: %w", n, ErrOutOfMemory)
}

// Deallocate returns a node obtained from Allocate.
// It does nothing once the pool is closed.
func (pool *Pool) Deallocate(node unsafe.Pointer) {
	if pool.closed {
		return
	}
	assertNode("Pool.Deallocate", pool.arena, node)
	pool.list.Push(node)
}

// DeallocateArray returns n nodes obtained from AllocateArray.
// It does nothing once the pool is closed.
func (pool *Pool) DeallocateArray(p unsafe.Pointer, n int) {
	if pool.closed {
		return
	}
	assertNode("Pool.DeallocateArray", pool.arena, p)
	pool.list.Insert(p, n*pool.NodeSize())
}

// Close stops the pool. An owned arena is closed and every node becomes
// invalid; a shared arena keeps the pool's regions until it is closed itself.
func (pool *Pool) Close() error {
	if pool.closed {
		return ErrClosed
	}
	pool.closed = true
	pool.logger.Debug("pool close", "node_size", pool.NodeSize(), "nodes", pool.total, "in_use", pool.InUse(), "own_arena", pool.ownArena)
	if !pool.ownArena {
		return nil
	}
	return pool.arena.Close()
}

func (pool *Pool) grow(size int) error {
	region, err := pool.arena.Allocate(size)
	if err != nil {
		pool.logger.Warn("pool grow failed", "bytes", size, "error", err)
		return fmt.Errorf("pool: grow %d bytes: %w", size, err)
	}
	pool.list.Insert(region, size)
	pool.total += size / pool.NodeSize()
	pool.logger.Debug("pool grow", "node_size", pool.NodeSize(), "bytes", size, "nodes", pool.total, "free", pool.list.Len())
	return nil
}
