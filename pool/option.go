// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package pool

import (
	"log/slog"
	"os"
)

// Option configures a Pool. Optional settings are discovered through the
// BlockSize, Sorted and Logger interfaces.
type Option interface {
	NodeSize() int
}

// BlockSize sets the number of bytes requested from the arena on growth.
// Defaults to the page size.
type BlockSize interface {
	BlockSize() int
}

// Sorted selects the Ordered free list instead of the Stack.
type Sorted interface {
	Sorted() bool
}

// ArenaOwner hands the arena over to the pool, which then closes it in Close.
// Without it the arena is treated as shared.
type ArenaOwner interface {
	OwnArena() bool
}

// Logger sets the logger for growth and close events.
type Logger interface {
	Logger() *slog.Logger
}

func getBlockSize(opt any) int {
	if o, ok := opt.(BlockSize); ok && o.BlockSize() != 0 {
		return o.BlockSize()
	}
	return os.Getpagesize()
}

func getSorted(opt any) bool {
	o, ok := opt.(Sorted)
	return ok && o.Sorted()
}

func getArenaOwner(opt any) bool {
	o, ok := opt.(ArenaOwner)
	return ok && o.OwnArena()
}

func getLogger(opt any) (logger *slog.Logger) {
	if o, ok := opt.(Logger); ok {
		logger = o.Logger()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return
}

// Config is a ready-made Option.
type Config struct {
	Node  int          // node size in bytes, rounded up to whole words
	Block int          // bytes per arena request, 0 for the page size
	Sort  bool         // keep free nodes sorted by address
	Own   bool         // close the arena together with the pool
	Log   *slog.Logger // nil discards
}

func (c Config) NodeSize() int        { return c.Node }
func (c Config) BlockSize() int       { return c.Block }
func (c Config) Sorted() bool         { return c.Sort }
func (c Config) OwnArena() bool       { return c.Own }
func (c Config) Logger() *slog.Logger { return c.Log }
