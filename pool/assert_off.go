//go:build !debug

package pool

import (
	"unsafe"

	"github.com/dacapoday/freemem"
)

// assertNode is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertNode(string, freemem.Arena, unsafe.Pointer) {}

// assertRegion is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertRegion(string, int, int) {}
