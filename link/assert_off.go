//go:build !debug

package link

import "unsafe"

// assertAddress is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertAddress(string, unsafe.Pointer) {}

// assertDistinct is a no-op in production.
// Enable with -tags debug for runtime checks.
func assertDistinct(string, unsafe.Pointer, unsafe.Pointer, unsafe.Pointer) {}
