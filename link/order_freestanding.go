//go:build freestanding

package link

import "unsafe"

// Hosted reports whether Less orders by memory location.
const Hosted = false

// Less reports whether a orders before b.
//
// Built with -tags freestanding the order compares tokens. It is a consistent
// strict total order, which is all a sorted list needs, but it carries no
// meaning about where blocks of unrelated allocations lie.
func Less(a, b unsafe.Pointer) bool {
	return TokenOf(a) < TokenOf(b)
}
