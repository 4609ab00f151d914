// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package link

import "unsafe"

// Greater reports whether a orders after b. It is the converse of Less.
func Greater(a, b unsafe.Pointer) bool {
	return Less(b, a)
}

// Compare returns -1, 0 or +1 following Less.
// It fits slices.SortFunc and slices.BinarySearchFunc.
func Compare(a, b unsafe.Pointer) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return +1
	}
	return 0
}
