// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package link

import "unsafe"

const (
	// WordSize is the size of a link field, and the minimum size of a free block.
	WordSize = unsafe.Sizeof(uintptr(0))

	// WordAlign is the alignment every linked address must satisfy.
	WordAlign = unsafe.Alignof(uintptr(0))
)

// Token is the integer form of an address.
// Arithmetic that has no meaning on pointers (XOR) is done on tokens only.
type Token uintptr

// Sentinel is the token of the "no neighbor" address.
const Sentinel Token = 0

// TokenOf reinterprets p as a Token.
func TokenOf(p unsafe.Pointer) Token {
	return Token(uintptr(p))
}

// Pointer reinterprets the token as an address.
// Tokens decoded from link fields carry no provenance, so checkptr
// instrumentation is off here.
//
//go:nocheckptr
func (t Token) Pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(t))
}

// Xor returns t ^ o.
func (t Token) Xor(o Token) Token {
	return t ^ o
}

// Read returns the word stored at p.
func Read(p unsafe.Pointer) uintptr {
	assertAddress("link.Read", p)
	return *(*uintptr)(p)
}

// Write stores v as the word at p.
func Write(p unsafe.Pointer, v uintptr) {
	assertAddress("link.Write", p)
	*(*uintptr)(p) = v
}

func readToken(p unsafe.Pointer) Token {
	return Token(Read(p))
}

func writeToken(p unsafe.Pointer, t Token) {
	Write(p, uintptr(t))
}
