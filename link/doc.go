// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package link provides the primitives for intrusive free lists: the link
// metadata of a free block is stored in the block itself, so tracking free
// memory needs no storage besides the memory being tracked.
//
// The package offers four groups of functions:
//
//   - Address codec: Read and Write of one machine word at an aligned address,
//     and the Token bit-reinterpretation between an address and an integer.
//   - Singly-linked lists: Next, SetNext and the LIFO helpers Push and Pop.
//   - XOR-linked lists: Other, SetLink, Update, Advance, Insert and Remove.
//     Each node stores prev XOR next in a single word. Decoding a neighbor
//     requires knowing the other one, so traversal state is a pair of
//     pointers (see Cursor).
//   - Ordering: Less, Greater and Compare, a strict total order over addresses.
//
// Memory handed to this package must not contain Go pointers and must be kept
// reachable by its owner (for example a mem.Arena) while it is linked. The
// package never allocates or frees memory.
//
// Token.Pointer is the only place an integer becomes a pointer. It is marked
// //go:nocheckptr so that -race builds, which enable checkptr, accept
// addresses decoded from link fields.
//
// # Contracts
//
// Every address passed to the codec must be non-nil and aligned to
// unsafe.Alignof(uintptr(0)). Violations are caller bugs: they panic when
// built with -tags debug and are undefined behavior otherwise.
//
// # Thread Safety
//
// Nothing here synchronizes. Insert and Remove perform several single-word
// writes and the list is inconsistent between them. Callers sharing a list
// across goroutines must hold a lock around every operation on it.
package link
