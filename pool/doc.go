// Package pool provides intrusive free lists of fixed-size nodes and a node
// pool that carves them out of a freemem.Arena.
//
// # Free Lists
//
// Two FreeList implementations store their links inside the free nodes:
//
//   - Stack: unordered, singly linked. Push and Pop are O(1). Array requests
//     scan for a run of address-adjacent nodes.
//   - Ordered: sorted by address, XOR linked, one link word per node.
//     Push is O(n) in the worst case (a cursor cache makes ascending
//     deallocation O(1)), Pop returns the lowest node, and adjacent nodes
//     coalesce naturally into runs for array requests.
//
// # Pool
//
//	var arena mem.Arena
//	defer arena.Close()
//
//	p, err := pool.New(&arena, pool.Config{Node: 32})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	node, err := p.Allocate()
//	...
//	p.Deallocate(node)
//
// Several pools may share one arena. A pool closes the arena only when
// created with Config.Own (or an Option implementing ArenaOwner).
//
// # Thread Safety
//
// Free lists and pools are not goroutine-safe. Callers must synchronize
// access externally; a list must not be read while another goroutine is in
// the middle of Push, Pop or Insert on it.
package pool
