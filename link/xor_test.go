package link

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// chain links blocks in order and returns them.
func chain(t *testing.T, n int) []unsafe.Pointer {
	t.Helper()
	blocks := newBlocks(t, n)
	SetLink(blocks[0], nil, nil)
	for i := 1; i < n; i++ {
		Insert(blocks[i], blocks[i-1], nil)
	}
	return blocks
}

func TestSetLinkCommutative(t *testing.T) {
	blocks := newBlocks(t, 3)

	SetLink(blocks[1], blocks[0], blocks[2])
	a := Read(blocks[1])
	SetLink(blocks[1], blocks[2], blocks[0])
	require.Equal(t, a, Read(blocks[1]))

	require.Equal(t, blocks[2], Other(blocks[1], blocks[0]))
	require.Equal(t, blocks[0], Other(blocks[1], blocks[2]))
}

func TestOtherAtBoundary(t *testing.T) {
	blocks := newBlocks(t, 2)

	SetLink(blocks[0], nil, blocks[1])
	require.Equal(t, blocks[1], Other(blocks[0], nil))
	require.Nil(t, Other(blocks[0], blocks[1]))

	SetLink(blocks[1], nil, nil)
	require.Nil(t, Other(blocks[1], nil))
}

func TestForwardBackward(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17} {
		blocks := chain(t, n)

		require.Equal(t, blocks, walk(blocks[0], nil))

		backward := walk(blocks[n-1], nil)
		slices.Reverse(backward)
		require.Equal(t, blocks, backward)
	}
}

func TestInsertMiddle(t *testing.T) {
	blocks := newBlocks(t, 5)
	a, b, c, d, e := blocks[0], blocks[1], blocks[2], blocks[3], blocks[4]

	SetLink(a, nil, e)
	SetLink(e, a, nil)
	Insert(c, a, e)
	Insert(b, a, c)
	Insert(d, c, e)

	require.Equal(t, blocks, walk(a, nil))
	require.Equal(t, []unsafe.Pointer{e, d, c, b, a}, walk(e, nil))
}

func TestUpdateIsolated(t *testing.T) {
	blocks := newBlocks(t, 4)
	p, node, q, r := blocks[0], blocks[1], blocks[2], blocks[3]

	SetLink(node, p, q)
	Update(node, q, r)

	require.Equal(t, p, Other(node, r))
	require.Equal(t, r, Other(node, p))

	Update(node, p, nil)
	require.Equal(t, r, Other(node, nil))
}

func TestRemove(t *testing.T) {
	blocks := chain(t, 4)

	// interior
	Remove(blocks[1], blocks[0], blocks[2])
	require.Equal(t, []unsafe.Pointer{blocks[0], blocks[2], blocks[3]}, walk(blocks[0], nil))

	// tail
	Remove(blocks[3], blocks[2], nil)
	require.Equal(t, []unsafe.Pointer{blocks[0], blocks[2]}, walk(blocks[0], nil))
	require.Equal(t, []unsafe.Pointer{blocks[2], blocks[0]}, walk(blocks[2], nil))

	// head
	Remove(blocks[0], nil, blocks[2])
	require.Equal(t, []unsafe.Pointer{blocks[2]}, walk(blocks[2], nil))
}

func TestInsertRemoveScenario(t *testing.T) {
	blocks := newBlocks(t, 3)
	a, b, c := blocks[0], blocks[1], blocks[2]
	require.True(t, Less(a, b) && Less(b, c))

	SetLink(b, nil, nil)
	Insert(a, nil, b)
	Insert(c, b, nil)
	require.Equal(t, []unsafe.Pointer{a, b, c}, walk(a, nil))

	Update(a, b, c)
	Update(c, b, a)
	require.Equal(t, []unsafe.Pointer{a, c}, walk(a, nil))
	require.Equal(t, []unsafe.Pointer{c, a}, walk(c, nil))
}

func TestAdvance(t *testing.T) {
	blocks := chain(t, 3)

	cur, prev := blocks[0], unsafe.Pointer(nil)
	Advance(&cur, &prev)
	require.Equal(t, blocks[1], cur)
	require.Equal(t, blocks[0], prev)

	Advance(&cur, &prev)
	require.Equal(t, blocks[2], cur)
	require.Equal(t, blocks[1], prev)

	Advance(&cur, &prev)
	require.Nil(t, cur)
	require.Equal(t, blocks[2], prev)
}

func TestCursor(t *testing.T) {
	blocks := chain(t, 4)

	c := Cursor{Cur: blocks[0]}
	var visited []unsafe.Pointer
	for ; c.Valid(); c.Next() {
		visited = append(visited, c.Cur)
	}
	require.Equal(t, blocks, visited)

	c.Back()
	require.Equal(t, blocks[3], c.Cur)
	require.Equal(t, blocks[2], c.Prev)
	require.Nil(t, c.Following())

	c.Back()
	require.Equal(t, blocks[2], c.Cur)
	require.Equal(t, blocks[1], c.Prev)
	require.Equal(t, blocks[3], c.Following())
}
