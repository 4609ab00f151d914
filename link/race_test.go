//go:build race

package link

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// Link fields decoded under checkptr must yield usable heap addresses.
func TestTokenPointerHeap(t *testing.T) {
	blocks := chain(t, 8)
	require.Equal(t, blocks, walk(blocks[0], nil))

	var head unsafe.Pointer
	for _, p := range newBlocks(t, 4) {
		Push(&head, p)
	}
	for Pop(&head) != nil {
	}
	require.Equal(t, Token(1), TokenOf(Token(1).Pointer()))
}
