package mem

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/dacapoday/freemem"
)

// TestArenaAllocate tests size rounding and alignment of regions
func TestArenaAllocate(t *testing.T) {
	var a Arena
	defer a.Close()

	for _, size := range []int{1, 7, 8, 100, 4096} {
		p, err := a.Allocate(size)
		if err != nil {
			t.Fatalf("Allocate(%d) failed: %v", size, err)
		}
		if !freemem.IsAligned(p, freemem.WordAlign) {
			t.Errorf("Allocate(%d) = %p, not word aligned", size, p)
		}
	}

	// sizes rounded up to whole words
	want := int64(freemem.Align(1, freemem.WordSize) + freemem.Align(7, freemem.WordSize) +
		8 + freemem.Align(100, freemem.WordSize) + 4096)
	if size := a.Size(); size != want {
		t.Errorf("Size() = %d, want %d", size, want)
	}
	if n := a.Len(); n != 5 {
		t.Errorf("Len() = %d, want 5", n)
	}
}

// TestArenaInvalidSize tests rejection of empty regions
func TestArenaInvalidSize(t *testing.T) {
	var a Arena
	for _, size := range []int{0, -1} {
		if _, err := a.Allocate(size); !errors.Is(err, freemem.ErrInvalidSize) {
			t.Errorf("Allocate(%d) err = %v, want ErrInvalidSize", size, err)
		}
	}
	if a.Len() != 0 {
		t.Error("failed allocation should not add a region")
	}
}

// TestArenaZeroed tests that regions start zeroed and are writable
func TestArenaZeroed(t *testing.T) {
	var a Arena
	defer a.Close()

	p, err := a.Allocate(64)
	if err != nil {
		t.Fatal(err)
	}
	b := unsafe.Slice((*byte)(p), 64)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d = %d, want 0", i, c)
		}
	}
	for i := range b {
		b[i] = byte(i)
	}
	if b[63] != 63 {
		t.Error("region not writable")
	}
}

// TestArenaOwns tests region membership
func TestArenaOwns(t *testing.T) {
	var a Arena
	defer a.Close()

	p, _ := a.Allocate(64)
	q, _ := a.Allocate(16)

	if !a.Owns(p) || !a.Owns(unsafe.Add(p, 63)) {
		t.Error("arena should own the first region")
	}
	if !a.Owns(q) || !a.Owns(unsafe.Add(q, 15)) {
		t.Error("arena should own the second region")
	}
	if a.Owns(nil) {
		t.Error("arena should not own nil")
	}

	var outside uintptr
	if a.Owns(unsafe.Pointer(&outside)) {
		t.Error("arena should not own foreign memory")
	}
}

// TestArenaClose tests that Close resets the arena and that it stays usable
func TestArenaClose(t *testing.T) {
	var a Arena
	p, _ := a.Allocate(32)

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if a.Size() != 0 || a.Len() != 0 {
		t.Errorf("after Close: Size=%d Len=%d", a.Size(), a.Len())
	}
	if a.Owns(p) {
		t.Error("closed arena should not own old regions")
	}

	if _, err := a.Allocate(32); err != nil {
		t.Fatalf("Allocate after Close failed: %v", err)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

// TestArenaRegions tests region iteration order and early stop
func TestArenaRegions(t *testing.T) {
	var a Arena
	defer a.Close()

	var want []unsafe.Pointer
	for _, size := range []int{8, 16, 24} {
		p, _ := a.Allocate(size)
		want = append(want, p)
	}

	var got []unsafe.Pointer
	var sizes []int
	for p, size := range a.Regions() {
		got = append(got, p)
		sizes = append(sizes, size)
	}
	if len(got) != 3 {
		t.Fatalf("got %d regions, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("region %d = %p, want %p", i, got[i], want[i])
		}
	}
	if sizes[0] != freemem.Align(8, freemem.WordSize) || sizes[2] != freemem.Align(24, freemem.WordSize) {
		t.Errorf("sizes = %v", sizes)
	}

	n := 0
	for range a.Regions() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early break visited %d regions", n)
	}
}

// TestArenaConcurrent tests concurrent allocations
func TestArenaConcurrent(t *testing.T) {
	var a Arena
	defer a.Close()

	done := make(chan unsafe.Pointer)
	for range 8 {
		go func() {
			p, err := a.Allocate(128)
			if err != nil {
				t.Error(err)
			}
			done <- p
		}()
	}
	seen := make(map[unsafe.Pointer]bool)
	for range 8 {
		p := <-done
		if seen[p] {
			t.Errorf("region %p handed out twice", p)
		}
		seen[p] = true
	}
	if a.Len() != 8 {
		t.Errorf("Len() = %d, want 8", a.Len())
	}
}
