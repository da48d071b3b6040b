package core

import "testing"

func TestIndexFlattenOrder(t *testing.T) {
	size := Size{W: 3, D: 4, H: 5}
	next := 0
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.D; y++ {
			for z := 0; z < size.H; z++ {
				if got := size.Index(x, y, z); got != next {
					t.Fatalf("Index(%d,%d,%d) = %d, want %d", x, y, z, got, next)
				}
				next++
			}
		}
	}
	if next != size.Volume() {
		t.Fatalf("volume = %d, want %d", size.Volume(), next)
	}
}

func TestWrap(t *testing.T) {
	size := Size{W: 4, D: 5, H: 6}
	cases := []struct {
		in, want [3]int
	}{
		{[3]int{0, 0, 0}, [3]int{0, 0, 0}},
		{[3]int{-1, -1, -1}, [3]int{3, 4, 5}},
		{[3]int{4, 5, 6}, [3]int{0, 0, 0}},
		{[3]int{-2, 7, 13}, [3]int{2, 2, 1}},
		{[3]int{9, -6, -13}, [3]int{1, 4, 5}},
	}
	for _, c := range cases {
		x, y, z := size.Wrap(c.in[0], c.in[1], c.in[2])
		if [3]int{x, y, z} != c.want {
			t.Fatalf("Wrap(%v) = (%d,%d,%d), want %v", c.in, x, y, z, c.want)
		}
	}
}

func TestNewCoordsMatchesIndices(t *testing.T) {
	size := Size{W: 3, D: 2, H: 4}
	coords := NewCoords(size)
	if len(coords.X) != size.Volume() {
		t.Fatalf("coordinate grid length = %d, want %d", len(coords.X), size.Volume())
	}
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.D; y++ {
			for z := 0; z < size.H; z++ {
				idx := size.Index(x, y, z)
				if coords.X[idx] != int32(x) || coords.Y[idx] != int32(y) || coords.Z[idx] != int32(z) {
					t.Fatalf("coords at %d = (%d,%d,%d), want (%d,%d,%d)",
						idx, coords.X[idx], coords.Y[idx], coords.Z[idx], x, y, z)
				}
			}
		}
	}
}
