package core

// Size describes the dimensions of a simulation volume.
type Size struct {
	W int // x extent (width)
	D int // y extent (depth)
	H int // z extent (height)
}

// Volume returns the total cell count.
func (s Size) Volume() int { return s.W * s.D * s.H }

// Index returns the linear slice index for coordinates (x, y, z). The x-major
// flatten order is fixed here and shared by seeding, stepping, extraction and
// export.
func (s Size) Index(x, y, z int) int { return (x*s.D+y)*s.H + z }

// Wrap applies toroidal wrapping to the provided coordinates.
func (s Size) Wrap(x, y, z int) (int, int, int) {
	x = (x%s.W + s.W) % s.W
	y = (y%s.D + s.D) % s.D
	z = (z%s.H + s.H) % s.H
	return x, y, z
}

// Coords holds the per-cell integer coordinates of a volume in flatten order.
// They are computed once at construction and read both for distance fields and
// position extraction.
type Coords struct {
	X, Y, Z []int32
}

// NewCoords precomputes the coordinate grids for the given size.
func NewCoords(size Size) Coords {
	total := size.Volume()
	c := Coords{
		X: make([]int32, total),
		Y: make([]int32, total),
		Z: make([]int32, total),
	}
	idx := 0
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.D; y++ {
			for z := 0; z < size.H; z++ {
				c.X[idx] = int32(x)
				c.Y[idx] = int32(y)
				c.Z[idx] = int32(z)
				idx++
			}
		}
	}
	return c
}
