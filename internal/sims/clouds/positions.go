package clouds

// Position is one active cloud cell in grid coordinates.
type Position struct {
	X, Y, Z int32
}

// CloudPositions returns the coordinates of every cell whose cloud state is
// set, in the flatten order fixed at construction. It reads the coordinate
// grids, never mutates state, and returns an empty slice when no cell is set;
// repeated calls without an intervening Step or InitElliptic return equal
// results.
func (w *World) CloudPositions() []Position {
	positions := make([]Position, 0)
	for i, c := range w.cld {
		if c == 0 {
			continue
		}
		positions = append(positions, Position{
			X: w.coords.X[i],
			Y: w.coords.Y[i],
			Z: w.coords.Z[i],
		})
	}
	return positions
}
