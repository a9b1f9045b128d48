package maze

// Cell is the passage state of a single grid cell: a four-bit set with
// one bit per compass direction. A set bit means the passage toward that
// neighbor is open. The zero value is fully walled.
type Cell uint8

// HasPassage returns true if the passage toward direction d is open.
func (c Cell) HasPassage(d Direction) bool {
	return c&Cell(d) != 0
}

// Visited reports whether any passage has been carved from or into the
// cell. The carver relies on the zero state as its only unvisited
// marker, so a carved cell is exactly a visited one.
func (c Cell) Visited() bool {
	return c != 0
}
