package maze

import "fmt"

// Grid owns the rectangular cell array and its geometry. Every read and
// write of passage state goes through its bounds-checked accessors; the
// flattened index never leaks out.
type Grid struct {
	width  int // Number of columns
	height int // Number of rows
	cells  []Cell
}

// NewGrid initializes a fully walled grid of the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if min(width, height) < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps cell coordinates to their offset in the flat cells slice,
// row by row from the top-left corner.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// CellAt returns the passage state of the cell at (x, y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}

	return g.cells[g.index(x, y)], nil
}

// SetPassage opens the passage from cell (x, y) toward direction d.
// Only the near side is marked; keeping the far side of the shared wall
// in sync is the caller's job.
func (g *Grid) SetPassage(x, y int, d Direction) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}

	g.cells[g.index(x, y)] |= Cell(d)
	return nil
}
