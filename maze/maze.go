/*
Package maze generates perfect mazes over rectangular grids using
recursive backtracking.

A Grid holds one four-bit passage set per cell. A Carver walks the grid
depth first, driven by a seeded random stream, opening passages into
unvisited neighbors until every cell is connected; the resulting passage
graph is a spanning tree, so exactly one path joins any two cells.
Render projects a carved grid onto the classic underscore-and-pipe ASCII
diagram.

Generation is deterministic: the same width, height and seed always
produce the same maze and the same rendering.
*/
package maze

import "strings"

// BacktrackerMaze is a carved maze: a grid whose passage graph forms a
// spanning tree, together with the seed that produced it. The grid is
// read-only once New returns.
type BacktrackerMaze struct {
	grid *Grid
	seed int64
}

// New generates a maze of the given dimensions from the seed. Carving
// starts at the top-left corner unless a CarverWithStart option says
// otherwise; remaining options are forwarded to the carver untouched.
func New(width, height int, seed int64, options ...CarverOption) (*BacktrackerMaze, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	carver, err := NewCarver(grid, seed, options...)
	if err != nil {
		return nil, err
	}

	if err := carver.Run(); err != nil {
		return nil, err
	}

	return &BacktrackerMaze{
		grid: grid,
		seed: seed,
	}, nil
}

// Width returns the number of columns.
func (m *BacktrackerMaze) Width() int {
	return m.grid.Width()
}

// Height returns the number of rows.
func (m *BacktrackerMaze) Height() int {
	return m.grid.Height()
}

// Seed returns the seed the maze was carved with.
func (m *BacktrackerMaze) Seed() int64 {
	return m.seed
}

// CellAt returns the passage state of the cell at (x, y).
func (m *BacktrackerMaze) CellAt(x, y int) (Cell, error) {
	return m.grid.CellAt(x, y)
}

// HasPassage reports whether the cell at (x, y) has an open passage
// toward direction d.
func (m *BacktrackerMaze) HasPassage(x, y int, d Direction) (bool, error) {
	cell, err := m.grid.CellAt(x, y)
	if err != nil {
		return false, err
	}

	return cell.HasPassage(d), nil
}

// String provides the textual representation of the maze.
func (m *BacktrackerMaze) String() string {
	var b strings.Builder
	_ = Render(&b, m.grid, m.seed)
	return b.String()
}

// Dump returns the raw cell values of the maze, the debugging
// counterpart of String.
func (m *BacktrackerMaze) Dump() string {
	var b strings.Builder
	_ = Inspect(&b, m.grid)
	return b.String()
}
