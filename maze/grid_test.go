package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		grid, err := NewGrid(8, 5)
		assert.NoError(t, err)
		assert.Equal(t, 8, grid.Width())
		assert.Equal(t, 5, grid.Height())

		// Every cell starts fully walled
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				cell, err := grid.CellAt(x, y)
				assert.NoError(t, err)
				assert.Equal(t, Cell(0), cell)
			}
		}
	})

	t.Run("zero width", func(t *testing.T) {
		_, err := NewGrid(0, 5)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("zero height", func(t *testing.T) {
		_, err := NewGrid(5, 0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("negative dimensions", func(t *testing.T) {
		_, err := NewGrid(-3, -1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestGridInBounds(t *testing.T) {
	grid, err := NewGrid(4, 3)
	assert.NoError(t, err)

	tests := []struct {
		name string
		x    int
		y    int
		want bool
	}{
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 3, 2, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 4, 0, false},
		{"y at height", 0, 3, false},
		{"far outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.InBounds(tt.x, tt.y))
		})
	}
}

func TestGridCellAt(t *testing.T) {
	grid, err := NewGrid(4, 3)
	assert.NoError(t, err)

	t.Run("inside the grid", func(t *testing.T) {
		cell, err := grid.CellAt(3, 2)
		assert.NoError(t, err)
		assert.Equal(t, Cell(0), cell)
	})

	t.Run("outside the grid", func(t *testing.T) {
		for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
			_, err := grid.CellAt(pos[0], pos[1])
			assert.ErrorIs(t, err, ErrOutOfBounds)
		}
	})
}

func TestGridSetPassage(t *testing.T) {
	t.Run("sets a single bit", func(t *testing.T) {
		grid, err := NewGrid(2, 1)
		assert.NoError(t, err)

		assert.NoError(t, grid.SetPassage(0, 0, East))

		cell, err := grid.CellAt(0, 0)
		assert.NoError(t, err)
		assert.True(t, cell.HasPassage(East))
		assert.False(t, cell.HasPassage(North))
		assert.False(t, cell.HasPassage(South))
		assert.False(t, cell.HasPassage(West))
		assert.True(t, cell.Visited())
	})

	t.Run("marks the near side only", func(t *testing.T) {
		grid, err := NewGrid(2, 1)
		assert.NoError(t, err)

		assert.NoError(t, grid.SetPassage(0, 0, East))

		neighbor, err := grid.CellAt(1, 0)
		assert.NoError(t, err)
		assert.Equal(t, Cell(0), neighbor)
	})

	t.Run("bits accumulate", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		assert.NoError(t, grid.SetPassage(1, 1, North))
		assert.NoError(t, grid.SetPassage(1, 1, East))

		cell, err := grid.CellAt(1, 1)
		assert.NoError(t, err)
		assert.Equal(t, Cell(North|East), cell)
	})

	t.Run("outside the grid", func(t *testing.T) {
		grid, err := NewGrid(3, 3)
		assert.NoError(t, err)

		assert.ErrorIs(t, grid.SetPassage(3, 0, North), ErrOutOfBounds)
		assert.ErrorIs(t, grid.SetPassage(0, -1, South), ErrOutOfBounds)
	})
}
