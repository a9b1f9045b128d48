package maze

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the ASCII diagram of a grid to w, followed by a metadata
// line reporting the dimensions and the seed that carved it.
//
// The first line is the top border: a space and 2*width-1 underscores.
// Each grid row renders as a leading "|" and two glyphs per cell: the
// cell's floor (a space when its South passage is open, an underscore
// otherwise), then its East wall ("|" when closed). An open East passage
// takes the floor glyph of whichever side has an open South passage, so
// a gap in the wall is not visually closed by the neighbor's floor.
func Render(w io.Writer, g *Grid, seed int64) error {
	if g == nil {
		return ErrNilGrid
	}

	var b strings.Builder

	// Top boundary
	b.WriteString(" " + strings.Repeat("_", 2*g.Width()-1) + "\n")

	for y := 0; y < g.Height(); y++ {
		b.WriteString("|")
		for x := 0; x < g.Width(); x++ {
			cell, _ := g.CellAt(x, y)

			if cell.HasPassage(South) {
				b.WriteString(" ")
			} else {
				b.WriteString("_")
			}

			if cell.HasPassage(East) {
				east, _ := g.CellAt(x+1, y)
				if (cell | east).HasPassage(South) {
					b.WriteString(" ")
				} else {
					b.WriteString("_")
				}
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")
	}

	// Maze metadata
	fmt.Fprintf(&b, "width: %d, height: %d, seed: %d\n", g.Width(), g.Height(), seed)

	_, err := io.WriteString(w, b.String())
	return err
}

// Inspect dumps the raw cell values of a grid to w, one row per line with
// a blank line after the last. Used mainly for debugging and testing.
func Inspect(w io.Writer, g *Grid) error {
	if g == nil {
		return ErrNilGrid
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell, _ := g.CellAt(x, y)
			fmt.Fprintf(&b, "%d ", cell)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
