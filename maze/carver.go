package maze

import (
	"fmt"
	"io"
	"log"
	"math/rand"
)

// CarveHandler is called each time the carver opens a passage, after both
// sides of the shared wall are marked and before the carver recurses into
// the neighbor. (x, y) is the cell carved from and d the direction carved.
type CarveHandler func(x, y int, d Direction)

type CarverOption func(*Carver)

// Carver carves a spanning tree into a grid with recursive backtracking.
// It owns its seeded random stream, so concurrent or repeated runs with
// different seeds cannot interfere through shared generator state.
// Nothing survives a run besides the grid mutations.
type Carver struct {
	grid    *Grid        // Grid the carver mutates.
	rng     *rand.Rand   // Seeded random stream driving the direction shuffles.
	startX  int          // Column of the cell carving starts from.
	startY  int          // Row of the cell carving starts from.
	carved  int          // Passages opened during the current run.
	onCarve CarveHandler // Callback function invoked on every opened passage.
	logger  *log.Logger  // Logger.
}

// NewCarver initializes a carver over the given grid with a deterministic
// random stream derived from seed. The same grid dimensions and seed
// always reproduce the same maze.
func NewCarver(grid *Grid, seed int64, options ...CarverOption) (*Carver, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}

	c := &Carver{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}

	// Run optional configurations
	for _, opt := range options {
		opt(c)
	}

	if c.logger == nil {
		// Discard logging if no logger is set
		c.logger = log.New(io.Discard, "", 0)
	}

	return c, nil
}

// Run carves the maze from the configured start cell, the top-left corner
// unless CarverWithStart says otherwise. When Run returns, the passage
// graph is a spanning tree: every cell is reachable from every other
// through exactly one path.
func (c *Carver) Run() error {
	if !c.grid.InBounds(c.startX, c.startY) {
		return fmt.Errorf("%w: start (%d, %d)", ErrOutOfBounds, c.startX, c.startY)
	}

	c.carved = 0
	c.logger.Printf("carving %dx%d grid from (%d, %d)", c.grid.Width(), c.grid.Height(), c.startX, c.startY)
	c.carveFrom(c.startX, c.startY)
	c.logger.Printf("opened %d passages", c.carved)

	return nil
}

// carveFrom opens passages into unvisited neighbors of (x, y) in a
// shuffled direction order, recursing into each as soon as it is carved.
// Returning unwinds one backtracking step; the call stack is the only
// backtracking state, so recursion depth is bounded by the cell count.
func (c *Carver) carveFrom(x, y int) {
	directions := c.shuffledDirections()

	for _, d := range directions {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		if !c.grid.InBounds(nx, ny) {
			continue
		}

		// A cell with any passage bit set has been visited and is
		// never entered twice; the grid doubles as the visited set.
		neighbor, _ := c.grid.CellAt(nx, ny)
		if neighbor.Visited() {
			continue
		}

		_ = c.grid.SetPassage(x, y, d)
		_ = c.grid.SetPassage(nx, ny, d.Opposite())
		c.carved++

		if c.onCarve != nil {
			c.onCarve(x, y, d)
		}
		c.carveFrom(nx, ny)
	}
}

// shuffledDirections returns the four directions in an order drawn from
// the carver's random stream: an in-place Fisher-Yates pass drawing one
// index for each of the first three slots.
func (c *Carver) shuffledDirections() [4]Direction {
	directions := Directions
	for i := 0; i < 3; i++ {
		r := i + c.rng.Intn(4-i)
		directions[i], directions[r] = directions[r], directions[i]
	}
	return directions
}

// CarverWithStart sets the cell carving starts from
func CarverWithStart(x, y int) CarverOption {
	return func(c *Carver) {
		c.startX = x
		c.startY = y
	}
}

// CarverWithCarveHandler sets a callback function invoked on every opened passage
func CarverWithCarveHandler(f CarveHandler) CarverOption {
	return func(c *Carver) {
		c.onCarve = f
	}
}

// CarverWithLogger sets the logger
func CarverWithLogger(l *log.Logger) CarverOption {
	return func(c *Carver) {
		c.logger = l
	}
}
