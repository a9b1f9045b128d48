package maze

// Direction is one compass direction encoded as a bit flag, so the four
// flags combine into a Cell's passage set.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Directions lists the four compass directions in their canonical order.
// The carver copies this list before shuffling; it is never mutated.
var Directions = [4]Direction{North, South, East, West}

// Delta returns the coordinate offset of the neighboring cell in
// direction d, with y growing downward: North is (0, -1), South (0, 1),
// East (1, 0) and West (-1, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing back at d: North and South
// swap, East and West swap. Carving marks a passage on both cells that
// share it, once per side, using this pairing.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// String returns the direction name for logs and debug output.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}
