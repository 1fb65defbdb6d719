package tangle

// Direction is one of the six sides of a hexagonal tile, counter-clockwise
// starting from the north-east side.
type Direction int

const (
	DirNorthEast Direction = iota
	DirNorth
	DirNorthWest
	DirSouthWest
	DirSouth
	DirSouthEast
	dirCount
)

// NumDirections is the number of sides on a tile.
const NumDirections = int(dirCount)

func (d Direction) String() string {
	switch d {
	case DirNorthEast:
		return "north_east"
	case DirNorth:
		return "north"
	case DirNorthWest:
		return "north_west"
	case DirSouthWest:
		return "south_west"
	case DirSouth:
		return "south"
	case DirSouthEast:
		return "south_east"
	default:
		return "unknown"
	}
}

// Opposite returns the side facing d across a tile boundary.
func (d Direction) Opposite() Direction {
	return Direction((int(d) + NumDirections/2) % NumDirections)
}

// Position is one of the twelve connection points on a tile boundary. Each
// side carries two points; point 2*d and 2*d+1 belong to side d.
type Position int

// NumPositions is the number of connection points on a tile.
const NumPositions = 2 * NumDirections

// Side returns the side of the tile the point sits on.
func (p Position) Side() Direction {
	return Direction(int(p) / 2)
}

// Parity returns which of the two points on its side p is (0 or 1).
func (p Position) Parity() int {
	return int(p) % 2
}

// Valid reports whether p is one of the twelve connection points.
func (p Position) Valid() bool {
	return p >= 0 && int(p) < NumPositions
}

// Facing returns the point directly across the boundary from p: the side
// flips by three and the point within the side flips.
func (p Position) Facing() Position {
	return Position(int(p.Side().Opposite())*2 + (int(p)+1)%2)
}

// Rotate shifts p by steps whole sides, modulo the twelve points.
func (p Position) Rotate(steps int) Position {
	n := (int(p) + 2*steps) % NumPositions
	if n < 0 {
		n += NumPositions
	}
	return Position(n)
}
