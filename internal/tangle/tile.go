package tangle

import (
	"errors"
	"math/rand"
)

// ErrTileLocked is returned when rotating a tile that already has a taken path.
var ErrTileLocked = errors.New("tangle: tile is locked")

const unmapped = -1

// Path is one wired segment inside a tile, stored in the tile's local frame
// with Begin < End.
type Path struct {
	Begin Position
	End   Position
	Taken bool
}

// Tile is a hexagonal tile whose twelve connection points are wired into
// paths. The wiring is fixed in the tile's local frame; the orientation maps
// it onto the board.
type Tile struct {
	i, j        int
	orientation Direction
	adjacent    [NumPositions]Position
	pathIndex   [NumPositions]int
	paths       []Path
}

// NewTile returns an unplaced tile with no paths.
func NewTile() *Tile {
	t := &Tile{}
	t.ClearPaths()
	return t
}

// I returns the board row the tile was placed at.
func (t *Tile) I() int { return t.i }

// J returns the board column the tile was placed at.
func (t *Tile) J() int { return t.j }

func (t *Tile) setCoord(i, j int) {
	t.i = i
	t.j = j
}

// Orientation returns the current rotation state.
func (t *Tile) Orientation() Direction {
	return t.orientation
}

// SetOrientation forces the rotation state. It does not check CanRotate.
func (t *Tile) SetOrientation(o Direction) {
	t.orientation = Direction(((int(o) % NumDirections) + NumDirections) % NumDirections)
}

// ToLocal maps a board-frame point into the tile's wiring frame.
func (t *Tile) ToLocal(p Position) Position {
	return p.Rotate(NumDirections - int(t.orientation))
}

// ToGlobal maps a wiring-frame point onto the board frame.
func (t *Tile) ToGlobal(p Position) Position {
	return p.Rotate(int(t.orientation))
}

// AdjacentPosition returns the point on this tile that faces fromPos, where
// fromPos is a board-frame point on the boundary of the tile we come from.
func (t *Tile) AdjacentPosition(fromPos Position) Position {
	return fromPos.Facing()
}

// Destination returns where a path entering this tile opposite fromPos
// leaves it, in board frame.
func (t *Tile) Destination(fromPos Position) Position {
	src := t.ToLocal(t.AdjacentPosition(fromPos))
	return t.ToGlobal(t.adjacent[src])
}

// PathAt returns the path entered from fromPos, or nil if that point is not
// wired.
func (t *Tile) PathAt(fromPos Position) *Path {
	if !fromPos.Valid() {
		return nil
	}
	src := t.ToLocal(t.AdjacentPosition(fromPos))
	idx := t.pathIndex[src]
	if idx == unmapped {
		return nil
	}
	return &t.paths[idx]
}

// Paths returns the tile's wiring in generation order. The slice is shared
// with the tile.
func (t *Tile) Paths() []Path {
	return t.paths
}

// ClearPaths removes all wiring.
func (t *Tile) ClearPaths() {
	for k := range t.adjacent {
		t.adjacent[k] = Position(NumPositions)
		t.pathIndex[k] = unmapped
	}
	t.paths = t.paths[:0]
}

// AddPath wires p0 to p1 in the local frame.
func (t *Tile) AddPath(p0, p1 Position) {
	if p0 > p1 {
		p0, p1 = p1, p0
	}
	t.adjacent[p0] = p1
	t.adjacent[p1] = p0
	t.pathIndex[p0] = len(t.paths)
	t.pathIndex[p1] = len(t.paths)
	t.paths = append(t.paths, Path{Begin: p0, End: p1})
}

// GenerateRandomPaths replaces the wiring with a random perfect matching of
// the twelve points, drawn by shuffling and pairing neighbours.
func (t *Tile) GenerateRandomPaths(rng *rand.Rand) {
	t.ClearPaths()
	var avail [NumPositions]Position
	for k := range avail {
		avail[k] = Position(k)
	}
	rng.Shuffle(len(avail), func(a, b int) { avail[a], avail[b] = avail[b], avail[a] })
	for k := 0; k+1 < NumPositions; k += 2 {
		t.AddPath(avail[k], avail[k+1])
	}
}

// CanRotate reports whether none of the tile's paths has been taken.
func (t *Tile) CanRotate() bool {
	for _, p := range t.paths {
		if p.Taken {
			return false
		}
	}
	return true
}

// IsPathTaken reports whether the path entered from fromPos is used. An
// unwired point reports false.
func (t *Tile) IsPathTaken(fromPos Position) bool {
	p := t.PathAt(fromPos)
	if p == nil {
		return false
	}
	return p.Taken
}

// RotateLeft advances the orientation by one side.
func (t *Tile) RotateLeft() error {
	if !t.CanRotate() {
		return ErrTileLocked
	}
	t.orientation = Direction((int(t.orientation) + 1) % NumDirections)
	return nil
}

// RotateRight moves the orientation back by one side.
func (t *Tile) RotateRight() error {
	if !t.CanRotate() {
		return ErrTileLocked
	}
	t.orientation = Direction((int(t.orientation) + NumDirections - 1) % NumDirections)
	return nil
}

// Traverse consumes the path entered from fromPos and returns the exit point
// in board frame. If nothing is wired there, fromPos is returned unchanged
// and nothing is marked.
func (t *Tile) Traverse(fromPos Position) Position {
	p := t.PathAt(fromPos)
	if p == nil {
		return fromPos
	}
	p.Taken = true
	return t.Destination(fromPos)
}
