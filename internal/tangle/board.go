package tangle

// directionOffsets maps each side to the (di, dj) step to the neighbouring
// cell on the axial grid.
var directionOffsets = [NumDirections][2]int{
	DirNorthEast: {-1, +1},
	DirNorth:     {-1, 0},
	DirNorthWest: {0, -1},
	DirSouthWest: {+1, -1},
	DirSouth:     {+1, 0},
	DirSouthEast: {0, +1},
}

// Board is a width x height grid of tile slots. Row i, column j.
type Board struct {
	width  int
	height int
	grid   []*Tile
}

// NewBoard returns an empty board.
func NewBoard(width, height int) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Board{
		width:  width,
		height: height,
		grid:   make([]*Tile, width*height),
	}
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }

// IsOnGrid reports whether (i, j) addresses a slot.
func (b *Board) IsOnGrid(i, j int) bool {
	return 0 <= i && i < b.height && 0 <= j && j < b.width
}

// TileAt returns the tile at (i, j), or nil when off-grid or empty.
func (b *Board) TileAt(i, j int) *Tile {
	if !b.IsOnGrid(i, j) {
		return nil
	}
	return b.grid[i*b.width+j]
}

// Neighbor returns the coordinates one step from (i, j) towards dir.
func Neighbor(dir Direction, i, j int) (int, int) {
	if dir < 0 || int(dir) >= NumDirections {
		return i, j
	}
	off := directionOffsets[dir]
	return i + off[0], j + off[1]
}

// TileInDirection returns the neighbour of (i, j) towards dir.
func (b *Board) TileInDirection(dir Direction, i, j int) *Tile {
	ni, nj := Neighbor(dir, i, j)
	return b.TileAt(ni, nj)
}

// TileInAdjacentPosition returns the neighbour of (i, j) on the side pos
// belongs to.
func (b *Board) TileInAdjacentPosition(pos Position, i, j int) *Tile {
	return b.TileInDirection(pos.Side(), i, j)
}

// PlaceTile puts t into slot (i, j) and stamps its coordinates. It returns
// false and changes nothing when (i, j) is off-grid.
func (b *Board) PlaceTile(t *Tile, i, j int) bool {
	if !b.IsOnGrid(i, j) {
		return false
	}
	b.grid[i*b.width+j] = t
	if t != nil {
		t.setCoord(i, j)
	}
	return true
}

// Clear empties every slot.
func (b *Board) Clear() {
	for k := range b.grid {
		b.grid[k] = nil
	}
}

// Each calls fn for every occupied slot in row-major order.
func (b *Board) Each(fn func(i, j int, t *Tile)) {
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			if t := b.grid[i*b.width+j]; t != nil {
				fn(i, j, t)
			}
		}
	}
}

// Count returns the number of occupied slots.
func (b *Board) Count() int {
	n := 0
	for _, t := range b.grid {
		if t != nil {
			n++
		}
	}
	return n
}

// InHexMask reports whether (i, j) lies inside the hexagonal play area cut
// from a width x height grid by trimming two opposite corners.
func InHexMask(i, j, width, height, cut int) bool {
	if i+j <= cut {
		return false
	}
	if width+height-i-j-2 <= cut {
		return false
	}
	return true
}
