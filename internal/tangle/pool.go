package tangle

import "errors"

// ErrPoolExhausted is returned when every tile in a pool has been handed out.
var ErrPoolExhausted = errors.New("tangle: tile pool exhausted")

// TilePool is a fixed-capacity arena of tiles with a forward-only cursor.
// Tiles handed out stay valid until Reset.
type TilePool struct {
	tiles []Tile
	next  int
}

// NewTilePool allocates room for capacity tiles.
func NewTilePool(capacity int) *TilePool {
	if capacity < 0 {
		capacity = 0
	}
	return &TilePool{tiles: make([]Tile, capacity)}
}

// Alloc hands out the next tile with its wiring cleared and orientation reset.
func (tp *TilePool) Alloc() (*Tile, error) {
	if tp.next >= len(tp.tiles) {
		return nil, ErrPoolExhausted
	}
	t := &tp.tiles[tp.next]
	tp.next++
	t.ClearPaths()
	t.orientation = DirNorthEast
	t.setCoord(0, 0)
	return t, nil
}

// Len returns how many tiles have been handed out.
func (tp *TilePool) Len() int { return tp.next }

// Cap returns the pool capacity.
func (tp *TilePool) Cap() int { return len(tp.tiles) }

// Reset rewinds the cursor so the tiles can be handed out again for a new game.
func (tp *TilePool) Reset() {
	tp.next = 0
}
