// Package layout computes the drawing geometry of tiles and their paths in
// unit tile space (circumradius 1, y up).
package layout

import "math"

const sqrt3Over2 = 0.8660254037844386

// Vec2 is a point or vector in tile space.
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }
func (a Vec2) Lerp(b Vec2, t float64) Vec2 { return a.Scale(1 - t).Add(b.Scale(t)) }

// Normalize returns a unit vector in the direction of a, or a itself when it
// has zero length.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Rotate turns a counter-clockwise by angle radians.
func (a Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// Vertices are the hexagon corners, counter-clockwise from the east corner.
// Side k runs from Vertices[k] to Vertices[k+1].
var Vertices = [6]Vec2{
	{1, 0},
	{0.5, sqrt3Over2},
	{-0.5, sqrt3Over2},
	{-1, 0},
	{-0.5, -sqrt3Over2},
	{0.5, -sqrt3Over2},
}

// Normals are the outward unit normals of each side.
var Normals = [6]Vec2{
	{sqrt3Over2, 0.5},
	{0, 1},
	{-sqrt3Over2, 0.5},
	{-sqrt3Over2, -0.5},
	{0, -1},
	{sqrt3Over2, -0.5},
}

// anchorT is how far along a side its first connection point sits.
const anchorT = 0.3

// Anchors are the twelve connection points: two per side at 30% and 70%.
var Anchors = func() [12]Vec2 {
	var out [12]Vec2
	for side := 0; side < 6; side++ {
		a := Vertices[side]
		b := Vertices[(side+1)%6]
		out[2*side] = a.Lerp(b, anchorT)
		out[2*side+1] = a.Lerp(b, 1-anchorT)
	}
	return out
}()

// OrientationAngle is the rotation applied to a tile drawn with orientation o.
func OrientationAngle(o int) float64 {
	return math.Pi / 3 * float64(o)
}

// CellCenter returns the centre of cell (i, j) on a width x height board in
// tile units, with the board centred on the origin. spacing > 1 leaves gaps
// between tiles.
func CellCenter(i, j, width, height int, spacing float64) Vec2 {
	hw := float64(width-1) / 2
	hh := float64(height-1) / 2
	x := (float64(j) - hw) * 1.5
	y := ((hh-float64(i))*2 - (float64(j) - hw)) * sqrt3Over2
	return Vec2{x * spacing, y * spacing}
}

// BoardExtent returns the half-width and half-height, in tile units, of the
// box that holds every cell of the board.
func BoardExtent(width, height int, spacing float64) (halfW, halfH float64) {
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			c := CellCenter(i, j, width, height, spacing)
			halfW = math.Max(halfW, math.Abs(c.X)+1)
			halfH = math.Max(halfH, math.Abs(c.Y)+sqrt3Over2)
		}
	}
	return halfW, halfH
}
