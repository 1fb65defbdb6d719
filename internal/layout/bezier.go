package layout

import "math"

const (
	distThreshold = 1e-3
	riskThreshold = 1e-4
	// maxDepth bounds subdivision for degenerate control polygons.
	maxDepth = 12
	// pull is how far curve handles reach inward from a connection point.
	pull = 0.3
)

// CurvePoint is a tessellated point along a curve; Alpha runs from 0 at the
// start to 1 at the end.
type CurvePoint struct {
	Pos   Vec2
	Alpha float64
}

// Bezier tessellates the cubic curve p0..p3 by adaptive subdivision. A piece
// is emitted as a straight segment once both handles lie within
// riskThreshold of its chord.
func Bezier(p0, p1, p2, p3 Vec2) []CurvePoint {
	var out []CurvePoint
	subdivide(&out, p0, p1, p2, p3, 0, 1, true, 0)
	return out
}

func subdivide(out *[]CurvePoint, p0, p1, p2, p3 Vec2, a0, a1 float64, includeLast bool, depth int) {
	dir := p3.Sub(p0).Normalize()
	ortho := Vec2{-dir.Y, dir.X}
	risk := math.Abs(ortho.Dot(p1.Sub(p0))) + math.Abs(ortho.Dot(p2.Sub(p3)))
	if p3.Sub(p1).Len() < distThreshold {
		risk = 0
	}
	if risk <= riskThreshold || depth >= maxDepth {
		*out = append(*out, CurvePoint{p0, a0})
		if includeLast {
			*out = append(*out, CurvePoint{p3, a1})
		}
		return
	}
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	am := (a0 + a1) / 2
	subdivide(out, p0, p01, p012, mid, a0, am, false, depth+1)
	subdivide(out, mid, p123, p23, p3, am, a1, true, depth+1)
}

// PathCurve returns the curve joining connection points a and b in the
// tile's local frame.
func PathCurve(a, b int) []CurvePoint {
	p0 := Anchors[a]
	p3 := Anchors[b]
	p1 := p0.Sub(Normals[a/2].Scale(pull))
	p2 := p3.Sub(Normals[b/2].Scale(pull))
	return Bezier(p0, p1, p2, p3)
}

// CurveCache holds the tessellated curve for every unordered pair of
// connection points, built once.
type CurveCache struct {
	curves [12][12][]CurvePoint
}

// NewCurveCache tessellates all 66 pairs.
func NewCurveCache() *CurveCache {
	cc := &CurveCache{}
	for a := 0; a < 12; a++ {
		for b := a + 1; b < 12; b++ {
			cc.curves[a][b] = PathCurve(a, b)
		}
	}
	return cc
}

// Curve returns the curve from a to b; the pair is unordered.
func (cc *CurveCache) Curve(a, b int) []CurvePoint {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b >= 12 {
		return nil
	}
	return cc.curves[a][b]
}
