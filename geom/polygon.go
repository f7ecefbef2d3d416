// SPDX-License-Identifier: MIT

package geom

import "math"

// Polygon is a simple polygon given as an ordered vertex list without a
// repeated closing vertex. Counter-clockwise order gives positive area.
type Polygon []Point

// Clone returns a copy of the vertex list.
func (pg Polygon) Clone() Polygon {
	out := make(Polygon, len(pg))
	copy(out, pg)
	return out
}

// Reverse flips the vertex order in place, negating the signed area.
func (pg Polygon) Reverse() {
	for i, j := 0, len(pg)-1; i < j; i, j = i+1, j-1 {
		pg[i], pg[j] = pg[j], pg[i]
	}
}

// Area returns the signed shoelace area: positive for counter-clockwise
// polygons, negative for clockwise. O(n).
func (pg Polygon) Area() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	var s float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		s += pg[i].Cross(pg[j])
	}
	return s / 2
}

// AbsArea returns |Area()|.
func (pg Polygon) AbsArea() float64 { return math.Abs(pg.Area()) }

// Perimeter returns the total edge length. O(n).
func (pg Polygon) Perimeter() float64 {
	n := len(pg)
	var s float64
	for i := 0; i < n; i++ {
		s += pg[i].Dist(pg[(i+1)%n])
	}
	return s
}

// Centroid returns the area centroid, or ErrDegenerate for polygons with
// fewer than 3 vertices or (near-)zero area. O(n).
func (pg Polygon) Centroid() (Point, error) {
	n := len(pg)
	if n < 3 {
		return Point{}, ErrDegenerate
	}
	a := pg.Area()
	if math.Abs(a) < Eps {
		return Point{}, ErrDegenerate
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := pg[i].Cross(pg[j])
		cx += (pg[i].X + pg[j].X) * w
		cy += (pg[i].Y + pg[j].Y) * w
	}
	return Point{cx / (6 * a), cy / (6 * a)}, nil
}

// SecondMoments returns the central second moments of area
//
//	mxx = ∫(x-cx)² dA,  myy = ∫(y-cy)² dA,  mxy = ∫(x-cx)(y-cy) dA
//
// about the centroid, signed with the polygon orientation. O(n).
func (pg Polygon) SecondMoments() (mxx, myy, mxy float64, err error) {
	n := len(pg)
	if n < 3 {
		return 0, 0, 0, ErrDegenerate
	}
	c, err := pg.Centroid()
	if err != nil {
		return 0, 0, 0, err
	}
	a := pg.Area()
	// Second moments about the origin via Green's theorem edge sums.
	var sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := pg[i].Cross(pg[j])
		sxx += (pg[i].X*pg[i].X + pg[i].X*pg[j].X + pg[j].X*pg[j].X) * w
		syy += (pg[i].Y*pg[i].Y + pg[i].Y*pg[j].Y + pg[j].Y*pg[j].Y) * w
		sxy += (pg[i].X*pg[j].Y + 2*pg[i].X*pg[i].Y + 2*pg[j].X*pg[j].Y + pg[j].X*pg[i].Y) * w
	}
	sxx /= 12
	syy /= 12
	sxy /= 24
	// Shift to central moments (parallel-axis theorem).
	mxx = sxx - a*c.X*c.X
	myy = syy - a*c.Y*c.Y
	mxy = sxy - a*c.X*c.Y
	return mxx, myy, mxy, nil
}

// BoundingBox returns the axis-aligned bounding box of the vertex list.
// The zero Rect is returned for an empty polygon.
func (pg Polygon) BoundingBox() Rect {
	if len(pg) == 0 {
		return Rect{}
	}
	r := Rect{Min: pg[0], Max: pg[0]}
	for _, p := range pg[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Contains reports whether p lies inside the polygon (even-odd rule).
// Points within tol of an edge count as inside; pass 0 for exact hits
// only. O(n).
func (pg Polygon) Contains(p Point, tol float64) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	if tol > 0 {
		for i := 0; i < n; i++ {
			if (Segment{pg[i], pg[(i+1)%n]}).DistToPoint(p) <= tol {
				return true
			}
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pg[i], pg[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := pi.X + (p.Y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ClipHalfPlane clips the polygon against the half-plane to the left of
// the directed line a→b (Sutherland–Hodgman). The result preserves the
// input orientation and may be empty. O(n).
func (pg Polygon) ClipHalfPlane(a, b Point) Polygon {
	n := len(pg)
	if n == 0 {
		return nil
	}
	dir := b.Sub(a)
	side := func(p Point) float64 { return dir.Cross(p.Sub(a)) }

	out := make(Polygon, 0, n+1)
	for i := 0; i < n; i++ {
		cur, nxt := pg[i], pg[(i+1)%n]
		sc, sn := side(cur), side(nxt)
		if sc >= -Eps {
			out = append(out, cur)
		}
		// Edge crosses the line: emit the intersection point.
		if (sc > Eps && sn < -Eps) || (sc < -Eps && sn > Eps) {
			t := sc / (sc - sn)
			out = append(out, cur.Add(nxt.Sub(cur).Scale(t)))
		}
	}
	return out
}
