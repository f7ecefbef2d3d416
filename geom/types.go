// SPDX-License-Identifier: MIT

// Package geom: core types and sentinel errors for 2D geometry.
package geom

import (
	"errors"
	"math"
)

// Eps is the default geometric tolerance used by predicates in this
// package when no explicit tolerance is supplied.
const Eps = 1e-12

// ErrDegenerate indicates a polygon with fewer than 3 vertices where a
// proper polygon is required.
var ErrDegenerate = errors.New("geom: polygon requires at least 3 vertices")

// Point is a position (or free vector) in the plane.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product p×q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Norm() }

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// Perp returns p rotated by +90° (counter-clockwise).
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Segment is the straight segment from A to B.
type Segment struct {
	A, B Point
}

// Length returns |B-A|.
func (s Segment) Length() float64 { return s.A.Dist(s.B) }

// Mid returns the segment midpoint.
func (s Segment) Mid() Point { return s.A.Mid(s.B) }

// DistToPoint returns the distance from p to the closest point of the
// segment (not the supporting line).
func (s Segment) DistToPoint(p Point) float64 {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Dist(s.A)
	}
	t := p.Sub(s.A).Dot(d) / l2
	switch {
	case t <= 0:
		return p.Dist(s.A)
	case t >= 1:
		return p.Dist(s.B)
	default:
		return p.Dist(s.A.Add(d.Scale(t)))
	}
}

// Reflect mirrors p across the supporting line of the segment.
// Degenerate segments (A == B) reflect through the point A.
func (s Segment) Reflect(p Point) Point {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return s.A.Add(s.A.Sub(p))
	}
	t := p.Sub(s.A).Dot(d) / l2
	foot := s.A.Add(d.Scale(t))
	return foot.Add(foot.Sub(p))
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Diagonal returns the length of the box diagonal.
func (r Rect) Diagonal() float64 { return r.Min.Dist(r.Max) }
