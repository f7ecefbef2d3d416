// Package geom provides the 2D computational-geometry primitives that the
// vcfem mesh generator and solvers are built on: points, segments, and
// simple polygons with exact area/centroid/second-moment integrals and
// half-plane clipping.
//
// The key operations offered are:
//
//   - Polygon.Area / Centroid / SecondMoments
//
//   - Method: Green's-theorem (shoelace-style) edge sums.
//
//   - Time:   O(n) per call for an n-vertex polygon.
//
//   - Exact for simple polygons, up to floating-point rounding.
//
//   - Polygon.ClipHalfPlane
//
//   - Method: Sutherland–Hodgman clipping against one directed line.
//
//   - Time:   O(n); the result has at most n+1 vertices.
//
//   - Used repeatedly by meshgen to carve Voronoi cells out of the
//     problem domain.
//
//   - Polygon.Contains
//
//   - Method: even-odd ray casting with an on-edge tolerance.
//
//   - Time:   O(n).
//
// # Conventions
//
// Polygons are ordered vertex lists without a repeated closing vertex.
// Counter-clockwise order yields positive signed area; all integral
// methods return signed values and follow the polygon's orientation.
// meshgen normalizes every cell to counter-clockwise order before use.
//
// # Errors
//
//	ErrDegenerate - a polygon operation requires at least 3 vertices.
//
// See: meshgen for how these primitives combine into a mesh generator.
package geom
