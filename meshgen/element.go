// SPDX-License-Identifier: MIT

package meshgen

import (
	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
)

// PolyElement2D is one Voronoi cell of a generated mesh: a
// counter-clockwise loop of node indices, the seed point that carved
// the cell, and the material of the region containing the seed (nil if
// no region claims it).
//
// Geometric quantities (area, centroid, quadrature) are computed on
// first use and memoized. Elements are not safe for concurrent first
// access; meshes are typically generated once and then read.
type PolyElement2D struct {
	mesh     *PolyMesh2D
	nodeIdx  []int
	seed     geom.Point
	material *materials.Material

	// memoized geometry
	haveGeom bool
	area     float64
	centroid geom.Point

	// memoized quadrature (see quadrature.go)
	quadPts []geom.Point
	quadWts []float64
}

// NumNodes returns the number of nodes in the element loop.
func (e *PolyElement2D) NumNodes() int { return len(e.nodeIdx) }

// Nodes returns a copy of the element's node index loop (CCW).
func (e *PolyElement2D) Nodes() []int {
	out := make([]int, len(e.nodeIdx))
	copy(out, e.nodeIdx)
	return out
}

// Seed returns the Voronoi seed point that generated the element.
func (e *PolyElement2D) Seed() geom.Point { return e.seed }

// Material returns the element material, or nil when the seed fell in
// no material region.
func (e *PolyElement2D) Material() *materials.Material { return e.material }

// Polygon resolves the node loop into coordinates.
func (e *PolyElement2D) Polygon() geom.Polygon {
	pg := make(geom.Polygon, len(e.nodeIdx))
	for i, k := range e.nodeIdx {
		pg[i] = e.mesh.nodes[k]
	}
	return pg
}

func (e *PolyElement2D) ensureGeom() {
	if e.haveGeom {
		return
	}
	pg := e.Polygon()
	e.area = pg.Area()
	// Degenerate loops are filtered at generation time, so Centroid
	// cannot fail here.
	e.centroid, _ = pg.Centroid()
	e.haveGeom = true
}

// Area returns the signed element area (positive: loops are CCW).
func (e *PolyElement2D) Area() float64 {
	e.ensureGeom()
	return e.area
}

// Centroid returns the element area centroid.
func (e *PolyElement2D) Centroid() geom.Point {
	e.ensureGeom()
	return e.centroid
}

// QuadPoints returns the centroid-relative quadrature points: element
// nodes, edge midpoints, and the centroid itself.
func (e *PolyElement2D) QuadPoints() []geom.Point {
	e.ensureQuad()
	out := make([]geom.Point, len(e.quadPts))
	copy(out, e.quadPts)
	return out
}

// QuadWeights returns the fractional quadrature weights (Σw = 1)
// matching QuadPoints. |Area|·Σ wₖ·f(xₖ) integrates f over the element,
// exactly for polynomials up to the mesh QuadratureOrder.
func (e *PolyElement2D) QuadWeights() []float64 {
	e.ensureQuad()
	out := make([]float64, len(e.quadWts))
	copy(out, e.quadWts)
	return out
}
