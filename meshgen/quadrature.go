// SPDX-License-Identifier: MIT

package meshgen

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vcfem/geom"
)

// rankTolerance is the relative singular-value cutoff for the
// moment-fitting solve.
const rankTolerance = 1e-12

// ensureQuad builds the element's moment-fitted quadrature rule on
// first use: points at the nodes, edge midpoints, and centroid
// (centroid-relative), weights as the minimum-norm least-squares
// solution of the moment constraints. O(n³) in the point count n, with
// n small (2·nodes+1).
func (e *PolyElement2D) ensureQuad() {
	if e.quadPts != nil {
		return
	}
	e.ensureGeom()
	pg := e.Polygon()
	c := e.centroid
	nn := len(pg)

	// 1) Quadrature points relative to the centroid.
	pts := make([]geom.Point, 0, 2*nn+1)
	for i := 0; i < nn; i++ {
		pts = append(pts, pg[i].Sub(c))
	}
	for i := 0; i < nn; i++ {
		pts = append(pts, pg[i].Mid(pg[(i+1)%nn]).Sub(c))
	}
	pts = append(pts, geom.Point{})

	// 2) Exact polygon moments. Scale lengths by h = √A to condition
	//    the moment matrix; weights are scale-invariant.
	area := e.area
	h := math.Sqrt(math.Abs(area))
	if h < geom.Eps {
		h = 1
	}
	order := e.mesh.opts.QuadratureOrder
	if order == 0 {
		order = DefaultQuadratureOrder
	}

	rows := 3
	if order == 2 {
		rows = 6
	}
	n := len(pts)
	a := mat.NewDense(rows, n, nil)
	b := mat.NewVecDense(rows, nil)
	for k, p := range pts {
		x, y := p.X/h, p.Y/h
		a.Set(0, k, 1)
		a.Set(1, k, x)
		a.Set(2, k, y)
		if order == 2 {
			a.Set(3, k, x*x)
			a.Set(4, k, y*y)
			a.Set(5, k, x*y)
		}
	}
	b.SetVec(0, 1) // Σw = 1
	// First central moments vanish by definition of the centroid.
	if order == 2 {
		mxx, myy, mxy, err := pg.SecondMoments()
		if err == nil {
			b.SetVec(3, mxx/(area*h*h))
			b.SetVec(4, myy/(area*h*h))
			b.SetVec(5, mxy/(area*h*h))
		}
	}

	// 3) Minimum-norm least-squares fit via SVD.
	var svd mat.SVD
	w := mat.NewVecDense(n, nil)
	if svd.Factorize(a, mat.SVDThin) {
		if rank := svd.Rank(rankTolerance); rank > 0 {
			svd.SolveVecTo(w, b, rank)
			e.quadPts = pts
			e.quadWts = w.RawVector().Data
			return
		}
	}

	// Degenerate fit: fall back to the one-point centroid rule, which
	// still integrates linears exactly.
	wts := make([]float64, n)
	wts[n-1] = 1
	e.quadPts = pts
	e.quadWts = wts
}
