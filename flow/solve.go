// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/meshgen"
)

// solution holds the memoized results of a successful Solve.
type solution struct {
	heads []float64     // nodal heads, mesh node order
	grads []geom.Point  // per-element head gradient
	conds []float64     // per-element hydraulic conductivity
	k     *mat.SymDense // assembled global matrix (for reactions)
}

// residual returns (K·h) at one node.
func (s *solution) residual(node int) float64 {
	var r float64
	for j := range s.heads {
		r += s.k.At(node, j) * s.heads[j]
	}
	return r
}

// Solve assembles and solves the conductivity system. See the package
// documentation for the formulation and failure modes.
func (a *PolyFlow2D) Solve(opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	// 1) Validate mesh state and boundary conditions.
	if a.mesh == nil {
		return ErrNoMesh
	}
	if !a.mesh.Generated() {
		return ErrMeshNotGenerated
	}
	nn := a.mesh.NumNodes()
	if len(a.heads) == 0 {
		return ErrNoHeadBC
	}
	for node := range a.heads {
		if node < 0 || node >= nn {
			return fmt.Errorf("%w: fixed head at %d (have %d)", ErrNodeIndex, node, nn)
		}
	}
	for node := range a.fluxes {
		if node < 0 || node >= nn {
			return fmt.Errorf("%w: flux at %d (have %d)", ErrNodeIndex, node, nn)
		}
	}
	elems, err := a.mesh.Elements()
	if err != nil {
		return err
	}

	// 2) Assemble the global symmetric conductivity matrix.
	kg := mat.NewSymDense(nn, nil)
	conds := make([]float64, len(elems))
	bxs := make([][]float64, len(elems))
	bys := make([][]float64, len(elems))
	for ei, e := range elems {
		m := e.Material()
		if m == nil || m.HydraulicConductivity <= 0 {
			return fmt.Errorf("%w: element %d", ErrNoMaterial, ei)
		}
		cond := m.HydraulicConductivity
		conds[ei] = cond

		idx := e.Nodes()
		ke, bx, by := elementMatrix(e, cond)
		bxs[ei], bys[ei] = bx, by
		for i, gi := range idx {
			for j, gj := range idx {
				if gi <= gj {
					kg.SetSym(gi, gj, kg.At(gi, gj)+ke[i][j])
				}
			}
		}
	}

	// 3) Partition fixed and free nodes; condense Dirichlet columns.
	fixed := make([]int, 0, len(a.heads))
	for node := range a.heads {
		fixed = append(fixed, node)
	}
	sort.Ints(fixed)
	isFixed := make(map[int]bool, len(fixed))
	for _, node := range fixed {
		isFixed[node] = true
	}
	free := make([]int, 0, nn-len(fixed))
	for node := 0; node < nn; node++ {
		if !isFixed[node] {
			free = append(free, node)
		}
	}

	heads := make([]float64, nn)
	for node, h := range a.heads {
		heads[node] = h
	}

	if len(free) > 0 {
		nf := len(free)
		kff := mat.NewSymDense(nf, nil)
		rhs := mat.NewVecDense(nf, nil)
		for i, gi := range free {
			v := a.fluxes[gi]
			for _, c := range fixed {
				v -= kg.At(gi, c) * a.heads[c]
			}
			rhs.SetVec(i, v)
			for j, gj := range free {
				if i <= j {
					kff.SetSym(i, j, kg.At(gi, gj))
				}
			}
		}

		// 4) Cholesky first; dense LU fallback for non-SPD systems.
		hf := mat.NewVecDense(nf, nil)
		if err := solveReduced(kff, rhs, hf, o.Tolerance); err != nil {
			return err
		}
		for i, gi := range free {
			heads[gi] = hf.AtVec(i)
		}
	}

	// 5) Memoize heads and per-element gradients.
	sol := &solution{heads: heads, conds: conds, k: kg}
	sol.grads = make([]geom.Point, len(elems))
	for ei, e := range elems {
		var g geom.Point
		for i, node := range e.Nodes() {
			g.X += bxs[ei][i] * heads[node]
			g.Y += bys[ei][i] * heads[node]
		}
		sol.grads[ei] = g
	}
	a.sol = sol
	a.solved = true
	return nil
}

// solveReduced solves kff·h = rhs, preferring Cholesky.
func solveReduced(kff *mat.SymDense, rhs, dst *mat.VecDense, tol float64) error {
	var ch mat.Cholesky
	if ch.Factorize(kff) {
		if err := ch.SolveVecTo(dst, rhs); err == nil {
			return nil
		}
	}
	var lu mat.LU
	lu.Factorize(mat.DenseCopyOf(kff))
	if err := lu.SolveVecTo(dst, false, rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) && float64(cond) > 1/tol {
			return ErrSingularSystem
		}
		if !errors.As(err, &cond) {
			return fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
	}
	return nil
}

// elementMatrix builds the n×n element conductivity matrix
//
//	kₑ = K·A·BᵀB + K·(I−Π)ᵀ(I−Π)
//
// together with the gradient operator rows bx, by. The projector Π
// reproduces linear nodal fields exactly, so the stabilization term
// vanishes on them (patch test).
func elementMatrix(e *meshgen.PolyElement2D, cond float64) (ke [][]float64, bx, by []float64) {
	pg := e.Polygon()
	n := len(pg)
	area := e.Area()

	// Gradient operator from ∫∇h dA = ∮h·n ds with piecewise-linear
	// boundary head.
	bx = make([]float64, n)
	by = make([]float64, n)
	for i := range pg {
		prev := pg[(i-1+n)%n]
		next := pg[(i+1)%n]
		bx[i] = (next.Y - prev.Y) / (2 * area)
		by[i] = (prev.X - next.X) / (2 * area)
	}

	// Nodal mean anchor for the linear projector.
	var xb, yb float64
	for _, p := range pg {
		xb += p.X
		yb += p.Y
	}
	xb /= float64(n)
	yb /= float64(n)

	// q = I − Π, with Π[i][j] = 1/n + (x_i−x̄)·bx[j] + (y_i−ȳ)·by[j].
	q := make([][]float64, n)
	for i := range q {
		q[i] = make([]float64, n)
		dx, dy := pg[i].X-xb, pg[i].Y-yb
		for j := 0; j < n; j++ {
			pij := 1/float64(n) + dx*bx[j] + dy*by[j]
			if i == j {
				q[i][j] = 1 - pij
			} else {
				q[i][j] = -pij
			}
		}
	}

	ke = make([][]float64, n)
	for i := range ke {
		ke[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v := cond * area * (bx[i]*bx[j] + by[i]*by[j])
			var s float64
			for k := 0; k < n; k++ {
				s += q[k][i] * q[k][j]
			}
			ke[i][j] = v + cond*s
		}
	}
	return ke, bx, by
}
