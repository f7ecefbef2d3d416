// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/meshgen"
)

// PolyFlow2D is a steady seepage analysis bound to one generated mesh.
// Boundary conditions are set per node; Solve assembles and solves the
// conductivity system and memoizes results until the boundary
// conditions or the mesh change.
type PolyFlow2D struct {
	mesh *meshgen.PolyMesh2D

	heads  map[int]float64 // fixed-head (Dirichlet) nodes
	fluxes map[int]float64 // nodal inflow (Neumann) terms

	solved bool
	sol    *solution
}

// NewPolyFlow2D creates an analysis. A nil mesh is allowed and can be
// attached later with SetMesh.
func NewPolyFlow2D(mesh *meshgen.PolyMesh2D) *PolyFlow2D {
	return &PolyFlow2D{
		mesh:   mesh,
		heads:  make(map[int]float64),
		fluxes: make(map[int]float64),
	}
}

// Mesh returns the attached mesh (nil when detached).
func (a *PolyFlow2D) Mesh() *meshgen.PolyMesh2D { return a.mesh }

// SetMesh attaches a mesh, or detaches with nil. Any boundary
// conditions and results are discarded, since node numbering belongs to
// the mesh.
func (a *PolyFlow2D) SetMesh(mesh *meshgen.PolyMesh2D) {
	a.mesh = mesh
	a.ClearBCs()
}

// ClearBCs removes all boundary conditions and invalidates results.
func (a *PolyFlow2D) ClearBCs() {
	a.heads = make(map[int]float64)
	a.fluxes = make(map[int]float64)
	a.invalidate()
}

func (a *PolyFlow2D) invalidate() {
	a.solved = false
	a.sol = nil
}

// checkNode validates a node index against the attached generated mesh.
func (a *PolyFlow2D) checkNode(node int) error {
	if a.mesh == nil {
		return ErrNoMesh
	}
	if !a.mesh.Generated() {
		return ErrMeshNotGenerated
	}
	if node < 0 || node >= a.mesh.NumNodes() {
		return fmt.Errorf("%w: %d (have %d)", ErrNodeIndex, node, a.mesh.NumNodes())
	}
	return nil
}

// SetHead fixes the hydraulic head at a node (Dirichlet condition).
func (a *PolyFlow2D) SetHead(node int, h float64) error {
	if err := a.checkNode(node); err != nil {
		return err
	}
	a.heads[node] = h
	a.invalidate()
	return nil
}

// SetFlux prescribes a nodal inflow (Neumann condition; positive into
// the domain).
func (a *PolyFlow2D) SetFlux(node int, q float64) error {
	if err := a.checkNode(node); err != nil {
		return err
	}
	a.fluxes[node] = q
	a.invalidate()
	return nil
}

// FixedHeads returns a copy of the fixed-head conditions.
func (a *PolyFlow2D) FixedHeads() map[int]float64 {
	out := make(map[int]float64, len(a.heads))
	for k, v := range a.heads {
		out[k] = v
	}
	return out
}

// Solved reports whether results are available.
func (a *PolyFlow2D) Solved() bool { return a.solved }

// Heads returns the solved nodal heads, indexed like mesh.Nodes().
func (a *PolyFlow2D) Heads() ([]float64, error) {
	if !a.solved {
		return nil, ErrNotSolved
	}
	out := make([]float64, len(a.sol.heads))
	copy(out, a.sol.heads)
	return out, nil
}

// Head returns the solved head at one node.
func (a *PolyFlow2D) Head(node int) (float64, error) {
	if !a.solved {
		return 0, ErrNotSolved
	}
	if node < 0 || node >= len(a.sol.heads) {
		return 0, fmt.Errorf("%w: %d (have %d)", ErrNodeIndex, node, len(a.sol.heads))
	}
	return a.sol.heads[node], nil
}

// Gradient returns the constant head gradient of element e.
func (a *PolyFlow2D) Gradient(e int) (geom.Point, error) {
	if !a.solved {
		return geom.Point{}, ErrNotSolved
	}
	if e < 0 || e >= len(a.sol.grads) {
		return geom.Point{}, fmt.Errorf("%w: %d (have %d)", ErrElementIndex, e, len(a.sol.grads))
	}
	return a.sol.grads[e], nil
}

// Velocity returns the Darcy velocity v = -K·∇h of element e.
func (a *PolyFlow2D) Velocity(e int) (geom.Point, error) {
	if !a.solved {
		return geom.Point{}, ErrNotSolved
	}
	if e < 0 || e >= len(a.sol.grads) {
		return geom.Point{}, fmt.Errorf("%w: %d (have %d)", ErrElementIndex, e, len(a.sol.grads))
	}
	g := a.sol.grads[e]
	return g.Scale(-a.sol.conds[e]), nil
}

// ReactionFlux returns the discharge entering the domain through a
// fixed-head node (the residual of the full system at that node).
// Positive values flow into the domain.
func (a *PolyFlow2D) ReactionFlux(node int) (float64, error) {
	if !a.solved {
		return 0, ErrNotSolved
	}
	if node < 0 || node >= len(a.sol.heads) {
		return 0, fmt.Errorf("%w: %d (have %d)", ErrNodeIndex, node, len(a.sol.heads))
	}
	return a.sol.residual(node) - a.fluxes[node], nil
}
