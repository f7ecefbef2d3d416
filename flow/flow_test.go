package flow_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vcfem/flow"
	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const condRock = 1e-5

func newMaterial(t *testing.T, name string, k float64) *materials.Material {
	t.Helper()
	m, err := materials.New(name,
		materials.WithColor(materials.MustHex("#8a7f6d")),
		materials.WithHydraulicConductivity(k))
	require.NoError(t, err)
	return m
}

// squareMesh is the 20×20 single-material domain.
func squareMesh(t *testing.T, opts ...meshgen.Option) *meshgen.PolyMesh2D {
	t.Helper()
	m := meshgen.NewPolyMesh2D()
	m.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
	require.NoError(t, m.AddMaterialRegion([]int{0, 1, 2, 3}, newMaterial(t, "rock", condRock)))
	require.NoError(t, m.Generate(4, 4, opts...))
	return m
}

// nodesWhere returns node indices whose coordinates satisfy pred.
func nodesWhere(t *testing.T, m *meshgen.PolyMesh2D, pred func(geom.Point) bool) []int {
	t.Helper()
	nodes, err := m.Nodes()
	require.NoError(t, err)
	var out []int
	for i, p := range nodes {
		if pred(p) {
			out = append(out, i)
		}
	}
	return out
}

// fixEdgeHeads fixes h on all nodes with X within tol of x.
func fixEdgeHeads(t *testing.T, a *flow.PolyFlow2D, x, h float64) []int {
	t.Helper()
	idx := nodesWhere(t, a.Mesh(), func(p geom.Point) bool { return math.Abs(p.X-x) < 1e-6 })
	require.NotEmpty(t, idx, "no nodes on edge x=%g", x)
	for _, node := range idx {
		require.NoError(t, a.SetHead(node, h))
	}
	return idx
}

// TestSolve_Validation covers pre-solve failure modes.
func TestSolve_Validation(t *testing.T) {
	t.Run("NoMesh", func(t *testing.T) {
		a := flow.NewPolyFlow2D(nil)
		assert.ErrorIs(t, a.Solve(), flow.ErrNoMesh)
		assert.ErrorIs(t, a.SetHead(0, 1), flow.ErrNoMesh)
	})

	t.Run("NotGenerated", func(t *testing.T) {
		m := meshgen.NewPolyMesh2D()
		a := flow.NewPolyFlow2D(m)
		assert.ErrorIs(t, a.Solve(), flow.ErrMeshNotGenerated)
		assert.ErrorIs(t, a.SetHead(0, 1), flow.ErrMeshNotGenerated)
	})

	t.Run("NodeIndex", func(t *testing.T) {
		a := flow.NewPolyFlow2D(squareMesh(t, meshgen.WithJitter(0)))
		assert.ErrorIs(t, a.SetHead(-1, 0), flow.ErrNodeIndex)
		assert.ErrorIs(t, a.SetHead(10_000, 0), flow.ErrNodeIndex)
		assert.ErrorIs(t, a.SetFlux(10_000, 0), flow.ErrNodeIndex)
	})

	t.Run("NoHeadBC", func(t *testing.T) {
		a := flow.NewPolyFlow2D(squareMesh(t, meshgen.WithJitter(0)))
		assert.ErrorIs(t, a.Solve(), flow.ErrNoHeadBC)
	})

	t.Run("NoMaterial", func(t *testing.T) {
		m := meshgen.NewPolyMesh2D()
		m.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
		require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
		require.NoError(t, m.Generate(4, 4, meshgen.WithJitter(0)))
		a := flow.NewPolyFlow2D(m)
		require.NoError(t, a.SetHead(0, 1))
		assert.ErrorIs(t, a.Solve(), flow.ErrNoMaterial)
	})

	t.Run("NotSolved", func(t *testing.T) {
		a := flow.NewPolyFlow2D(squareMesh(t, meshgen.WithJitter(0)))
		_, err := a.Heads()
		assert.ErrorIs(t, err, flow.ErrNotSolved)
		_, err = a.Gradient(0)
		assert.ErrorIs(t, err, flow.ErrNotSolved)
		_, err = a.Velocity(0)
		assert.ErrorIs(t, err, flow.ErrNotSolved)
	})
}

// TestSolve_PatchStructured runs the uniform-flow patch test on a
// structured mesh: fixed heads on the left and right edges must give an
// exactly linear head field and uniform Darcy velocity.
func TestSolve_PatchStructured(t *testing.T) {
	mesh := squareMesh(t, meshgen.WithJitter(0))
	a := flow.NewPolyFlow2D(mesh)
	fixEdgeHeads(t, a, 0, 20)
	fixEdgeHeads(t, a, 20, 10)
	require.NoError(t, a.Solve())
	require.True(t, a.Solved())

	nodes, err := mesh.Nodes()
	require.NoError(t, err)
	heads, err := a.Heads()
	require.NoError(t, err)
	for i, p := range nodes {
		want := 20 - 0.5*p.X
		assert.InDelta(t, want, heads[i], 1e-8, "node %d at (%g,%g)", i, p.X, p.Y)
	}

	for e := 0; e < mesh.NumElements(); e++ {
		g, err := a.Gradient(e)
		require.NoError(t, err)
		assert.InDelta(t, -0.5, g.X, 1e-9, "element %d", e)
		assert.InDelta(t, 0.0, g.Y, 1e-9, "element %d", e)

		v, err := a.Velocity(e)
		require.NoError(t, err)
		assert.InDelta(t, 0.5*condRock, v.X, 1e-12)
		assert.InDelta(t, 0.0, v.Y, 1e-12)
	}
}

// TestSolve_PatchJittered repeats the patch test on an irregular
// Voronoi mesh; polygon shape must not break linear exactness.
func TestSolve_PatchJittered(t *testing.T) {
	mesh := squareMesh(t, meshgen.WithJitter(0.2), meshgen.WithSeed(3))
	a := flow.NewPolyFlow2D(mesh)
	fixEdgeHeads(t, a, 0, 20)
	fixEdgeHeads(t, a, 20, 10)
	require.NoError(t, a.Solve())

	nodes, err := mesh.Nodes()
	require.NoError(t, err)
	heads, err := a.Heads()
	require.NoError(t, err)
	for i, p := range nodes {
		assert.InDelta(t, 20-0.5*p.X, heads[i], 1e-7, "node %d", i)
	}
}

// TestSolve_SeriesTwoMaterials checks 1D flow through two materials in
// series against the analytic interface head.
func TestSolve_SeriesTwoMaterials(t *testing.T) {
	const k1, k2 = 2e-5, 1e-5

	m := meshgen.NewPolyMesh2D()
	m.AddVertices(
		geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0),
		geom.Pt(10, 0), geom.Pt(10, 20),
	)
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
	require.NoError(t, m.AddMaterialRegion([]int{0, 1, 5, 4}, newMaterial(t, "coarse", k1)))
	require.NoError(t, m.AddMaterialRegion([]int{4, 5, 2, 3}, newMaterial(t, "fine", k2)))
	require.NoError(t, m.AddMeshEdges([2]int{4, 5}))
	require.NoError(t, m.Generate(4, 4, meshgen.WithJitter(0)))

	a := flow.NewPolyFlow2D(m)
	fixEdgeHeads(t, a, 0, 20)
	fixEdgeHeads(t, a, 20, 10)
	require.NoError(t, a.Solve())

	// Series resistances: R1 = 10/k1, R2 = 10/k2; interface head.
	q := 10.0 / (10/k1 + 10/k2)
	wantInterface := 20 - q*10/k1

	nodes, err := m.Nodes()
	require.NoError(t, err)
	heads, err := a.Heads()
	require.NoError(t, err)
	for i, p := range nodes {
		if math.Abs(p.X-10) < 1e-6 {
			assert.InDelta(t, wantInterface, heads[i], 1e-7, "interface node %d", i)
		}
	}
}

// TestSolve_MassBalance checks that fixed-head reactions balance to
// zero without applied fluxes, and balance an applied flux otherwise.
func TestSolve_MassBalance(t *testing.T) {
	mesh := squareMesh(t, meshgen.WithJitter(0.2), meshgen.WithSeed(9))
	a := flow.NewPolyFlow2D(mesh)
	left := fixEdgeHeads(t, a, 0, 20)
	right := fixEdgeHeads(t, a, 20, 10)
	require.NoError(t, a.Solve())

	var total float64
	for _, node := range append(append([]int{}, left...), right...) {
		r, err := a.ReactionFlux(node)
		require.NoError(t, err)
		total += r
	}
	assert.InDelta(t, 0.0, total, 1e-12, "inflow balances outflow")
}

// TestSolve_Invalidation verifies that editing BCs drops the solution.
func TestSolve_Invalidation(t *testing.T) {
	mesh := squareMesh(t, meshgen.WithJitter(0))
	a := flow.NewPolyFlow2D(mesh)
	fixEdgeHeads(t, a, 0, 20)
	fixEdgeHeads(t, a, 20, 10)
	require.NoError(t, a.Solve())
	require.True(t, a.Solved())

	require.NoError(t, a.SetFlux(0, 1e-6))
	assert.False(t, a.Solved())

	a.ClearBCs()
	assert.Empty(t, a.FixedHeads())
	assert.ErrorIs(t, a.Solve(), flow.ErrNoHeadBC)
}

// TestSetMesh covers attach/detach semantics.
func TestSetMesh(t *testing.T) {
	a := flow.NewPolyFlow2D(nil)
	assert.Nil(t, a.Mesh())

	mesh := squareMesh(t, meshgen.WithJitter(0))
	a.SetMesh(mesh)
	assert.Same(t, mesh, a.Mesh())
	require.NoError(t, a.SetHead(0, 1))

	// Detaching drops BCs and results.
	a.SetMesh(nil)
	assert.Nil(t, a.Mesh())
	assert.Empty(t, a.FixedHeads())
	assert.ErrorIs(t, a.Solve(), flow.ErrNoMesh)
}
