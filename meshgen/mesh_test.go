package meshgen_test

import (
	"testing"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMaterial(t *testing.T, name string) *materials.Material {
	t.Helper()
	m, err := materials.New(name, materials.WithColor(materials.MustHex("#8a7f6d")),
		materials.WithHydraulicConductivity(1e-5))
	require.NoError(t, err)
	return m
}

// squareMesh returns a 20×20 square domain with a single material
// region covering it (the original tool's "rectangular mesh" setup).
func squareMesh(t *testing.T) *meshgen.PolyMesh2D {
	t.Helper()
	m := meshgen.NewPolyMesh2D()
	m.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
	require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2, 3))
	require.NoError(t, m.AddMaterialRegion([]int{0, 1, 2, 3}, mustMaterial(t, "rock")))
	return m
}

// TestPolyMesh2D_AddVertices checks index bookkeeping.
func TestPolyMesh2D_AddVertices(t *testing.T) {
	m := meshgen.NewPolyMesh2D()
	assert.Equal(t, 0, m.AddVertices(geom.Pt(0, 0), geom.Pt(1, 0)))
	assert.Equal(t, 2, m.AddVertices(geom.Pt(1, 1)))
	assert.Equal(t, 3, m.NumVertices())

	v, err := m.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 1), v)

	_, err = m.Vertex(3)
	assert.ErrorIs(t, err, meshgen.ErrVertexIndex)
}

// TestPolyMesh2D_InsertBoundaryVertices covers insertion order and errors.
func TestPolyMesh2D_InsertBoundaryVertices(t *testing.T) {
	m := meshgen.NewPolyMesh2D()
	m.AddVertices(geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(1, 0))

	require.NoError(t, m.InsertBoundaryVertices(0, 0, 2, 3))
	require.NoError(t, m.InsertBoundaryVertices(1, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, m.BoundaryVertices())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, m.BoundaryEdges())

	assert.ErrorIs(t, m.InsertBoundaryVertices(9, 0), meshgen.ErrBoundaryIndex)
	assert.ErrorIs(t, m.InsertBoundaryVertices(0, 7), meshgen.ErrVertexIndex)

	m.RemoveBoundaryVertices(1, 3)
	assert.Equal(t, []int{0, 2}, m.BoundaryVertices())
}

// TestPolyMesh2D_MaterialRegions covers the three construction errors
// and both attachment paths.
func TestPolyMesh2D_MaterialRegions(t *testing.T) {
	m := squareMesh(t)
	other := meshgen.NewPolyMesh2D()
	other.AddVertices(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1))

	rock := mustMaterial(t, "rock")

	_, err := meshgen.NewMaterialRegion2D(m, []int{0, 1, 2}, nil)
	assert.ErrorIs(t, err, meshgen.ErrNilMaterial)

	_, err = meshgen.NewMaterialRegion2D(m, []int{0, 1}, rock)
	assert.ErrorIs(t, err, geom.ErrDegenerate)

	_, err = meshgen.NewMaterialRegion2D(m, []int{0, 1, 99}, rock)
	assert.ErrorIs(t, err, meshgen.ErrVertexIndex)

	// A region built against another mesh cannot be attached here.
	foreign, err := meshgen.NewMaterialRegion2D(other, []int{0, 1, 2}, rock)
	require.NoError(t, err)
	assert.ErrorIs(t, m.AddMaterialRegions(foreign), meshgen.ErrRegionMesh)

	r, err := meshgen.NewMaterialRegion2D(m, []int{0, 1, 2, 3}, rock)
	require.NoError(t, err)
	require.NoError(t, m.AddMaterialRegions(r))
	assert.Equal(t, 2, m.NumMaterialRegions())
	assert.True(t, r.Contains(geom.Pt(10, 10), 0))
	assert.Equal(t, rock, r.Material())
}

// TestPolyMesh2D_AddMeshEdges validates index checking.
func TestPolyMesh2D_AddMeshEdges(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.AddMeshEdges([2]int{0, 2}))
	assert.Equal(t, 1, m.NumMeshEdges())
	assert.ErrorIs(t, m.AddMeshEdges([2]int{0, 42}), meshgen.ErrVertexIndex)
}

// TestPolyMesh2D_GenerateValidation covers every pre-generation error.
func TestPolyMesh2D_GenerateValidation(t *testing.T) {
	t.Run("BadGrid", func(t *testing.T) {
		m := squareMesh(t)
		assert.ErrorIs(t, m.Generate(0, 4), meshgen.ErrBadGrid)
		assert.ErrorIs(t, m.Generate(4, -1), meshgen.ErrBadGrid)
	})

	t.Run("NoBoundary", func(t *testing.T) {
		m := meshgen.NewPolyMesh2D()
		m.AddVertices(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1))
		assert.ErrorIs(t, m.Generate(4, 4), meshgen.ErrNoBoundary)
	})

	t.Run("DegenerateBoundary", func(t *testing.T) {
		m := meshgen.NewPolyMesh2D()
		m.AddVertices(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2))
		require.NoError(t, m.InsertBoundaryVertices(0, 0, 1, 2))
		assert.ErrorIs(t, m.Generate(4, 4), meshgen.ErrDegenerateBoundary)
	})

	t.Run("BadOptions", func(t *testing.T) {
		m := squareMesh(t)
		assert.ErrorIs(t, m.Generate(4, 4, meshgen.WithJitter(0.7)), meshgen.ErrBadOption)
		assert.ErrorIs(t, m.Generate(4, 4, meshgen.WithEdgeSpacing(0)), meshgen.ErrBadOption)
		assert.ErrorIs(t, m.Generate(4, 4, meshgen.WithQuadratureOrder(3)), meshgen.ErrBadOption)
	})
}

// TestPolyMesh2D_Invalidation verifies that input mutation drops the
// generated mesh.
func TestPolyMesh2D_Invalidation(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.Generate(4, 4, meshgen.WithJitter(0)))
	require.True(t, m.Generated())

	m.AddVertices(geom.Pt(30, 30))
	assert.False(t, m.Generated())

	_, err := m.Nodes()
	assert.ErrorIs(t, err, meshgen.ErrNotGenerated)
	_, err = m.Elements()
	assert.ErrorIs(t, err, meshgen.ErrNotGenerated)
	_, err = m.NumNodesPerElement()
	assert.ErrorIs(t, err, meshgen.ErrNotGenerated)
	_, err = m.TotalArea()
	assert.ErrorIs(t, err, meshgen.ErrNotGenerated)
}

// TestPolyMesh2D_String checks the summary in both states.
func TestPolyMesh2D_String(t *testing.T) {
	m := squareMesh(t)
	assert.Contains(t, m.String(), "not generated")
	require.NoError(t, m.Generate(2, 2, meshgen.WithJitter(0)))
	assert.Contains(t, m.String(), "4 elements")
}
