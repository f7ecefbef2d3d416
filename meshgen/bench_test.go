package meshgen_test

import (
	"testing"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshgen"
)

// benchSquare builds the 20×20 single-material domain without testing.T.
func benchSquare(b *testing.B) *meshgen.PolyMesh2D {
	b.Helper()
	rock, err := materials.New("rock", materials.WithColor(materials.MustHex("#8a7f6d")))
	if err != nil {
		b.Fatal(err)
	}
	m := meshgen.NewPolyMesh2D()
	m.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
	if err := m.InsertBoundaryVertices(0, 0, 1, 2, 3); err != nil {
		b.Fatal(err)
	}
	if err := m.AddMaterialRegion([]int{0, 1, 2, 3}, rock); err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkGenerate measures the full pipeline at the original tool's
// default rectangular-mesh resolution.
func BenchmarkGenerate(b *testing.B) {
	m := benchSquare(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Generate(16, 16, meshgen.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkQuadrature measures rule construction over a generated mesh.
func BenchmarkQuadrature(b *testing.B) {
	m := benchSquare(b)
	if err := m.Generate(16, 16); err != nil {
		b.Fatal(err)
	}
	elems, err := m.Elements()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := elems[i%len(elems)]
		_ = e.QuadWeights()
	}
}
