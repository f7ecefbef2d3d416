// File: meshgen/example_test.go
package meshgen_test

import (
	"fmt"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshgen"
)

////////////////////////////////////////////////////////////////////////////////
// Example: generating a structured square mesh
////////////////////////////////////////////////////////////////////////////////

// ExamplePolyMesh2D_Generate builds the simplest possible scenario — a
// 20×20 square with one material — and generates a 2×2 structured mesh
// (zero jitter makes the run fully deterministic).
//
// Complexity: O(S²·V) clipping, S = seeds, V = mean cell size.
func ExamplePolyMesh2D_Generate() {
	rock, _ := materials.New("rock",
		materials.WithColor(materials.MustHex("#8a7f6d")),
		materials.WithHydraulicConductivity(1e-5),
	)

	mesh := meshgen.NewPolyMesh2D()
	mesh.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
	_ = mesh.InsertBoundaryVertices(0, 0, 1, 2, 3)
	_ = mesh.AddMaterialRegion([]int{0, 1, 2, 3}, rock)

	if err := mesh.Generate(2, 2, meshgen.WithJitter(0)); err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println(mesh)
	total, _ := mesh.TotalArea()
	fmt.Printf("total area: %.1f\n", total)
	// Output:
	// PolyMesh2D: 4 vertices, 4 boundary vertices, 1 material regions, 0 mesh edges; generated: 4 elements, 9 nodes
	// total area: 400.0
}
