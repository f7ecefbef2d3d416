// Package meshgen generates Voronoi polygon meshes over 2D polygonal
// domains for the Voronoi Cell Finite Element Method (VCFEM). A mesh is
// described by a small amount of input geometry — vertices, a closed
// boundary loop, material regions, and optional internal edges to
// preserve — and expanded into polygonal elements with nodes, areas,
// centroids, and per-element quadrature rules.
//
// # Pipeline
//
// PolyMesh2D.Generate(nx, ny) performs, in order:
//
//  1. Seeding: an nx×ny grid of points over the boundary bounding box,
//     each jittered by JitterFactor times the grid spacing. Seeds that
//     fall outside the domain or within half a spacing of a preserved
//     edge are dropped. (O(nx·ny·B), B = boundary size.)
//
//  2. Edge alignment: every preserved internal edge receives pairs of
//     seeds mirrored across the segment, spaced EdgeSpacingFactor grid
//     spacings apart, so that a Voronoi face lies exactly on the edge.
//
//  3. Cell carving: each seed's Voronoi cell is obtained by clipping
//     the domain polygon against the perpendicular bisector of the seed
//     and every other seed (geom.Polygon.ClipHalfPlane). Cells are
//     therefore clipped to the domain boundary by construction.
//     (O(S²·V), S = seed count, V = mean cell size.)
//
//  4. Node merging: cell vertices within MergeTolerance collapse into
//     shared mesh nodes; cells become elements holding counter-clockwise
//     node loops. Degenerate cells are discarded.
//
//  5. Material lookup: each element takes the material of the first
//     region containing its seed point.
//
// Mutating the input geometry (vertices, boundary, regions, edges)
// invalidates any generated mesh; Generated reports the current state.
//
// # Quadrature
//
// Each element carries a moment-fitted quadrature rule with points at
// its nodes, edge midpoints, and centroid, expressed relative to the
// centroid. Weights are the minimum-norm least-squares solution that
// reproduces the element's exact polygon moments:
//
//	Σ wₖ       = 1
//	Σ wₖ xₖ    = 0            (centroid-relative)
//	Σ wₖ xₖ²   = mxx / A      (QuadratureOrder = 2)
//	Σ wₖ yₖ²   = myy / A
//	Σ wₖ xₖyₖ  = mxy / A
//
// so that |A|·Σ wₖ f(xₖ) integrates any quadratic exactly over the
// element. Weights are fractions of the element area.
//
// # API
//
// Options configure generation; DefaultOptions() documents production
// defaults (JitterFactor 0.2, QuadratureOrder 2, seeded RNG):
//
//	mesh := meshgen.NewPolyMesh2D()
//	mesh.AddVertices(geom.Pt(0, 0), geom.Pt(20, 0), geom.Pt(20, 20), geom.Pt(0, 20))
//	_ = mesh.InsertBoundaryVertices(0, 0, 1, 2, 3)
//	_ = mesh.AddMaterialRegion([]int{0, 1, 2, 3}, rock)
//	err := mesh.Generate(16, 16, meshgen.WithJitter(0.2), meshgen.WithSeed(1))
//
// # Errors
//
//	ErrVertexIndex    - vertex index out of range.
//	ErrBoundaryIndex  - boundary insertion position out of range.
//	ErrNoBoundary     - Generate without a ≥3-vertex boundary loop.
//	ErrDegenerateBoundary - boundary loop encloses (near-)zero area.
//	ErrBadGrid        - non-positive grid dimensions.
//	ErrBadOption      - option value outside its documented range.
//	ErrEmptySeeds     - no usable seed survived filtering.
//	ErrNotGenerated   - generated-mesh query before Generate.
//	ErrRegionMesh     - region attached to a different mesh.
//	ErrNilMaterial    - region constructed without a material.
//
// # Integration
//
//   - Builds on github.com/katalvlaran/vcfem/geom for polygon predicates.
//   - Consumed by flow (seepage analysis) and viz (rendering).
package meshgen
