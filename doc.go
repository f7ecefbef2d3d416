// Package vcfem is a toolkit for the Voronoi Cell Finite Element Method
// (VCFEM) in two dimensions: polygonal mesh generation, material
// property management, and steady seepage/flow analysis for
// geomechanics problems.
//
// 🚀 What is vcfem?
//
//	A pure-Go numerical library that brings together:
//		• geom/       — 2D computational geometry: polygons, clipping, moments
//		• materials/  — material definitions with hydraulic, thermal and
//		                elastic properties and plot colors
//		• meshgen/    — Voronoi polygon mesh generation over arbitrary
//		                polygonal domains, with material regions and
//		                preserved internal edges
//		• flow/       — 2D steady seepage analysis on generated meshes
//		                (nodal heads, element gradients, Darcy velocities)
//		• meshio/     — YAML persistence for scenarios and generated meshes
//		• viz/        — PNG/SVG rendering of meshes and head fields
//
// ✨ Why choose vcfem?
//
//   - Polygon elements – meshes conform to irregular domains and internal
//     material boundaries without triangulation artifacts
//   - Deterministic – seeded generation, reproducible meshes and results
//   - Pure Go – no cgo, numerics on gonum
//   - Extensible – quadrature rules and boundary conditions exposed as data
//
// A typical session builds a PolyMesh2D, assigns material regions,
// generates the mesh, and hands it to flow.PolyFlow2D:
//
//	mesh := meshgen.NewPolyMesh2D()
//	mesh.AddVertices(geom.Pt(0, 0), geom.Pt(0, 20), geom.Pt(20, 20), geom.Pt(20, 0))
//	_ = mesh.InsertBoundaryVertices(0, 0, 1, 2, 3)
//	_ = mesh.AddMaterialRegion([]int{0, 1, 2, 3}, rock)
//	_ = mesh.Generate(16, 16)
//
//	an := flow.NewPolyFlow2D(mesh)
//	...
//
// See each subpackage's doc.go for algorithms, options, and complexity.
package vcfem
