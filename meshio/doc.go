// Package meshio persists vcfem scenarios and generated meshes as YAML
// documents. A Document captures everything needed to rebuild a
// PolyMesh2D — vertices, boundary loop, materials, regions, preserved
// edges, and generation settings — while a MeshDoc snapshots the
// generated nodes and elements for downstream tooling.
//
// Typical round trip:
//
//	doc, err := meshio.LoadFile("dam.yaml")
//	mesh, mats, err := doc.Build()
//	err = mesh.Generate(doc.Grid.NX, doc.Grid.NY, doc.Grid.Options()...)
//	snap, err := meshio.Snapshot(mesh)
//	err = meshio.SaveFile("dam_mesh.yaml", snap)
//
// Field names are stable and lowercase; unknown fields are rejected so
// that typos in hand-written scenarios surface immediately.
//
// # Errors
//
//	ErrBadDocument - structurally invalid document: missing vertices or
//	                 boundary, region referencing an unknown material,
//	                 duplicate material names.
//
// YAML syntax errors are returned wrapped from gopkg.in/yaml.v3.
package meshio
