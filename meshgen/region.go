// SPDX-License-Identifier: MIT

package meshgen

import (
	"fmt"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
)

// MaterialRegion2D is a closed loop of mesh vertex indices assigned a
// uniform material. Elements whose seed point falls inside the region
// polygon take its material.
type MaterialRegion2D struct {
	mesh     *PolyMesh2D
	vertIdx  []int
	material *materials.Material
}

// NewMaterialRegion2D builds a region on mesh from an ordered vertex
// index loop and a material. Indices must refer to existing mesh
// vertices.
func NewMaterialRegion2D(mesh *PolyMesh2D, vertIdx []int, m *materials.Material) (*MaterialRegion2D, error) {
	if mesh == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrRegionMesh)
	}
	if m == nil {
		return nil, ErrNilMaterial
	}
	if len(vertIdx) < 3 {
		return nil, fmt.Errorf("meshgen: material region: %w", geom.ErrDegenerate)
	}
	for _, k := range vertIdx {
		if k < 0 || k >= len(mesh.verts) {
			return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexIndex, k, len(mesh.verts))
		}
	}
	idx := make([]int, len(vertIdx))
	copy(idx, vertIdx)
	return &MaterialRegion2D{mesh: mesh, vertIdx: idx, material: m}, nil
}

// Vertices returns a copy of the region's vertex index loop.
func (r *MaterialRegion2D) Vertices() []int {
	out := make([]int, len(r.vertIdx))
	copy(out, r.vertIdx)
	return out
}

// Material returns the region material.
func (r *MaterialRegion2D) Material() *materials.Material { return r.material }

// Polygon resolves the vertex loop into coordinates.
func (r *MaterialRegion2D) Polygon() geom.Polygon {
	pg := make(geom.Polygon, len(r.vertIdx))
	for i, k := range r.vertIdx {
		pg[i] = r.mesh.verts[k]
	}
	return pg
}

// Contains reports whether p lies inside the region polygon, with tol
// forwarded to geom.Polygon.Contains.
func (r *MaterialRegion2D) Contains(p geom.Point, tol float64) bool {
	return r.Polygon().Contains(p, tol)
}
