// SPDX-License-Identifier: MIT

package meshgen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
)

// PolyMesh2D holds the input geometry of a VCFEM mesh — vertices, a
// closed boundary loop, material regions, and preserved internal edges —
// and, after Generate, the resulting nodes and polygonal elements.
//
// Mutating any input invalidates the generated state.
type PolyMesh2D struct {
	verts     []geom.Point
	boundary  []int
	regions   []*MaterialRegion2D
	meshEdges [][2]int

	generated bool
	opts      Options
	nodes     []geom.Point
	elements  []*PolyElement2D
}

// NewPolyMesh2D returns an empty mesh.
func NewPolyMesh2D() *PolyMesh2D { return &PolyMesh2D{} }

// invalidate drops any generated mesh after an input mutation.
func (m *PolyMesh2D) invalidate() {
	m.generated = false
	m.nodes = nil
	m.elements = nil
}

// ---------------------------------------------------------------------------
// Vertices
// ---------------------------------------------------------------------------

// AddVertices appends vertices and returns the index of the first one
// added.
func (m *PolyMesh2D) AddVertices(pts ...geom.Point) int {
	first := len(m.verts)
	m.verts = append(m.verts, pts...)
	m.invalidate()
	return first
}

// NumVertices returns the vertex count.
func (m *PolyMesh2D) NumVertices() int { return len(m.verts) }

// Vertices returns a copy of the vertex list.
func (m *PolyMesh2D) Vertices() []geom.Point {
	out := make([]geom.Point, len(m.verts))
	copy(out, m.verts)
	return out
}

// Vertex returns the vertex at index k.
func (m *PolyMesh2D) Vertex(k int) (geom.Point, error) {
	if k < 0 || k >= len(m.verts) {
		return geom.Point{}, fmt.Errorf("%w: %d (have %d)", ErrVertexIndex, k, len(m.verts))
	}
	return m.verts[k], nil
}

// ---------------------------------------------------------------------------
// Boundary loop
// ---------------------------------------------------------------------------

// InsertBoundaryVertices inserts vertex indices into the boundary loop
// at position at (0 ≤ at ≤ current loop length). The loop is implicitly
// closed from its last index back to its first.
func (m *PolyMesh2D) InsertBoundaryVertices(at int, idx ...int) error {
	if at < 0 || at > len(m.boundary) {
		return fmt.Errorf("%w: %d (loop has %d)", ErrBoundaryIndex, at, len(m.boundary))
	}
	for _, k := range idx {
		if k < 0 || k >= len(m.verts) {
			return fmt.Errorf("%w: %d (have %d)", ErrVertexIndex, k, len(m.verts))
		}
	}
	m.boundary = append(m.boundary[:at], append(append([]int{}, idx...), m.boundary[at:]...)...)
	m.invalidate()
	return nil
}

// RemoveBoundaryVertices removes every occurrence of the given vertex
// indices from the boundary loop.
func (m *PolyMesh2D) RemoveBoundaryVertices(idx ...int) {
	drop := make(map[int]bool, len(idx))
	for _, k := range idx {
		drop[k] = true
	}
	kept := m.boundary[:0]
	for _, k := range m.boundary {
		if !drop[k] {
			kept = append(kept, k)
		}
	}
	m.boundary = kept
	m.invalidate()
}

// NumBoundaryVertices returns the boundary loop length.
func (m *PolyMesh2D) NumBoundaryVertices() int { return len(m.boundary) }

// BoundaryVertices returns a copy of the boundary loop.
func (m *PolyMesh2D) BoundaryVertices() []int {
	out := make([]int, len(m.boundary))
	copy(out, m.boundary)
	return out
}

// BoundaryEdges returns the closed loop as vertex-index pairs.
func (m *PolyMesh2D) BoundaryEdges() [][2]int {
	n := len(m.boundary)
	if n < 2 {
		return nil
	}
	out := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, [2]int{m.boundary[i], m.boundary[(i+1)%n]})
	}
	return out
}

// boundaryPolygon resolves the loop into coordinates.
func (m *PolyMesh2D) boundaryPolygon() geom.Polygon {
	pg := make(geom.Polygon, len(m.boundary))
	for i, k := range m.boundary {
		pg[i] = m.verts[k]
	}
	return pg
}

// ---------------------------------------------------------------------------
// Material regions and preserved edges
// ---------------------------------------------------------------------------

// AddMaterialRegions attaches prebuilt regions; each must have been
// constructed against this mesh.
func (m *PolyMesh2D) AddMaterialRegions(regions ...*MaterialRegion2D) error {
	for _, r := range regions {
		if r == nil || r.mesh != m {
			return ErrRegionMesh
		}
	}
	m.regions = append(m.regions, regions...)
	m.invalidate()
	return nil
}

// AddMaterialRegion is shorthand for NewMaterialRegion2D +
// AddMaterialRegions.
func (m *PolyMesh2D) AddMaterialRegion(vertIdx []int, mat *materials.Material) error {
	r, err := NewMaterialRegion2D(m, vertIdx, mat)
	if err != nil {
		return err
	}
	return m.AddMaterialRegions(r)
}

// NumMaterialRegions returns the region count.
func (m *PolyMesh2D) NumMaterialRegions() int { return len(m.regions) }

// MaterialRegions returns the attached regions.
func (m *PolyMesh2D) MaterialRegions() []*MaterialRegion2D {
	out := make([]*MaterialRegion2D, len(m.regions))
	copy(out, m.regions)
	return out
}

// AddMeshEdges registers vertex-index pairs whose segments must appear
// as element boundaries in the generated mesh.
func (m *PolyMesh2D) AddMeshEdges(edges ...[2]int) error {
	for _, e := range edges {
		for _, k := range e {
			if k < 0 || k >= len(m.verts) {
				return fmt.Errorf("%w: %d (have %d)", ErrVertexIndex, k, len(m.verts))
			}
		}
	}
	m.meshEdges = append(m.meshEdges, edges...)
	m.invalidate()
	return nil
}

// NumMeshEdges returns the preserved edge count.
func (m *PolyMesh2D) NumMeshEdges() int { return len(m.meshEdges) }

// MeshEdges returns a copy of the preserved edges.
func (m *PolyMesh2D) MeshEdges() [][2]int {
	out := make([][2]int, len(m.meshEdges))
	copy(out, m.meshEdges)
	return out
}

// ---------------------------------------------------------------------------
// Generated-mesh queries
// ---------------------------------------------------------------------------

// Generated reports whether the mesh currently holds generated elements.
func (m *PolyMesh2D) Generated() bool { return m.generated }

// GenerationOptions returns the options used by the last Generate call.
// Only meaningful when Generated() is true.
func (m *PolyMesh2D) GenerationOptions() Options { return m.opts }

// NumNodes returns the generated node count (0 before Generate).
func (m *PolyMesh2D) NumNodes() int { return len(m.nodes) }

// Nodes returns a copy of the generated node coordinates, or
// ErrNotGenerated.
func (m *PolyMesh2D) Nodes() ([]geom.Point, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}
	out := make([]geom.Point, len(m.nodes))
	copy(out, m.nodes)
	return out, nil
}

// Node returns the generated node at index k.
func (m *PolyMesh2D) Node(k int) (geom.Point, error) {
	if !m.generated {
		return geom.Point{}, ErrNotGenerated
	}
	if k < 0 || k >= len(m.nodes) {
		return geom.Point{}, fmt.Errorf("%w: node %d (have %d)", ErrVertexIndex, k, len(m.nodes))
	}
	return m.nodes[k], nil
}

// NumElements returns the generated element count (0 before Generate).
func (m *PolyMesh2D) NumElements() int { return len(m.elements) }

// Elements returns the generated elements, or ErrNotGenerated.
func (m *PolyMesh2D) Elements() ([]*PolyElement2D, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}
	out := make([]*PolyElement2D, len(m.elements))
	copy(out, m.elements)
	return out, nil
}

// NumNodesPerElement returns the node count of every element, in
// element order.
func (m *PolyMesh2D) NumNodesPerElement() ([]int, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}
	out := make([]int, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.NumNodes()
	}
	return out, nil
}

// TotalArea returns the summed absolute element area, or ErrNotGenerated.
func (m *PolyMesh2D) TotalArea() (float64, error) {
	if !m.generated {
		return 0, ErrNotGenerated
	}
	var a float64
	for _, e := range m.elements {
		if ae := e.Area(); ae < 0 {
			a -= ae
		} else {
			a += ae
		}
	}
	return a, nil
}

// String summarizes the mesh, matching the shape of the original tool's
// printout.
func (m *PolyMesh2D) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PolyMesh2D: %d vertices, %d boundary vertices, %d material regions, %d mesh edges",
		len(m.verts), len(m.boundary), len(m.regions), len(m.meshEdges))
	if m.generated {
		fmt.Fprintf(&b, "; generated: %d elements, %d nodes", len(m.elements), len(m.nodes))
	} else {
		b.WriteString("; not generated")
	}
	return b.String()
}
