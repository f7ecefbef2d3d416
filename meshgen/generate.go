// SPDX-License-Identifier: MIT

package meshgen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
)

// Generate builds the Voronoi polygon mesh from an nx×ny jittered seed
// grid. See the package documentation for the full pipeline and
// complexity discussion.
func (m *PolyMesh2D) Generate(nx, ny int, opts ...Option) error {
	// 1) Validate grid, options, and boundary.
	if nx < 1 || ny < 1 {
		return ErrBadGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return err
	}
	if len(m.boundary) < 3 {
		return ErrNoBoundary
	}
	domain := m.boundaryPolygon()
	if domain.AbsArea() < geom.Eps {
		return ErrDegenerateBoundary
	}
	// Normalize to CCW so every carved cell inherits CCW orientation.
	if domain.Area() < 0 {
		domain = domain.Clone()
		domain.Reverse()
	}

	bb := domain.BoundingBox()
	dx := bb.Width() / float64(nx)
	dy := bb.Height() / float64(ny)
	d := math.Min(dx, dy)
	mergeTol := o.MergeToleranceFactor * bb.Diagonal()

	// 2) Seed the grid, jitter, and filter.
	rng := rand.New(rand.NewSource(o.Seed))
	edges := m.preservedSegments()
	edgeClear := 0.5 * o.EdgeSpacingFactor * d

	seeds := make([]geom.Point, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			p := geom.Pt(
				bb.Min.X+(float64(i)+0.5)*dx,
				bb.Min.Y+(float64(j)+0.5)*dy,
			)
			if o.JitterFactor > 0 {
				p.X += (2*rng.Float64() - 1) * o.JitterFactor * dx
				p.Y += (2*rng.Float64() - 1) * o.JitterFactor * dy
			}
			if !domain.Contains(p, 0) {
				continue
			}
			if nearAnySegment(p, edges, edgeClear) {
				continue
			}
			seeds = append(seeds, p)
		}
	}

	// 3) Mirrored seed pairs along preserved edges so a Voronoi face
	//    lies exactly on each segment.
	off := 0.25 * d
	for _, s := range edges {
		l := s.Length()
		if l < geom.Eps {
			continue
		}
		ns := int(math.Max(1, math.Round(l/(o.EdgeSpacingFactor*d))))
		t := s.B.Sub(s.A).Scale(1 / l)
		n := t.Perp()
		for k := 0; k < ns; k++ {
			base := s.A.Add(s.B.Sub(s.A).Scale((float64(k) + 0.5) / float64(ns)))
			for _, p := range [2]geom.Point{base.Add(n.Scale(off)), base.Sub(n.Scale(off))} {
				if domain.Contains(p, 0) {
					seeds = append(seeds, p)
				}
			}
		}
	}
	seeds = dedupSeeds(seeds, 1e-9*bb.Diagonal())
	if len(seeds) == 0 {
		return ErrEmptySeeds
	}

	// 4) Carve each seed's Voronoi cell by bisector clipping.
	nodes := make([]geom.Point, 0, 2*len(seeds))
	index := make(map[[2]int64]int, 2*len(seeds))
	elements := make([]*PolyElement2D, 0, len(seeds))

	for i, si := range seeds {
		cell := domain
		for j, sj := range seeds {
			if j == i || len(cell) < 3 {
				continue
			}
			mid := si.Mid(sj)
			// Left of mid→mid+perp(sj-si) is the half-plane of si.
			cell = cell.ClipHalfPlane(mid, mid.Add(sj.Sub(si).Perp()))
		}
		if len(cell) < 3 || cell.AbsArea() < mergeTol*mergeTol {
			continue
		}

		// 5) Merge cell vertices into shared nodes.
		loop := make([]int, 0, len(cell))
		for _, p := range cell {
			k := lookupNode(&nodes, index, p, mergeTol)
			if len(loop) > 0 && loop[len(loop)-1] == k {
				continue
			}
			loop = append(loop, k)
		}
		for len(loop) > 1 && loop[0] == loop[len(loop)-1] {
			loop = loop[:len(loop)-1]
		}
		if len(loop) < 3 {
			continue
		}

		elements = append(elements, &PolyElement2D{
			mesh:     m,
			nodeIdx:  loop,
			seed:     si,
			material: m.materialAt(si, mergeTol),
		})
	}
	if len(elements) == 0 {
		return ErrEmptySeeds
	}

	m.opts = o
	m.nodes = nodes
	m.elements = elements
	m.generated = true
	return nil
}

// preservedSegments resolves the mesh-edge index pairs into segments.
func (m *PolyMesh2D) preservedSegments() []geom.Segment {
	out := make([]geom.Segment, 0, len(m.meshEdges))
	for _, e := range m.meshEdges {
		out = append(out, geom.Segment{A: m.verts[e[0]], B: m.verts[e[1]]})
	}
	return out
}

// materialAt returns the material of the first region containing p, or
// nil when no region claims it.
func (m *PolyMesh2D) materialAt(p geom.Point, tol float64) *materials.Material {
	for _, r := range m.regions {
		if r.Contains(p, tol) {
			return r.Material()
		}
	}
	return nil
}

func nearAnySegment(p geom.Point, segs []geom.Segment, clear float64) bool {
	for _, s := range segs {
		if s.DistToPoint(p) < clear {
			return true
		}
	}
	return false
}

// dedupSeeds drops seeds closer than tol to an earlier seed. O(S²) but
// S is small relative to the clipping cost.
func dedupSeeds(seeds []geom.Point, tol float64) []geom.Point {
	out := seeds[:0]
	for _, p := range seeds {
		dup := false
		for _, q := range out {
			if p.Dist(q) < tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// lookupNode finds or inserts the node for p, quantizing coordinates to
// the merge tolerance grid.
func lookupNode(nodes *[]geom.Point, index map[[2]int64]int, p geom.Point, tol float64) int {
	key := [2]int64{int64(math.Round(p.X / tol)), int64(math.Round(p.Y / tol))}
	if k, ok := index[key]; ok {
		return k
	}
	k := len(*nodes)
	*nodes = append(*nodes, p)
	index[key] = k
	return k
}
