package viz

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/vcfem/flow"
	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/meshgen"
)

// ErrNilMesh indicates NewMeshPlot was called without a mesh.
var ErrNilMesh = errors.New("viz: nil mesh")

// ErrMeshMismatch indicates DrawHeads was given an analysis bound to a
// different mesh than the figure's.
var ErrMeshMismatch = errors.New("viz: analysis mesh differs from plot mesh")

// Fallback fill for elements whose seed fell in no material region.
var unassignedFill = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0x66}

// MeshPlot accumulates drawing layers for one mesh.
type MeshPlot struct {
	mesh *meshgen.PolyMesh2D
	p    *plot.Plot
}

// NewMeshPlot starts a figure for the given mesh. Input-geometry layers
// (DrawBoundary, DrawVertices, DrawMeshEdges) work on ungenerated
// meshes; element layers require Generate first.
func NewMeshPlot(mesh *meshgen.PolyMesh2D) (*MeshPlot, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}
	p := plot.New()
	p.X.Label.Text = "x [m]"
	p.Y.Label.Text = "y [m]"
	return &MeshPlot{mesh: mesh, p: p}, nil
}

// Plot exposes the underlying gonum plot for customization.
func (mp *MeshPlot) Plot() *plot.Plot { return mp.p }

func toXYs(pg geom.Polygon) plotter.XYs {
	xys := make(plotter.XYs, len(pg))
	for i, pt := range pg {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

func closedXYs(pg geom.Polygon) plotter.XYs {
	xys := toXYs(pg)
	if len(pg) > 0 {
		xys = append(xys, xys[0])
	}
	return xys
}

func (mp *MeshPlot) addPolygon(pg geom.Polygon, fill color.Color) error {
	poly, err := plotter.NewPolygon(toXYs(pg))
	if err != nil {
		return fmt.Errorf("viz: polygon: %w", err)
	}
	poly.Color = fill
	poly.LineStyle.Color = color.RGBA{A: 0xff}
	poly.LineStyle.Width = vg.Points(0.5)
	mp.p.Add(poly)
	return nil
}

func (mp *MeshPlot) addScatter(pts []geom.Point, c color.Color, r vg.Length) error {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("viz: scatter: %w", err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = r
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	mp.p.Add(s)
	return nil
}

// DrawElements fills every generated element with its material color.
func (mp *MeshPlot) DrawElements() error {
	elems, err := mp.mesh.Elements()
	if err != nil {
		return err
	}
	for _, e := range elems {
		fill := color.Color(unassignedFill)
		if m := e.Material(); m != nil {
			fill = m.Color.RGBA()
		}
		if err := mp.addPolygon(e.Polygon(), fill); err != nil {
			return err
		}
	}
	return nil
}

// DrawHeads shades every element by its mean nodal head from a solved
// analysis, on a blue (low) to red (high) ramp. The analysis must be
// bound to the plot's mesh; head values are indexed by its node ids.
func (mp *MeshPlot) DrawHeads(an *flow.PolyFlow2D) error {
	if an.Mesh() != mp.mesh {
		return ErrMeshMismatch
	}
	heads, err := an.Heads()
	if err != nil {
		return err
	}
	elems, err := mp.mesh.Elements()
	if err != nil {
		return err
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range heads {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	for _, e := range elems {
		var mean float64
		for _, n := range e.Nodes() {
			mean += heads[n]
		}
		mean /= float64(e.NumNodes())
		t := (mean - lo) / span
		fill := color.RGBA{
			R: uint8(math.Round(255 * t)),
			B: uint8(math.Round(255 * (1 - t))),
			A: 0xcc,
		}
		if err := mp.addPolygon(e.Polygon(), fill); err != nil {
			return err
		}
	}
	return nil
}

// DrawBoundary draws the domain boundary loop.
func (mp *MeshPlot) DrawBoundary() error {
	idx := mp.mesh.BoundaryVertices()
	if len(idx) < 2 {
		return nil
	}
	pg := make(geom.Polygon, len(idx))
	for i, k := range idx {
		v, err := mp.mesh.Vertex(k)
		if err != nil {
			return err
		}
		pg[i] = v
	}
	line, err := plotter.NewLine(closedXYs(pg))
	if err != nil {
		return fmt.Errorf("viz: boundary: %w", err)
	}
	line.Width = vg.Points(2)
	mp.p.Add(line)
	return nil
}

// DrawMeshEdges draws the preserved internal edges.
func (mp *MeshPlot) DrawMeshEdges() error {
	for _, e := range mp.mesh.MeshEdges() {
		a, err := mp.mesh.Vertex(e[0])
		if err != nil {
			return err
		}
		b, err := mp.mesh.Vertex(e[1])
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return fmt.Errorf("viz: mesh edge: %w", err)
		}
		line.Width = vg.Points(1.5)
		line.Color = color.RGBA{R: 0xb0, A: 0xff}
		mp.p.Add(line)
	}
	return nil
}

// DrawVertices marks the input vertices.
func (mp *MeshPlot) DrawVertices() error {
	return mp.addScatter(mp.mesh.Vertices(), color.RGBA{R: 0xff, A: 0xff}, vg.Points(3))
}

// DrawNodes marks the generated mesh nodes.
func (mp *MeshPlot) DrawNodes() error {
	nodes, err := mp.mesh.Nodes()
	if err != nil {
		return err
	}
	return mp.addScatter(nodes, color.RGBA{B: 0xff, A: 0xff}, vg.Points(1.5))
}

// DrawQuadPoints marks every element's quadrature points.
func (mp *MeshPlot) DrawQuadPoints() error {
	elems, err := mp.mesh.Elements()
	if err != nil {
		return err
	}
	var pts []geom.Point
	for _, e := range elems {
		c := e.Centroid()
		for _, q := range e.QuadPoints() {
			pts = append(pts, q.Add(c))
		}
	}
	return mp.addScatter(pts, color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}, vg.Points(1))
}

// Save writes the figure; the format follows the file extension
// (.png, .svg, .pdf, ...).
func (mp *MeshPlot) Save(w, h vg.Length, path string) error {
	if err := mp.p.Save(w, h, path); err != nil {
		return fmt.Errorf("viz: save: %w", err)
	}
	return nil
}

// NodesPerElementHist builds the nodes-per-element histogram figure for
// a generated mesh.
func NodesPerElementHist(mesh *meshgen.PolyMesh2D) (*plot.Plot, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}
	counts, err := mesh.NumNodesPerElement()
	if err != nil {
		return nil, err
	}
	vals := make(plotter.Values, len(counts))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, n := range counts {
		vals[i] = float64(n)
		lo = math.Min(lo, vals[i])
		hi = math.Max(hi, vals[i])
	}
	bins := int(hi-lo) + 1
	if bins < 1 {
		bins = 1
	}

	p := plot.New()
	p.X.Label.Text = "# nodes in element"
	p.Y.Label.Text = "# elements"
	hist, err := plotter.NewHist(vals, bins)
	if err != nil {
		return nil, fmt.Errorf("viz: histogram: %w", err)
	}
	p.Add(hist)
	return p, nil
}
