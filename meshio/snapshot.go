package meshio

import (
	"fmt"

	"github.com/katalvlaran/vcfem/meshgen"
)

// MeshDoc snapshots a generated mesh: node coordinates plus element
// node loops and material names. It is an export format, not an input;
// rebuild meshes from the scenario Document instead.
type MeshDoc struct {
	Nodes    [][2]float64 `yaml:"nodes"`
	Elements []ElementDoc `yaml:"elements"`
}

// ElementDoc is one polygonal element of a MeshDoc.
type ElementDoc struct {
	Nodes    []int   `yaml:"nodes"`
	Material string  `yaml:"material,omitempty"`
	Area     float64 `yaml:"area"`
}

// Snapshot exports the generated state of a mesh.
func Snapshot(mesh *meshgen.PolyMesh2D) (*MeshDoc, error) {
	nodes, err := mesh.Nodes()
	if err != nil {
		return nil, fmt.Errorf("meshio: snapshot: %w", err)
	}
	elems, err := mesh.Elements()
	if err != nil {
		return nil, fmt.Errorf("meshio: snapshot: %w", err)
	}

	doc := &MeshDoc{
		Nodes:    make([][2]float64, len(nodes)),
		Elements: make([]ElementDoc, len(elems)),
	}
	for i, p := range nodes {
		doc.Nodes[i] = [2]float64{p.X, p.Y}
	}
	for i, e := range elems {
		ed := ElementDoc{Nodes: e.Nodes(), Area: e.Area()}
		if m := e.Material(); m != nil {
			ed.Material = m.Name
		}
		doc.Elements[i] = ed
	}
	return doc, nil
}
