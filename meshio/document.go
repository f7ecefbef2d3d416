package meshio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vcfem/geom"
	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshgen"
)

// ErrBadDocument indicates a structurally invalid scenario document.
var ErrBadDocument = errors.New("meshio: invalid document")

// Document is a mesh scenario: the full input side of a PolyMesh2D.
type Document struct {
	Title     string        `yaml:"title,omitempty"`
	Vertices  [][2]float64  `yaml:"vertices"`
	Boundary  []int         `yaml:"boundary"`
	Materials []MaterialDoc `yaml:"materials,omitempty"`
	Regions   []RegionDoc   `yaml:"regions,omitempty"`
	MeshEdges [][2]int      `yaml:"mesh_edges,omitempty"`
	Grid      *GridDoc      `yaml:"grid,omitempty"`
}

// MaterialDoc serializes one material palette entry.
type MaterialDoc struct {
	Name                   string          `yaml:"name"`
	Color                  materials.Color `yaml:"color"`
	HydraulicConductivity  float64         `yaml:"hydraulic_conductivity,omitempty"`
	SpecificStorage        float64         `yaml:"specific_storage,omitempty"`
	ThermalConductivity    float64         `yaml:"thermal_conductivity,omitempty"`
	SpecificHeat           float64         `yaml:"specific_heat,omitempty"`
	ElectricalConductivity float64         `yaml:"electrical_conductivity,omitempty"`
	BulkModulus            float64         `yaml:"bulk_modulus,omitempty"`
	ShearModulus           float64         `yaml:"shear_modulus,omitempty"`
	SaturatedDensity       float64         `yaml:"saturated_density,omitempty"`
	Porosity               float64         `yaml:"porosity,omitempty"`
}

// RegionDoc assigns a material (by name) to a vertex-index loop.
type RegionDoc struct {
	Material string `yaml:"material"`
	Vertices []int  `yaml:"vertices"`
}

// GridDoc carries the Generate settings of a scenario.
type GridDoc struct {
	NX              int      `yaml:"nx"`
	NY              int      `yaml:"ny"`
	Jitter          *float64 `yaml:"jitter,omitempty"`
	EdgeSpacing     *float64 `yaml:"edge_spacing,omitempty"`
	QuadratureOrder *int     `yaml:"quadrature_order,omitempty"`
	Seed            *int64   `yaml:"seed,omitempty"`
}

// Options converts the optional grid settings into meshgen options.
func (g *GridDoc) Options() []meshgen.Option {
	if g == nil {
		return nil
	}
	var opts []meshgen.Option
	if g.Jitter != nil {
		opts = append(opts, meshgen.WithJitter(*g.Jitter))
	}
	if g.EdgeSpacing != nil {
		opts = append(opts, meshgen.WithEdgeSpacing(*g.EdgeSpacing))
	}
	if g.QuadratureOrder != nil {
		opts = append(opts, meshgen.WithQuadratureOrder(*g.QuadratureOrder))
	}
	if g.Seed != nil {
		opts = append(opts, meshgen.WithSeed(*g.Seed))
	}
	return opts
}

// Load decodes a scenario document, rejecting unknown fields.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("meshio: decode: %w", err)
	}
	return &doc, nil
}

// LoadFile loads a scenario document from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save encodes any meshio document value as YAML.
func Save(w io.Writer, doc interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("meshio: encode: %w", err)
	}
	return enc.Close()
}

// SaveFile writes a meshio document to disk.
func SaveFile(path string, doc interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("meshio: create: %w", err)
	}
	if err := Save(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Build rebuilds the mesh and material palette described by the
// document. The mesh is returned ungenerated; call Generate with
// d.Grid settings to mesh it.
func (d *Document) Build() (*meshgen.PolyMesh2D, map[string]*materials.Material, error) {
	if len(d.Vertices) < 3 {
		return nil, nil, fmt.Errorf("%w: need at least 3 vertices", ErrBadDocument)
	}
	if len(d.Boundary) < 3 {
		return nil, nil, fmt.Errorf("%w: need a boundary loop of at least 3 indices", ErrBadDocument)
	}

	mesh := meshgen.NewPolyMesh2D()
	pts := make([]geom.Point, len(d.Vertices))
	for i, v := range d.Vertices {
		pts[i] = geom.Pt(v[0], v[1])
	}
	mesh.AddVertices(pts...)
	if err := mesh.InsertBoundaryVertices(0, d.Boundary...); err != nil {
		return nil, nil, fmt.Errorf("meshio: boundary: %w", err)
	}

	palette := make(map[string]*materials.Material, len(d.Materials))
	for _, md := range d.Materials {
		if _, dup := palette[md.Name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate material %q", ErrBadDocument, md.Name)
		}
		opts := []materials.Option{materials.WithColor(md.Color)}
		if md.HydraulicConductivity > 0 {
			opts = append(opts, materials.WithHydraulicConductivity(md.HydraulicConductivity))
		}
		if md.SpecificStorage > 0 {
			opts = append(opts, materials.WithSpecificStorage(md.SpecificStorage))
		}
		if md.ThermalConductivity > 0 {
			opts = append(opts, materials.WithThermalConductivity(md.ThermalConductivity))
		}
		if md.SpecificHeat > 0 {
			opts = append(opts, materials.WithSpecificHeat(md.SpecificHeat))
		}
		if md.ElectricalConductivity > 0 {
			opts = append(opts, materials.WithElectricalConductivity(md.ElectricalConductivity))
		}
		if md.BulkModulus > 0 {
			opts = append(opts, materials.WithBulkModulus(md.BulkModulus))
		}
		if md.ShearModulus > 0 {
			opts = append(opts, materials.WithShearModulus(md.ShearModulus))
		}
		if md.SaturatedDensity > 0 {
			opts = append(opts, materials.WithSaturatedDensity(md.SaturatedDensity))
		}
		if md.Porosity > 0 {
			opts = append(opts, materials.WithPorosity(md.Porosity))
		}
		m, err := materials.New(md.Name, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("meshio: material %q: %w", md.Name, err)
		}
		palette[md.Name] = m
	}

	for i, rd := range d.Regions {
		m, ok := palette[rd.Material]
		if !ok {
			return nil, nil, fmt.Errorf("%w: region %d references unknown material %q", ErrBadDocument, i, rd.Material)
		}
		if err := mesh.AddMaterialRegion(rd.Vertices, m); err != nil {
			return nil, nil, fmt.Errorf("meshio: region %d: %w", i, err)
		}
	}

	if len(d.MeshEdges) > 0 {
		if err := mesh.AddMeshEdges(d.MeshEdges...); err != nil {
			return nil, nil, fmt.Errorf("meshio: mesh edges: %w", err)
		}
	}
	return mesh, palette, nil
}
