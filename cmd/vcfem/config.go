package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/vcfem/materials"
	"github.com/katalvlaran/vcfem/meshio"
)

// Scenario TOML schema:
//
//	title = "dam"
//
//	[mesh]
//	vertices = [[0.0, 0.0], [88.5, 65.0]]
//	boundary = [0, 6, 1, 2, 3]
//	edges    = [[1, 5], [2, 4]]
//	nx = 44
//	ny = 16
//	jitter = 0.2        # optional
//	seed = 1            # optional
//	edge_spacing = 1.0  # optional
//	quadrature_order = 2
//
//	[[material]]
//	name = "gravel"
//	color = "#8a7f6d"
//	hydraulic_conductivity = 1e-3
//	porosity = 0.3
//	regions = [[0, 6, 1, 5], [2, 3, 4]]
//
//	[flow]
//	enabled = true
//	[[flow.head]]           # fixed head on all nodes along a segment
//	from = [0.0, 0.0]
//	to = [0.0, 20.0]
//	value = 20.0
//
//	[output]
//	dir = "out"
//	mesh_yaml = "mesh.yaml"
//	mesh_png = "mesh.png"
//	heads_png = "heads.png"
//	hist_png = "hist.png"
type fileConfig struct {
	Title     string           `toml:"title"`
	Mesh      meshConfig       `toml:"mesh"`
	Materials []materialConfig `toml:"material"`
	Flow      flowConfig       `toml:"flow"`
	Output    outputConfig     `toml:"output"`
}

type meshConfig struct {
	Vertices        [][]float64 `toml:"vertices"`
	Boundary        []int       `toml:"boundary"`
	Edges           [][]int     `toml:"edges"`
	NX              int         `toml:"nx"`
	NY              int         `toml:"ny"`
	Jitter          float64     `toml:"jitter"`
	Seed            int64       `toml:"seed"`
	EdgeSpacing     float64     `toml:"edge_spacing"`
	QuadratureOrder int         `toml:"quadrature_order"`
}

type materialConfig struct {
	Name                   string  `toml:"name"`
	Color                  string  `toml:"color"`
	HydraulicConductivity  float64 `toml:"hydraulic_conductivity"`
	SpecificStorage        float64 `toml:"specific_storage"`
	ThermalConductivity    float64 `toml:"thermal_conductivity"`
	SpecificHeat           float64 `toml:"specific_heat"`
	ElectricalConductivity float64 `toml:"electrical_conductivity"`
	BulkModulus            float64 `toml:"bulk_modulus"`
	ShearModulus           float64 `toml:"shear_modulus"`
	SaturatedDensity       float64 `toml:"saturated_density"`
	Porosity               float64 `toml:"porosity"`
	Regions                [][]int `toml:"regions"`
}

type headConfig struct {
	From  []float64 `toml:"from"`
	To    []float64 `toml:"to"`
	Value float64   `toml:"value"`
}

type flowConfig struct {
	Enabled bool         `toml:"enabled"`
	Heads   []headConfig `toml:"head"`
}

type outputConfig struct {
	Dir      string `toml:"dir"`
	MeshYAML string `toml:"mesh_yaml"`
	MeshPNG  string `toml:"mesh_png"`
	HeadsPNG string `toml:"heads_png"`
	HistPNG  string `toml:"hist_png"`
}

// scenario is the validated, meshio-backed form of a fileConfig.
type scenario struct {
	Title  string
	Doc    *meshio.Document
	Flow   flowConfig
	Output outputConfig
}

func defaultOutputConfig() outputConfig {
	return outputConfig{
		Dir:      ".",
		MeshYAML: "mesh.yaml",
		MeshPNG:  "mesh.png",
		HeadsPNG: "heads.png",
		HistPNG:  "hist.png",
	}
}

// loadScenario reads and validates a scenario TOML file.
func loadScenario(path string) (*scenario, error) {
	var raw fileConfig
	raw.Output = defaultOutputConfig()
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("load scenario: unknown key %q", undec[0].String())
	}

	if len(raw.Mesh.Vertices) < 3 {
		return nil, fmt.Errorf("load scenario: mesh.vertices needs at least 3 entries")
	}
	if len(raw.Mesh.Boundary) < 3 {
		return nil, fmt.Errorf("load scenario: mesh.boundary needs at least 3 indices")
	}
	if raw.Mesh.NX < 1 || raw.Mesh.NY < 1 {
		return nil, fmt.Errorf("load scenario: mesh.nx and mesh.ny must be positive")
	}

	doc := &meshio.Document{
		Title:    strings.TrimSpace(raw.Title),
		Boundary: raw.Mesh.Boundary,
		Grid:     &meshio.GridDoc{NX: raw.Mesh.NX, NY: raw.Mesh.NY},
	}
	for i, v := range raw.Mesh.Vertices {
		if len(v) != 2 {
			return nil, fmt.Errorf("load scenario: mesh.vertices[%d] must be [x, y]", i)
		}
		doc.Vertices = append(doc.Vertices, [2]float64{v[0], v[1]})
	}
	for i, e := range raw.Mesh.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("load scenario: mesh.edges[%d] must be [a, b]", i)
		}
		doc.MeshEdges = append(doc.MeshEdges, [2]int{e[0], e[1]})
	}
	if meta.IsDefined("mesh", "jitter") {
		j := raw.Mesh.Jitter
		doc.Grid.Jitter = &j
	}
	if meta.IsDefined("mesh", "seed") {
		s := raw.Mesh.Seed
		doc.Grid.Seed = &s
	}
	if meta.IsDefined("mesh", "edge_spacing") {
		es := raw.Mesh.EdgeSpacing
		doc.Grid.EdgeSpacing = &es
	}
	if meta.IsDefined("mesh", "quadrature_order") {
		q := raw.Mesh.QuadratureOrder
		doc.Grid.QuadratureOrder = &q
	}

	for i, mc := range raw.Materials {
		if strings.TrimSpace(mc.Name) == "" {
			return nil, fmt.Errorf("load scenario: material[%d] needs a name", i)
		}
		md := meshio.MaterialDoc{
			Name:                   mc.Name,
			HydraulicConductivity:  mc.HydraulicConductivity,
			SpecificStorage:        mc.SpecificStorage,
			ThermalConductivity:    mc.ThermalConductivity,
			SpecificHeat:           mc.SpecificHeat,
			ElectricalConductivity: mc.ElectricalConductivity,
			BulkModulus:            mc.BulkModulus,
			ShearModulus:           mc.ShearModulus,
			SaturatedDensity:       mc.SaturatedDensity,
			Porosity:               mc.Porosity,
		}
		if mc.Color != "" {
			c, err := materials.ParseHex(mc.Color)
			if err != nil {
				return nil, fmt.Errorf("load scenario: material %q: %w", mc.Name, err)
			}
			md.Color = c
		} else {
			md.Color = materials.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}
		}
		doc.Materials = append(doc.Materials, md)
		for _, loop := range mc.Regions {
			doc.Regions = append(doc.Regions, meshio.RegionDoc{Material: mc.Name, Vertices: loop})
		}
	}

	if raw.Flow.Enabled {
		if len(raw.Flow.Heads) == 0 {
			return nil, fmt.Errorf("load scenario: flow.enabled requires at least one [[flow.head]]")
		}
		for i, h := range raw.Flow.Heads {
			if len(h.From) != 2 || len(h.To) != 2 {
				return nil, fmt.Errorf("load scenario: flow.head[%d] needs from = [x, y] and to = [x, y]", i)
			}
		}
	}

	return &scenario{
		Title:  doc.Title,
		Doc:    doc,
		Flow:   raw.Flow,
		Output: raw.Output,
	}, nil
}
