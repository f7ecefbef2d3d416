package materials

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// PastelAlpha is the alpha channel assigned to randomly drawn material
// colors when no explicit color is provided.
const PastelAlpha = 0.3

// Package RNG for default colors. Guarded so concurrent material
// construction stays race-free.
var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(1))
)

// Seed reseeds the package RNG used for default material colors.
// Intended for deterministic tests and examples.
func Seed(seed int64) {
	rngMu.Lock()
	rng = rand.New(rand.NewSource(seed))
	rngMu.Unlock()
}

func randomPastel() Color {
	rngMu.Lock()
	defer rngMu.Unlock()
	return Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: PastelAlpha}
}

// Material is a named set of physical properties plus a plot color.
// All physical properties are non-negative; zero means "not set".
type Material struct {
	Name  string
	Color Color

	// Hydraulic / flow properties.
	HydraulicConductivity float64 // [m/s]
	SpecificStorage       float64 // [1/m]

	// Thermal and electrical properties.
	ThermalConductivity    float64 // [W/(m·K)]
	SpecificHeat           float64 // [J/(kg·K)]
	ElectricalConductivity float64 // [S/m]

	// Mechanical properties.
	BulkModulus      float64 // [Pa]
	ShearModulus     float64 // [Pa]
	SaturatedDensity float64 // [kg/m³]

	// Phase composition. Porosity and VoidRatio are kept consistent by
	// SetPorosity / SetVoidRatio.
	Porosity  float64 // n ∈ [0,1)
	VoidRatio float64 // e = n/(1-n)
}

// Option mutates a Material during New, returning an error on invalid
// values.
type Option func(*Material) error

// New constructs a Material with the given name and options. If no
// WithColor option is supplied, a random pastel color (alpha 0.3) is
// drawn from the package RNG.
func New(name string, opts ...Option) (*Material, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	m := &Material{Name: name, Color: randomPastel()}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithColor sets an explicit plot color.
func WithColor(c Color) Option {
	return func(m *Material) error {
		if !c.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidColor, c)
		}
		m.Color = c
		return nil
	}
}

func nonNegative(name string, v float64, set func(*Material, float64)) Option {
	return func(m *Material) error {
		if v < 0 {
			return fmt.Errorf("%w: %s = %g", ErrNegativeProperty, name, v)
		}
		set(m, v)
		return nil
	}
}

// WithHydraulicConductivity sets the saturated hydraulic conductivity [m/s].
func WithHydraulicConductivity(k float64) Option {
	return nonNegative("hydraulic conductivity", k, func(m *Material, v float64) { m.HydraulicConductivity = v })
}

// WithSpecificStorage sets the specific storage [1/m].
func WithSpecificStorage(ss float64) Option {
	return nonNegative("specific storage", ss, func(m *Material, v float64) { m.SpecificStorage = v })
}

// WithThermalConductivity sets the thermal conductivity [W/(m·K)].
func WithThermalConductivity(kt float64) Option {
	return nonNegative("thermal conductivity", kt, func(m *Material, v float64) { m.ThermalConductivity = v })
}

// WithSpecificHeat sets the specific heat capacity [J/(kg·K)].
func WithSpecificHeat(cp float64) Option {
	return nonNegative("specific heat", cp, func(m *Material, v float64) { m.SpecificHeat = v })
}

// WithElectricalConductivity sets the electrical conductivity [S/m].
func WithElectricalConductivity(ke float64) Option {
	return nonNegative("electrical conductivity", ke, func(m *Material, v float64) { m.ElectricalConductivity = v })
}

// WithBulkModulus sets the drained bulk modulus [Pa].
func WithBulkModulus(k float64) Option {
	return nonNegative("bulk modulus", k, func(m *Material, v float64) { m.BulkModulus = v })
}

// WithShearModulus sets the shear modulus [Pa].
func WithShearModulus(g float64) Option {
	return nonNegative("shear modulus", g, func(m *Material, v float64) { m.ShearModulus = v })
}

// WithSaturatedDensity sets the saturated density [kg/m³].
func WithSaturatedDensity(rho float64) Option {
	return nonNegative("saturated density", rho, func(m *Material, v float64) { m.SaturatedDensity = v })
}

// WithPorosity sets porosity and the matching void ratio.
func WithPorosity(n float64) Option {
	return func(m *Material) error { return m.SetPorosity(n) }
}

// WithVoidRatio sets void ratio and the matching porosity.
func WithVoidRatio(e float64) Option {
	return func(m *Material) error { return m.SetVoidRatio(e) }
}

// SetPorosity sets n ∈ [0,1) and recomputes VoidRatio = n/(1-n).
func (m *Material) SetPorosity(n float64) error {
	if n < 0 || n >= 1 {
		return fmt.Errorf("%w: porosity = %g (want [0,1))", ErrNegativeProperty, n)
	}
	m.Porosity = n
	m.VoidRatio = n / (1 - n)
	return nil
}

// SetVoidRatio sets e ≥ 0 and recomputes Porosity = e/(1+e).
func (m *Material) SetVoidRatio(e float64) error {
	if e < 0 {
		return fmt.Errorf("%w: void ratio = %g", ErrNegativeProperty, e)
	}
	m.VoidRatio = e
	m.Porosity = e / (1 + e)
	return nil
}

// YoungModulus returns E = 9KG/(3K+G) from the bulk and shear moduli,
// or 0 when either modulus is unset.
func (m *Material) YoungModulus() float64 {
	k, g := m.BulkModulus, m.ShearModulus
	if k <= 0 || g <= 0 {
		return 0
	}
	return 9 * k * g / (3*k + g)
}

// PoissonRatio returns ν = (3K-2G)/(6K+2G), or 0 when either modulus is
// unset.
func (m *Material) PoissonRatio() float64 {
	k, g := m.BulkModulus, m.ShearModulus
	if k <= 0 || g <= 0 {
		return 0
	}
	return (3*k - 2*g) / (6*k + 2*g)
}

// String summarizes the material for logs and mesh printouts.
func (m *Material) String() string {
	return fmt.Sprintf("Material(%s, k=%g m/s, color=%s)", m.Name, m.HydraulicConductivity, m.Color.Hex())
}
