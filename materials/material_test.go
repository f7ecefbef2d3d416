package materials_test

import (
	"testing"

	"github.com/katalvlaran/vcfem/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestNew_EmptyName verifies the ErrEmptyName sentinel.
func TestNew_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := materials.New(name)
		assert.ErrorIs(t, err, materials.ErrEmptyName, "name %q", name)
	}
}

// TestNew_DefaultColor checks that an unseeded color is a valid pastel
// with alpha 0.3 and that Seed makes the draw reproducible.
func TestNew_DefaultColor(t *testing.T) {
	materials.Seed(42)
	a, err := materials.New("sand")
	require.NoError(t, err)
	assert.True(t, a.Color.Valid())
	assert.InDelta(t, materials.PastelAlpha, a.Color.A, 1e-12)

	materials.Seed(42)
	b, err := materials.New("sand")
	require.NoError(t, err)
	assert.Equal(t, a.Color, b.Color, "same seed must give same color")
}

// TestNew_Options covers valid option application and validation errors.
func TestNew_Options(t *testing.T) {
	m, err := materials.New("clay",
		materials.WithColor(materials.MustHex("#a07855")),
		materials.WithHydraulicConductivity(1e-9),
		materials.WithSpecificStorage(1e-4),
		materials.WithThermalConductivity(1.1),
		materials.WithSaturatedDensity(1900),
		materials.WithPorosity(0.5),
	)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, m.HydraulicConductivity)
	assert.InDelta(t, 1.0, m.VoidRatio, 1e-12, "e = n/(1-n) with n=0.5")

	cases := []struct {
		name string
		opt  materials.Option
		err  error
	}{
		{"NegativeConductivity", materials.WithHydraulicConductivity(-1), materials.ErrNegativeProperty},
		{"NegativeDensity", materials.WithSaturatedDensity(-5), materials.ErrNegativeProperty},
		{"PorosityTooLarge", materials.WithPorosity(1.0), materials.ErrNegativeProperty},
		{"NegativeVoidRatio", materials.WithVoidRatio(-0.1), materials.ErrNegativeProperty},
		{"BadColor", materials.WithColor(materials.Color{R: 1.2}), materials.ErrInvalidColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := materials.New("x", tc.opt)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMaterial_PhaseRelations checks the porosity⇄void-ratio coupling in
// both directions.
func TestMaterial_PhaseRelations(t *testing.T) {
	m, err := materials.New("silt")
	require.NoError(t, err)

	require.NoError(t, m.SetVoidRatio(0.6))
	assert.InDelta(t, 0.375, m.Porosity, 1e-12, "n = e/(1+e)")

	require.NoError(t, m.SetPorosity(0.25))
	assert.InDelta(t, 1.0/3, m.VoidRatio, 1e-12, "e = n/(1-n)")
}

// TestMaterial_ElasticModuli checks E and ν derived from K and G.
func TestMaterial_ElasticModuli(t *testing.T) {
	m, err := materials.New("rock",
		materials.WithBulkModulus(50e9),
		materials.WithShearModulus(30e9),
	)
	require.NoError(t, err)
	// E = 9KG/(3K+G), ν = (3K-2G)/(6K+2G)
	assert.InDelta(t, 75e9, m.YoungModulus(), 1e3)
	assert.InDelta(t, 0.25, m.PoissonRatio(), 1e-12)

	unset, err := materials.New("void")
	require.NoError(t, err)
	assert.Zero(t, unset.YoungModulus())
	assert.Zero(t, unset.PoissonRatio())
}

// TestParseHex covers 6- and 8-digit forms and malformed input.
func TestParseHex(t *testing.T) {
	c, err := materials.ParseHex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.G, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9, "missing alpha defaults to 1")

	c, err = materials.ParseHex("00ff0080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)

	for _, bad := range []string{"", "#12345", "#xyzxyz", "#1234567"} {
		_, err = materials.ParseHex(bad)
		assert.ErrorIs(t, err, materials.ErrInvalidColor, "input %q", bad)
	}
}

// TestColor_YAMLRoundTrip marshals a color to a hex scalar and back.
func TestColor_YAMLRoundTrip(t *testing.T) {
	orig := materials.MustHex("#8a7f6dff")
	out, err := yaml.Marshal(orig)
	require.NoError(t, err)
	assert.Equal(t, "'#8a7f6dff'\n", string(out))

	var back materials.Color
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, orig, back)
}
