package meshgen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vcfem/meshgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrate sums |A_e|·Σ w_k·f(x_k + c_e) over all elements of m.
func integrate(t *testing.T, m *meshgen.PolyMesh2D, f func(x, y float64) float64) float64 {
	t.Helper()
	elems, err := m.Elements()
	require.NoError(t, err)
	var total float64
	for _, e := range elems {
		area := math.Abs(e.Area())
		c := e.Centroid()
		pts := e.QuadPoints()
		wts := e.QuadWeights()
		require.Equal(t, len(pts), len(wts))
		for k, p := range pts {
			total += area * wts[k] * f(p.X+c.X, p.Y+c.Y)
		}
	}
	return total
}

// TestQuadrature_WeightNormalization checks Σw = 1 and vanishing first
// central moments on every element of a jittered mesh.
func TestQuadrature_WeightNormalization(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.Generate(8, 8, meshgen.WithJitter(0.2), meshgen.WithSeed(5)))

	elems, err := m.Elements()
	require.NoError(t, err)
	for i, e := range elems {
		wts := e.QuadWeights()
		pts := e.QuadPoints()

		var sw, swx, swy float64
		for k := range wts {
			sw += wts[k]
			swx += wts[k] * pts[k].X
			swy += wts[k] * pts[k].Y
		}
		assert.InDelta(t, 1.0, sw, 1e-9, "element %d: Σw", i)
		assert.InDelta(t, 0.0, swx, 1e-9, "element %d: Σw·x", i)
		assert.InDelta(t, 0.0, swy, 1e-9, "element %d: Σw·y", i)
	}
}

// TestQuadrature_ExactMonomials reproduces the original tool's
// rectangular-mesh integration check: the element rules must integrate
// 1, x, y, x², y², and xy exactly over the 20×20 domain.
func TestQuadrature_ExactMonomials(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.Generate(16, 16, meshgen.WithJitter(0.2), meshgen.WithSeed(7)))

	cases := []struct {
		name string
		f    func(x, y float64) float64
		want float64
	}{
		{"One", func(x, y float64) float64 { return 1 }, 400},
		{"X", func(x, y float64) float64 { return x }, 4000},
		{"Y", func(x, y float64) float64 { return y }, 4000},
		{"XX", func(x, y float64) float64 { return x * x }, 20 * 8000 / 3.0},
		{"YY", func(x, y float64) float64 { return y * y }, 20 * 8000 / 3.0},
		{"XY", func(x, y float64) float64 { return x * y }, 40000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := integrate(t, m, tc.f)
			assert.InDelta(t, tc.want, got, math.Abs(tc.want)*1e-6)
		})
	}
}

// TestQuadrature_DamArea mirrors the original dam example: the zeroth
// moment over all elements reproduces the section area.
func TestQuadrature_DamArea(t *testing.T) {
	m, _, _ := damMesh(t)
	require.NoError(t, m.Generate(44, 16, meshgen.WithJitter(0.2), meshgen.WithSeed(1)))

	got := integrate(t, m, func(x, y float64) float64 { return 1 })
	assert.InDelta(t, damArea, got, damArea*1e-5)
}

// TestQuadrature_Order1 checks that first-order rules still normalize
// and integrate linears, without demanding quadratic exactness.
func TestQuadrature_Order1(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.Generate(4, 4, meshgen.WithJitter(0), meshgen.WithQuadratureOrder(1)))

	assert.InDelta(t, 400.0, integrate(t, m, func(x, y float64) float64 { return 1 }), 1e-6)
	assert.InDelta(t, 4000.0, integrate(t, m, func(x, y float64) float64 { return x }), 1e-6)
}

// TestQuadrature_PointLayout checks the node/midpoint/centroid layout.
func TestQuadrature_PointLayout(t *testing.T) {
	m := squareMesh(t)
	require.NoError(t, m.Generate(2, 2, meshgen.WithJitter(0)))

	elems, err := m.Elements()
	require.NoError(t, err)
	for _, e := range elems {
		pts := e.QuadPoints()
		require.Len(t, pts, 2*e.NumNodes()+1)
		last := pts[len(pts)-1]
		assert.InDelta(t, 0.0, last.X, 1e-12, "last point is the centroid")
		assert.InDelta(t, 0.0, last.Y, 1e-12)
	}
}
