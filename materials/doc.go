// Package materials defines the material model for VCFEM analyses:
// named materials carrying hydraulic, thermal, electrical, and elastic
// properties, plus a plot color used by the viz package.
//
// # Materials
//
// A Material is created with New and configured through functional
// options:
//
//	sand, err := materials.New("sand",
//	    materials.WithColor(materials.MustHex("#d5b60a")),
//	    materials.WithHydraulicConductivity(1e-4),
//	    materials.WithPorosity(0.35),
//	)
//
// When no color is given, a random pastel RGBA with alpha 0.3 is drawn
// from the package RNG, matching the long-standing default of the
// original tool. Call Seed to make that draw deterministic in tests.
//
// Physical properties are plain float64 fields with validating options;
// all must be non-negative. Porosity and void ratio are coupled through
// the usual soil-mechanics relations
//
//	n = e / (1 + e),   e = n / (1 - n)
//
// and the drained elastic moduli through
//
//	E = 9KG / (3K + G),   ν = (3K - 2G) / (6K + 2G)
//
// # Colors
//
// Color is an RGBA quadruple of float64 channels in [0,1]. It validates
// on construction and marshals to/from "#rrggbbaa" hex strings in YAML,
// so material palettes survive a meshio round trip.
//
// # Errors
//
//	ErrEmptyName        - New called with a blank name.
//	ErrInvalidColor     - channel outside [0,1] or not finite, bad hex.
//	ErrNegativeProperty - a physical property set to a negative value.
package materials
