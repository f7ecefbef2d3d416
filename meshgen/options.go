// SPDX-License-Identifier: MIT

package meshgen

import "fmt"

// Documented defaults for Generate.
const (
	// DefaultJitterFactor is the seed jitter as a fraction of the grid
	// spacing; 0 gives a structured (deterministic) seed lattice.
	DefaultJitterFactor = 0.2
	// DefaultEdgeSpacingFactor is the spacing of edge-aligned seed pairs
	// along preserved edges, in grid spacings.
	DefaultEdgeSpacingFactor = 1.0
	// DefaultMergeToleranceFactor scales the bounding-box diagonal to the
	// absolute node-merge tolerance.
	DefaultMergeToleranceFactor = 1e-8
	// DefaultQuadratureOrder is the polynomial order the element
	// quadrature reproduces exactly.
	DefaultQuadratureOrder = 2
	// DefaultSeed seeds the jitter RNG; generation is reproducible by
	// default.
	DefaultSeed = 1
)

// Options configures mesh generation.
//   - JitterFactor: seed jitter in [0, 0.5) of the grid spacing.
//   - EdgeSpacingFactor: spacing (> 0) of mirrored seed pairs along
//     preserved edges, in grid spacings.
//   - MergeToleranceFactor: node-merge tolerance (> 0) as a fraction of
//     the bounding-box diagonal.
//   - QuadratureOrder: 1 (linear) or 2 (quadratic) exactness.
//   - Seed: RNG seed for jitter.
type Options struct {
	JitterFactor         float64
	EdgeSpacingFactor    float64
	MergeToleranceFactor float64
	QuadratureOrder      int
	Seed                 int64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		JitterFactor:         DefaultJitterFactor,
		EdgeSpacingFactor:    DefaultEdgeSpacingFactor,
		MergeToleranceFactor: DefaultMergeToleranceFactor,
		QuadratureOrder:      DefaultQuadratureOrder,
		Seed:                 DefaultSeed,
	}
}

// validate rejects values outside the documented ranges.
func (o Options) validate() error {
	if o.JitterFactor < 0 || o.JitterFactor >= 0.5 {
		return fmt.Errorf("%w: JitterFactor = %g (want [0, 0.5))", ErrBadOption, o.JitterFactor)
	}
	if o.EdgeSpacingFactor <= 0 {
		return fmt.Errorf("%w: EdgeSpacingFactor = %g (want > 0)", ErrBadOption, o.EdgeSpacingFactor)
	}
	if o.MergeToleranceFactor <= 0 {
		return fmt.Errorf("%w: MergeToleranceFactor = %g (want > 0)", ErrBadOption, o.MergeToleranceFactor)
	}
	if o.QuadratureOrder != 1 && o.QuadratureOrder != 2 {
		return fmt.Errorf("%w: QuadratureOrder = %d (want 1 or 2)", ErrBadOption, o.QuadratureOrder)
	}
	return nil
}

// Option mutates Options during Generate.
type Option func(*Options)

// WithJitter sets the seed jitter factor.
func WithJitter(f float64) Option { return func(o *Options) { o.JitterFactor = f } }

// WithEdgeSpacing sets the edge seed-pair spacing factor.
func WithEdgeSpacing(f float64) Option { return func(o *Options) { o.EdgeSpacingFactor = f } }

// WithMergeTolerance sets the node-merge tolerance factor.
func WithMergeTolerance(f float64) Option { return func(o *Options) { o.MergeToleranceFactor = f } }

// WithQuadratureOrder sets the quadrature exactness order (1 or 2).
func WithQuadratureOrder(n int) Option { return func(o *Options) { o.QuadratureOrder = n } }

// WithSeed sets the jitter RNG seed.
func WithSeed(s int64) Option { return func(o *Options) { o.Seed = s } }
