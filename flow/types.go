// SPDX-License-Identifier: MIT

// Package flow: option and sentinel-error definitions.
package flow

import "errors"

// Sentinel errors for seepage analysis.
var (
	// ErrNoMesh indicates the analysis has no mesh attached.
	ErrNoMesh = errors.New("flow: no mesh attached")
	// ErrMeshNotGenerated indicates the attached mesh holds no generated
	// elements.
	ErrMeshNotGenerated = errors.New("flow: mesh has not been generated")
	// ErrNoMaterial indicates an element without a usable hydraulic
	// conductivity.
	ErrNoMaterial = errors.New("flow: element has no material with hydraulic conductivity")
	// ErrNodeIndex indicates a node index outside the generated mesh.
	ErrNodeIndex = errors.New("flow: node index out of range")
	// ErrElementIndex indicates an element index outside the generated mesh.
	ErrElementIndex = errors.New("flow: element index out of range")
	// ErrNoHeadBC indicates Solve was called without any fixed head.
	ErrNoHeadBC = errors.New("flow: at least one fixed-head boundary condition is required")
	// ErrSingularSystem indicates the reduced conductivity matrix is
	// numerically singular.
	ErrSingularSystem = errors.New("flow: conductivity system is singular")
	// ErrNotSolved indicates a result query before a successful Solve.
	ErrNotSolved = errors.New("flow: analysis has not been solved")
)

// DefaultTolerance is the reciprocal-condition cutoff below which the
// reduced system is treated as singular.
const DefaultTolerance = 1e-12

// Options configures Solve.
//   - Tolerance: reciprocal-condition cutoff for the fallback LU solve
//     (default 1e-12).
type Options struct {
	Tolerance float64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// normalize fills zero fields with defaults.
func (o *Options) normalize() {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
}

// Option mutates Options during Solve.
type Option func(*Options)

// WithTolerance sets the singularity cutoff.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }
