// SPDX-License-Identifier: MIT

package meshgen

import "errors"

// Sentinel errors for mesh construction and generation.
var (
	// ErrVertexIndex indicates a vertex index outside [0, NumVertices).
	ErrVertexIndex = errors.New("meshgen: vertex index out of range")
	// ErrBoundaryIndex indicates a boundary insertion position outside
	// [0, len(boundary)].
	ErrBoundaryIndex = errors.New("meshgen: boundary insertion position out of range")
	// ErrNoBoundary indicates Generate was called before a boundary loop
	// of at least 3 vertices was defined.
	ErrNoBoundary = errors.New("meshgen: boundary loop requires at least 3 vertices")
	// ErrDegenerateBoundary indicates the boundary loop encloses
	// (near-)zero area.
	ErrDegenerateBoundary = errors.New("meshgen: boundary loop encloses zero area")
	// ErrBadGrid indicates non-positive seed grid dimensions.
	ErrBadGrid = errors.New("meshgen: seed grid dimensions must be positive")
	// ErrBadOption indicates an option value outside its documented range.
	ErrBadOption = errors.New("meshgen: option value out of range")
	// ErrEmptySeeds indicates seed filtering left nothing to mesh.
	ErrEmptySeeds = errors.New("meshgen: no usable seed points inside the domain")
	// ErrNotGenerated indicates a query that requires Generate first.
	ErrNotGenerated = errors.New("meshgen: mesh has not been generated")
	// ErrRegionMesh indicates a MaterialRegion2D bound to a different mesh.
	ErrRegionMesh = errors.New("meshgen: material region belongs to a different mesh")
	// ErrNilMaterial indicates a region constructed without a material.
	ErrNilMaterial = errors.New("meshgen: material region requires a material")
)
