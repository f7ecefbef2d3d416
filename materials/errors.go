package materials

import "errors"

// Sentinel errors for material construction and mutation.
var (
	// ErrEmptyName indicates New was called with an empty or blank name.
	ErrEmptyName = errors.New("materials: material name must not be empty")
	// ErrInvalidColor indicates a color channel outside [0,1], a non-finite
	// channel, or an unparsable hex string.
	ErrInvalidColor = errors.New("materials: invalid color")
	// ErrNegativeProperty indicates an attempt to set a negative physical
	// property.
	ErrNegativeProperty = errors.New("materials: physical properties must be non-negative")
)
