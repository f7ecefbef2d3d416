package materials

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color with float64 channels in [0,1].
type Color struct {
	R, G, B, A float64
}

// Valid reports whether every channel is finite and within [0,1].
func (c Color) Valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// RGBA converts to an 8-bit image/color.RGBA for rendering.
func (c Color) RGBA() color.RGBA {
	to8 := func(v float64) uint8 { return uint8(math.Round(v * 255)) }
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Hex formats the color as "#rrggbbaa".
func (c Color) Hex() string {
	r := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r.R, r.G, r.B, r.A)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa" (leading '#' optional).
// Missing alpha defaults to 1.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	a := uint8(0xff)
	switch len(h) {
	case 6:
		if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	case 8:
		if _, err := fmt.Sscanf(h, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustHex is ParseHex that panics on error; intended for palette
// literals in examples and tests.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalYAML encodes the color as a hex string.
func (c Color) MarshalYAML() (interface{}, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidColor, c)
	}
	return c.Hex(), nil
}

// UnmarshalYAML decodes a "#rrggbb[aa]" hex scalar.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
