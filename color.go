package ggrgen

// Color represents an RGBA color. Channels are comparable by value, which is
// what the solid-segment check relies on.
type Color struct {
	R float64 `json:"r" yaml:"r"` // Red channel component
	G float64 `json:"g" yaml:"g"` // Green channel component
	B float64 `json:"b" yaml:"b"` // Blue channel component
	A float64 `json:"a" yaml:"a"` // Alpha channel component
}

// SetColorRGBA creates a Color from RGBA values.
func SetColorRGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// inUnitRange reports whether all channels lie in [0,1].
func (c Color) inUnitRange() bool {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
