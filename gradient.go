package ggrgen

// Segment represents one piece of a gradient's [0,1] domain.
// Breakpoints satisfy Left <= Mid <= Right (enforced at parse time unless
// the order check is disabled).
type Segment struct {
	Left       float64 `json:"left" yaml:"left"`             // Left domain breakpoint
	Mid        float64 `json:"mid" yaml:"mid"`               // Midpoint breakpoint
	Right      float64 `json:"right" yaml:"right"`           // Right domain breakpoint
	Color1     Color   `json:"color1" yaml:"color1"`         // Color at Left
	Color2     Color   `json:"color2" yaml:"color2"`         // Color at Right
	Blend      int     `json:"blend" yaml:"blend"`           // Blend mode code (0 = linear)
	ColorSpace int     `json:"colorSpace" yaml:"colorSpace"` // Color space code (0 = RGB)
	ColorType  int     `json:"colorType" yaml:"colorType"`   // Color type code, unused by generation
}

// Gradient represents a parsed GIMP gradient: a display name and segments
// ordered ascending along the domain.
type Gradient struct {
	Name     string    `json:"name" yaml:"name"`         // Display name from the Name: line
	Segments []Segment `json:"segments" yaml:"segments"` // Segments in domain order
}

// GradientCode represents generated shader code for a gradient.
type GradientCode struct {
	Key  string `json:"key" yaml:"key"`   // Identifier-safe key derived from Name
	Name string `json:"name" yaml:"name"` // Original display name
	Code string `json:"code" yaml:"code"` // Generated shader source
}

// Reverse returns a mirrored copy of the gradient read right-to-left:
// segment order is reversed, breakpoints are mapped x -> 1-x with Left and
// Right swapped to keep them ordered, and boundary colors are swapped.
// Reversing twice restores the original segment order and colors; breakpoints
// round-trip exactly whenever 1-x is exactly representable, and only to
// within rounding error otherwise.
func (g *Gradient) Reverse() *Gradient {
	segs := make([]Segment, len(g.Segments))
	for i, s := range g.Segments {
		s.Left, s.Right = 1-s.Right, 1-s.Left
		s.Mid = 1 - s.Mid
		s.Color1, s.Color2 = s.Color2, s.Color1
		segs[len(segs)-1-i] = s
	}

	return &Gradient{Name: g.Name, Segments: segs}
}
