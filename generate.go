package ggrgen

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Blend and color-space codes from the GGR format.
const (
	blendLinear   = 0
	colorSpaceRGB = 0
)

// midpointEps is the tolerance for treating mid as the segment center.
const midpointEps = 1e-6

// shaderPreface scales the raw coordinate and wraps it into [0,1). Callers
// are expected to pass an unnormalized spatial or temporal coordinate that
// the gradient samples periodically.
const shaderPreface = "v *= 0.05;\nv = mod(v, 1.0);\nfloat t;\n"

// shaderEpilogue applies the gamma decode and forces opaque alpha.
const shaderEpilogue = "\nfragColor.x = pow(fragColor.x, 1.0/2.2);\n" +
	"fragColor.y = pow(fragColor.y, 1.0/2.2);\n" +
	"fragColor.z = pow(fragColor.z, 1.0/2.2);\n" +
	"fragColor.w = 1.0;"

// Generate converts a gradient into its shader code record. It is a pure
// function of its inputs; the gradient is never mutated.
func Generate(g *Gradient, opt *GenerateOptions) (*GradientCode, error) {
	var buf bytes.Buffer
	if err := EncodeShader(&buf, g, opt); err != nil {
		return nil, err
	}

	return &GradientCode{Key: deriveKey(g.Name), Name: g.Name, Code: buf.String()}, nil
}

// EncodeShader writes the gradient's shader source to writer: the input
// normalization preface, one branch per segment chained as an
// if / else if / else cascade, and the gamma epilogue.
func EncodeShader(w io.Writer, g *Gradient, opt *GenerateOptions) error {
	gopt := opt.normalize()

	src := g
	if gopt.Reverse {
		src = g.Reverse()
	}

	sw := &shaderWriter{w: w}
	if err := sw.writeString(shaderPreface); err != nil {
		return err
	}

	count := len(src.Segments)
	for i, seg := range src.Segments {
		if gopt.StrictBlend && seg.Blend != blendLinear {
			return fmt.Errorf("%w: blend type %d", ErrUnsupported, seg.Blend)
		}
		if seg.ColorSpace != colorSpaceRGB {
			return fmt.Errorf("%w: color space %d", ErrUnsupported, seg.ColorSpace)
		}

		if i > 0 {
			if err := sw.writeString(" else "); err != nil {
				return err
			}
		}
		if err := sw.writeSegment(seg, i == 0, i+1 >= count); err != nil {
			return err
		}
	}

	return sw.writeString(shaderEpilogue)
}

// shaderWriter emits GLSL fragments to an underlying writer.
type shaderWriter struct {
	w io.Writer // Writer to write to
}

// writeSegment emits one branch of the cascade, picking the cheapest code
// shape for the segment: a fixed color, a single interpolation when mid sits
// at the segment center, or two interpolations around an asymmetric midpoint.
func (w *shaderWriter) writeSegment(seg Segment, first, last bool) error {
	switch {
	case seg.Color1 == seg.Color2:
		return w.writeSolid(seg, last)
	case math.Abs((seg.Right+seg.Left)/2-seg.Mid) < midpointEps:
		return w.writeLinear(seg, first, last)
	default:
		return w.writeSplit(seg, first, last)
	}
}

// writeSolid emits a fixed-color branch.
func (w *shaderWriter) writeSolid(seg Segment, last bool) error {
	if err := w.openBranch(seg.Right, last); err != nil {
		return err
	}
	if err := w.printf("    fragColor.xyz = %s;\n", glslVec3(seg.Color1)); err != nil {
		return err
	}

	return w.writeString("}")
}

// writeLinear emits a single interpolation over the whole segment width.
func (w *shaderWriter) writeLinear(seg Segment, first, last bool) error {
	if seg.Right == seg.Left {
		return errZeroWidthSpan(seg)
	}
	if err := w.openBranch(seg.Right, last); err != nil {
		return err
	}
	if err := w.writeParam(seg.Left, 1/(seg.Right-seg.Left), first); err != nil {
		return err
	}
	if err := w.writeMix(seg.Color1, seg.Color2); err != nil {
		return err
	}

	return w.writeString("}")
}

// writeSplit emits two interpolation sub-branches around an asymmetric
// midpoint, passing through the color the full-width interpolation would
// reach at mid.
func (w *shaderWriter) writeSplit(seg Segment, first, last bool) error {
	if seg.Mid == seg.Left || seg.Right == seg.Mid {
		return errZeroWidthSpan(seg)
	}
	if err := w.printf("if (v < %s) {\n", glslFloat(seg.Mid)); err != nil {
		return err
	}
	if err := w.writeParam(seg.Left, 1/(seg.Mid-seg.Left), first); err != nil {
		return err
	}

	t1 := (seg.Mid - seg.Left) / (seg.Right - seg.Left)
	t2 := 1 - t1
	mid := Color{
		R: seg.Color1.R*t1 + seg.Color2.R*t2,
		G: seg.Color1.G*t1 + seg.Color2.G*t2,
		B: seg.Color1.B*t1 + seg.Color2.B*t2,
	}

	if err := w.writeMix(seg.Color1, mid); err != nil {
		return err
	}
	if err := w.writeString("} else "); err != nil {
		return err
	}
	if err := w.openBranch(seg.Right, last); err != nil {
		return err
	}
	if err := w.writeParam(seg.Mid, 1/(seg.Right-seg.Mid), false); err != nil {
		return err
	}
	if err := w.writeMix(mid, seg.Color2); err != nil {
		return err
	}

	return w.writeString("}")
}

// errZeroWidthSpan reports a degenerate segment whose interpolation span has
// no width. The scale factor 1/width would be infinite and the emitted
// literal would not be valid GLSL, so generation fails instead.
func errZeroWidthSpan(seg Segment) error {
	return fmt.Errorf("%w: zero-width interpolation span at %v", ErrFormat, seg.Left)
}

// openBranch opens a conditional on the segment's right boundary, or an
// unconditional fallback for the final branch so the cascade covers the
// whole domain regardless of floating-point edge rounding.
func (w *shaderWriter) openBranch(right float64, last bool) error {
	if last {
		return w.writeString("{\n")
	}

	return w.printf("if (v < %s) {\n", glslFloat(right))
}

// writeParam emits the normalized parameter t for a span starting at from.
// The first branch omits the offset since the domain starts at zero.
func (w *shaderWriter) writeParam(from, scale float64, first bool) error {
	if first {
		return w.printf("    t = v * %s;\n", glslFloat(scale))
	}

	return w.printf("    t = (v - %s) * %s;\n", glslFloat(from), glslFloat(scale))
}

// writeMix emits a linear interpolation between two colors at parameter t.
func (w *shaderWriter) writeMix(c1, c2 Color) error {
	return w.printf("    fragColor.xyz = mix(%s, %s, t);\n", glslVec3(c1), glslVec3(c2))
}

// printf writes a formatted string to the writer.
func (w *shaderWriter) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(w.w, format, args...)
	return err
}

// writeString writes a string to the writer.
func (w *shaderWriter) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// glslFloat formats v as a GLSL float literal: shortest round-trip
// representation with a decimal point forced on integral values so the
// literal stays float-typed.
func glslFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// glslVec3 formats the RGB channels of a color as a vec3 constructor.
func glslVec3(c Color) string {
	return fmt.Sprintf("vec3(%s, %s, %s)", glslFloat(c.R), glslFloat(c.G), glslFloat(c.B))
}

// nonIdent matches runs of characters that cannot appear in an identifier.
var nonIdent = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// deriveKey converts a gradient display name into an identifier-safe key:
// the name is split on non-identifier characters, the first word is
// lowercased, subsequent words are title-cased, and the words are
// concatenated with no separator.
func deriveKey(name string) string {
	var b strings.Builder
	for i, word := range nonIdent.Split(name, -1) {
		if word == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(titleWord(word))
	}

	return b.String()
}

// titleWord title-cases an ASCII identifier word: a letter following a
// non-letter (underscore or digit) is upper-cased, any other letter is
// lower-cased.
func titleWord(word string) string {
	b := []byte(word)
	prev := false
	for i, c := range b {
		letter := isASCIILetter(c)
		switch {
		case letter && !prev:
			b[i] = asciiUpper(c)
		case letter:
			b[i] = asciiLower(c)
		}
		prev = letter
	}

	return string(b)
}

// isASCIILetter reports whether b is an ASCII letter.
func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// asciiUpper converts a byte to uppercase.
func asciiUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// asciiLower converts a byte to lowercase.
func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
