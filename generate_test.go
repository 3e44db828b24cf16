package ggrgen

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

const wantSimpleCode = `v *= 0.05;
v = mod(v, 1.0);
float t;
{
    t = v * 1.0;
    fragColor.xyz = mix(vec3(1.0, 0.0, 0.0), vec3(0.0, 0.0, 1.0), t);
}
fragColor.x = pow(fragColor.x, 1.0/2.2);
fragColor.y = pow(fragColor.y, 1.0/2.2);
fragColor.z = pow(fragColor.z, 1.0/2.2);
fragColor.w = 1.0;`

func TestGenerateSingleSegment(t *testing.T) {
	g, err := DecodeFile(filepath.Join("testdata", "simple.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gc, err := Generate(g, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gc.Key != "test" {
		t.Fatalf("unexpected key %q", gc.Key)
	}
	if gc.Name != "Test" {
		t.Fatalf("unexpected name %q", gc.Name)
	}
	if gc.Code != wantSimpleCode {
		t.Fatalf("code mismatch:\n got %q\nwant %q", gc.Code, wantSimpleCode)
	}

	// The only segment is both first and last: one branch, no upper bound.
	if strings.Contains(gc.Code, "if (v <") {
		t.Fatalf("expected unconditional branch, got %q", gc.Code)
	}
	if strings.Count(gc.Code, "mix(") != 1 {
		t.Fatalf("expected exactly one interpolation, got %q", gc.Code)
	}
}

func TestGenerateSolidSegment(t *testing.T) {
	g := &Gradient{Name: "Solid", Segments: []Segment{
		{Left: 0, Mid: 0.5, Right: 1, Color1: SetColorRGBA(0.2, 0.4, 0.6, 1), Color2: SetColorRGBA(0.2, 0.4, 0.6, 1)},
	}}

	gc, err := Generate(g, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(gc.Code, "mix(") {
		t.Fatalf("solid segment must not interpolate: %q", gc.Code)
	}
	if !strings.Contains(gc.Code, "fragColor.xyz = vec3(0.2, 0.4, 0.6);") {
		t.Fatalf("expected fixed color assignment: %q", gc.Code)
	}
}

func TestGenerateSymmetricMidpoint(t *testing.T) {
	// Mid within 1e-6 of the segment center still counts as symmetric.
	g := &Gradient{Name: "Near", Segments: []Segment{
		{Left: 0, Mid: 0.5000001, Right: 1, Color1: SetColorRGBA(0, 0, 0, 1), Color2: SetColorRGBA(1, 1, 1, 1)},
	}}

	gc, err := Generate(g, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := strings.Count(gc.Code, "mix("); got != 1 {
		t.Fatalf("expected one interpolation branch, got %d: %q", got, gc.Code)
	}
}

func TestGenerateSplitMidpoint(t *testing.T) {
	g := &Gradient{Name: "Split", Segments: []Segment{
		{Left: 0, Mid: 0.25, Right: 1, Color1: SetColorRGBA(0, 0, 0, 1), Color2: SetColorRGBA(1, 1, 1, 1)},
	}}

	gc, err := Generate(g, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := `v *= 0.05;
v = mod(v, 1.0);
float t;
if (v < 0.25) {
    t = v * 4.0;
    fragColor.xyz = mix(vec3(0.0, 0.0, 0.0), vec3(0.75, 0.75, 0.75), t);
} else {
    t = (v - 0.25) * 1.3333333333333333;
    fragColor.xyz = mix(vec3(0.75, 0.75, 0.75), vec3(1.0, 1.0, 1.0), t);
}
fragColor.x = pow(fragColor.x, 1.0/2.2);
fragColor.y = pow(fragColor.y, 1.0/2.2);
fragColor.z = pow(fragColor.z, 1.0/2.2);
fragColor.w = 1.0;`
	if gc.Code != want {
		t.Fatalf("code mismatch:\n got %q\nwant %q", gc.Code, want)
	}
}

func TestGenerateCascade(t *testing.T) {
	g, err := DecodeFile(filepath.Join("testdata", "deep_sea.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gc, err := Generate(g, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Symmetric first segment, solid second, split last: three conditionals
	// (the split's second sub-branch is the unconditional fallback), three
	// interpolations, and the solid branch emits a bare vec3.
	if got := strings.Count(gc.Code, "if (v <"); got != 3 {
		t.Fatalf("expected 3 conditionals, got %d: %q", got, gc.Code)
	}
	if got := strings.Count(gc.Code, "mix("); got != 3 {
		t.Fatalf("expected 3 interpolations, got %d: %q", got, gc.Code)
	}
	if !strings.Contains(gc.Code, " else if (v < 0.75) {\n    fragColor.xyz = vec3(0.0, 0.3, 0.5);\n}") {
		t.Fatalf("expected solid middle branch: %q", gc.Code)
	}
	if !strings.Contains(gc.Code, "if (v < 0.9375) {") {
		t.Fatalf("expected split on the asymmetric midpoint: %q", gc.Code)
	}
	if !strings.HasSuffix(gc.Code, "fragColor.w = 1.0;") {
		t.Fatalf("expected gamma epilogue: %q", gc.Code)
	}
}

func TestGenerateReverse(t *testing.T) {
	g, err := DecodeFile(filepath.Join("testdata", "simple.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gc, err := Generate(g, &GenerateOptions{Reverse: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(gc.Code, "mix(vec3(0.0, 0.0, 1.0), vec3(1.0, 0.0, 0.0), t)") {
		t.Fatalf("expected swapped boundary colors: %q", gc.Code)
	}

	multi, err := DecodeFile(filepath.Join("testdata", "deep_sea.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rc, err := Generate(multi, &GenerateOptions{Reverse: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// The mirrored last segment leads the cascade with its mirrored midpoint.
	if !strings.Contains(rc.Code, "if (v < 0.0625) {") {
		t.Fatalf("expected mirrored split midpoint first: %q", rc.Code)
	}
}

func TestGenerateUnsupportedColorSpace(t *testing.T) {
	g, err := DecodeFile(filepath.Join("testdata", "bad_space.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	gc, err := Generate(g, nil)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if gc != nil {
		t.Fatalf("expected no output on failure, got %+v", gc)
	}
}

func TestGenerateZeroWidthSpan(t *testing.T) {
	// mid == left passes the parse-time order check but leaves the split
	// shape's first span with no width; the scale 1/(mid-left) would be
	// infinite and the emitted literal invalid GLSL.
	input := "GIMP Gradient\nName: Degenerate\n1\n0.25 0.25 1.0 1 0 0 1 0 0 1 1 0 0\n"
	g, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	gc, err := Generate(g, nil)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if gc != nil {
		t.Fatalf("expected no output on failure, got %+v", gc)
	}

	// Same for mid == right on the second sub-branch.
	g = &Gradient{Name: "Degenerate", Segments: []Segment{
		{Left: 0, Mid: 0.75, Right: 0.75, Color1: SetColorRGBA(0, 0, 0, 1), Color2: SetColorRGBA(1, 1, 1, 1)},
	}}
	if _, err := Generate(g, nil); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}

	// A zero-width segment with differing colors hits the symmetric shape.
	g = &Gradient{Name: "Point", Segments: []Segment{
		{Left: 0.5, Mid: 0.5, Right: 0.5, Color1: SetColorRGBA(0, 0, 0, 1), Color2: SetColorRGBA(1, 1, 1, 1)},
	}}
	if _, err := Generate(g, nil); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}

	// Solid zero-width segments never divide and still generate.
	g = &Gradient{Name: "Dot", Segments: []Segment{
		{Left: 0.5, Mid: 0.5, Right: 0.5, Color1: SetColorRGBA(1, 1, 1, 1), Color2: SetColorRGBA(1, 1, 1, 1)},
	}}
	if _, err := Generate(g, nil); err != nil {
		t.Fatalf("generate solid zero-width segment: %v", err)
	}
}

func TestGenerateStrictBlend(t *testing.T) {
	g := &Gradient{Name: "Blend", Segments: []Segment{
		{Left: 0, Mid: 0.5, Right: 1, Color1: SetColorRGBA(0, 0, 0, 1), Color2: SetColorRGBA(1, 1, 1, 1), Blend: 3},
	}}

	if _, err := Generate(g, nil); err != nil {
		t.Fatalf("default generate must accept any blend code: %v", err)
	}
	if _, err := Generate(g, &GenerateOptions{StrictBlend: true}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported with strict blend, got %v", err)
	}
}

func TestEncodeShader(t *testing.T) {
	g, err := DecodeFile(filepath.Join("testdata", "simple.ggr"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeShader(&buf, g, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != wantSimpleCode {
		t.Fatalf("encode mismatch:\n got %q\nwant %q", buf.String(), wantSimpleCode)
	}
}

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Test", "test"},
		{"My Gradient! 2", "myGradient2"},
		{"Deep Sea", "deepSea"},
		{"full_saturation Spectrum CCW", "full_saturationSpectrumCcw"},
		// Letters after an underscore or digit inside a non-first word are
		// title-cased too.
		{"shade b_c", "shadeB_C"},
		{"shade a2b", "shadeA2B"},
		// A leading delimiter takes the lowercase slot, matching the
		// raw-index camel-casing of the split words.
		{"  Leading Space", "LeadingSpace"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := deriveKey(tt.name); got != tt.want {
			t.Fatalf("deriveKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGLSLFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{4, "4.0"},
		{0.05, "0.05"},
		{-2, "-2.0"},
		{1e-7, "1e-07"},
	}

	for _, tt := range tests {
		if got := glslFloat(tt.in); got != tt.want {
			t.Fatalf("glslFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
