/*
Package ggrgen parses GIMP gradient (.ggr) files and generates shader source
that reproduces the same color ramp as a function of a scalar input.

Parsing produces an immutable Gradient; generation walks its segments
(optionally reversed) and emits a branch cascade of color interpolation with
a fixed gamma-decode epilogue. The whole transform is pure and deterministic:
text in, text out, safe for unrestricted parallel use across inputs.

Reader example:

	g, err := ggrgen.DecodeFile("sunrise.ggr", nil)
	if err != nil {
		// handle error
	}

Generator example:

	gc, err := ggrgen.Generate(g, &ggrgen.GenerateOptions{Reverse: false})
	if err != nil {
		// handle error
	}
	_ = gc.Key  // identifier-safe key derived from the gradient name
	_ = gc.Code // generated shader source

Validator example:

	issues := ggrgen.Validate(g, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Printer example:

	out, err := ggrgen.RenderString(gc, nil)
	if err != nil {
		// handle error
	}

Only linear blending and the RGB color space are supported. A non-RGB color
space fails generation with ErrUnsupported; non-linear blend codes generate
linear output by default and are reported by Validate, or rejected when
GenerateOptions.StrictBlend is set.
*/
package ggrgen
