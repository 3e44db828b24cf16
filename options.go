package ggrgen

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableOrderCheck disables validation that each segment satisfies
	// left <= mid <= right and that segments ascend along the domain.
	// The branch cascade silently produces wrong output on misordered
	// input, so the check is on by default.
	DisableOrderCheck bool
}

// GenerateOptions controls shader code generation.
type GenerateOptions struct {
	// Reverse generates the gradient read right-to-left.
	Reverse bool
	// StrictBlend rejects segments whose blend mode is not linear.
	// By default any blend code is accepted and linear interpolation is
	// generated regardless; see Validate for the advisory warning.
	StrictBlend bool
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableRangeCheck disables [0,1] range checks for colors and
	// breakpoints, and the mid-within-segment check.
	DisableRangeCheck bool
	// DisableCoverageCheck disables gap/overlap checks between consecutive
	// segments and checks that the domain spans [0,1].
	DisableCoverageCheck bool
	// DisableBlendCheck disables warnings for non-linear blend modes.
	DisableBlendCheck bool
}

// RenderOptions controls printer output formatting.
type RenderOptions struct {
	// Indent is the indentation before the key line (default is four spaces).
	Indent string
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the GenerateOptions.
func (o *GenerateOptions) normalize() GenerateOptions {
	if o == nil {
		return GenerateOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}

// normalize normalizes the RenderOptions.
func (o *RenderOptions) normalize() RenderOptions {
	if o == nil {
		return RenderOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}
