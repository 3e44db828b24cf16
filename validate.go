package ggrgen

import "fmt"

// IssueLevel represents severity of a validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected segment or field
}

// Validate inspects a gradient and returns advisory issues. It never blocks
// generation: Generate applies its own fatal checks, and everything reported
// here besides the color-space error still produces working output.
func Validate(g *Gradient, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	if len(g.Segments) == 0 {
		return append(out, Issue{Level: IssueError, Code: "empty_gradient", Message: "gradient has no segments"})
	}
	if g.Name == "" {
		out = append(out, Issue{Level: IssueWarning, Code: "empty_name", Message: "gradient name is empty"})
	}

	for i, seg := range g.Segments {
		path := segPath(i)

		if seg.ColorSpace != colorSpaceRGB {
			out = append(out, Issue{
				Level:   IssueError,
				Code:    "unsupported_color_space",
				Message: fmt.Sprintf("color space %d is not RGB, generation will fail", seg.ColorSpace),
				Path:    path,
			})
		}

		if !vopt.DisableBlendCheck && seg.Blend != blendLinear {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "nonlinear_blend",
				Message: fmt.Sprintf("blend type %d, generated code interpolates linearly", seg.Blend),
				Path:    path,
			})
		}

		if !vopt.DisableRangeCheck {
			out = append(out, validateRange(seg, path)...)
		}
	}

	if !vopt.DisableCoverageCheck {
		out = append(out, validateCoverage(g.Segments)...)
	}

	return out
}

// validateRange checks that a segment's colors and breakpoints stay in [0,1]
// and that mid lies within the segment.
func validateRange(seg Segment, path string) []Issue {
	var out []Issue

	if !seg.Color1.inUnitRange() || !seg.Color2.inUnitRange() {
		out = append(out, Issue{Level: IssueWarning, Code: "color_out_of_range", Message: "color channel outside [0,1]", Path: path})
	}
	if seg.Left < 0 || seg.Right > 1 {
		out = append(out, Issue{Level: IssueWarning, Code: "breakpoint_out_of_range", Message: "breakpoint outside [0,1]", Path: path})
	}
	if seg.Mid < seg.Left || seg.Mid > seg.Right {
		out = append(out, Issue{Level: IssueWarning, Code: "mid_outside_segment", Message: "mid breakpoint outside [left,right]", Path: path})
	}

	return out
}

// validateCoverage checks that segments tile the [0,1] domain without gaps
// or overlaps. Uncovered spans fall through to the final fallback branch,
// which usually is not the intended color.
func validateCoverage(segs []Segment) []Issue {
	var out []Issue

	if segs[0].Left != 0 {
		out = append(out, Issue{Level: IssueWarning, Code: "domain_start", Message: "domain does not start at 0", Path: segPath(0)})
	}
	if segs[len(segs)-1].Right != 1 {
		out = append(out, Issue{Level: IssueWarning, Code: "domain_end", Message: "domain does not end at 1", Path: segPath(len(segs) - 1)})
	}

	for i := 1; i < len(segs); i++ {
		if segs[i].Left != segs[i-1].Right {
			out = append(out, Issue{Level: IssueWarning, Code: "coverage_gap", Message: "segment does not start at previous segment's right boundary", Path: segPath(i)})
		}
	}

	return out
}

// segPath formats a segment index for issue paths.
func segPath(i int) string {
	return fmt.Sprintf("segment %d", i)
}
