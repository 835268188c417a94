package processor

import (
	"squish/internal/codec"
	"squish/pkg/imgformat"
)

// BuildPlan derives the concrete transform for one file from the run
// options and the file's original format. Pure: same inputs, same plan.
func BuildPlan(opts Options, original imgformat.Format) TransformPlan {
	if original == imgformat.SVG {
		// Vector passthrough: the optimizer handles everything,
		// no resize and no quality apply.
		return TransformPlan{OutputFormat: imgformat.SVG, Multipass: true}
	}

	out := opts.TargetFormat
	if opts.PreserveFormat && opts.TargetFormat == DefaultFormat {
		out = original
	}

	plan := TransformPlan{OutputFormat: out}

	if opts.Width > 0 || opts.Height > 0 {
		plan.Resize = &codec.ResizeSpec{
			Width:  opts.Width,
			Height: opts.Height,
			Mode:   opts.Aspect,
		}
	}

	switch out {
	case imgformat.PNG:
		plan.PNGLevel = pngLevel(opts.Quality)
	default:
		plan.Quality = opts.Quality
	}
	return plan
}

// pngLevel maps a 1-100 quality score onto the PNG encoder's 0-9
// compression level: quality 100 is level 0, quality 1 is level 9.
func pngLevel(quality int) int {
	level := (100 - quality) / 11
	if level < 0 {
		return 0
	}
	if level > 9 {
		return 9
	}
	return level
}
