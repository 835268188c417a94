package processor

import (
	"fmt"

	"squish/internal/codec"
	"squish/pkg/imgformat"
)

// ParseAspect parses the --aspect flag value. "false" selects the
// non-aspect-preserving stretch mode.
func ParseAspect(s string) (codec.FitMode, error) {
	switch s {
	case "scale":
		return codec.FitInside, nil
	case "crop":
		return codec.FitCover, nil
	case "false":
		return codec.FitStretch, nil
	default:
		return "", fmt.Errorf("unsupported aspect mode %q (want scale, crop, or false)", s)
	}
}

// Validate rejects invalid options before any file I/O happens.
func (o Options) Validate() error {
	switch o.TargetFormat {
	case imgformat.JPG, imgformat.PNG, imgformat.WebP:
	default:
		return fmt.Errorf("unsupported target format %q", o.TargetFormat)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", o.Quality)
	}
	switch o.Aspect {
	case codec.FitInside, codec.FitCover, codec.FitStretch:
	default:
		return fmt.Errorf("unsupported aspect mode %q", o.Aspect)
	}
	if o.Width < 0 {
		return fmt.Errorf("width must be positive, got %d", o.Width)
	}
	if o.Height < 0 {
		return fmt.Errorf("height must be positive, got %d", o.Height)
	}
	if o.OutputRoot == "" {
		return fmt.Errorf("output folder must not be empty")
	}
	return nil
}
