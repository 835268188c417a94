package codec

import (
	"fmt"
	"os"

	"github.com/tdewolff/minify/v2"
	minifysvg "github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

// svgMaxPasses bounds the multipass loop; in practice the minifier
// converges after one or two passes.
const svgMaxPasses = 5

// OptimizeSVG minifies an SVG file, re-running the minifier until the
// output stops shrinking, and writes the result to destPath.
func OptimizeSVG(srcPath, destPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	m := minify.New()
	m.AddFunc(svgMediaType, minifysvg.Minify)

	out := data
	for pass := 0; pass < svgMaxPasses; pass++ {
		res, err := m.Bytes(svgMediaType, out)
		if err != nil {
			return fmt.Errorf("minify svg: %w", err)
		}
		if len(res) >= len(out) {
			break
		}
		out = res
	}

	return os.WriteFile(destPath, out, 0o644)
}
