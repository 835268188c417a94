package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"squish/internal/codec"
	"squish/pkg/imgformat"
)

// processFile applies one plan to one file. Errors are recorded on the
// outcome, never escalated: a bad file must not stop the batch.
func processFile(ref ImageRef, index int, opts Options) FileOutcome {
	outcome := FileOutcome{
		Index:       index,
		SourcePath:  ref.AbsolutePath,
		DisplayPath: ref.DisplayPath,
	}

	srcInfo, err := os.Stat(ref.AbsolutePath)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.OriginalBytes = srcInfo.Size()

	plan := BuildPlan(opts, ref.Format)

	destDir := filepath.Join(opts.OutputRoot, ref.RelativeDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		outcome.Err = err
		return outcome
	}

	base := filepath.Base(ref.AbsolutePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	destPath := filepath.Join(destDir, stem+"."+plan.OutputFormat.Ext())
	outcome.OutputPath = destPath

	if plan.OutputFormat == imgformat.SVG {
		err = codec.OptimizeSVG(ref.AbsolutePath, destPath)
	} else {
		// Check the magic bytes up front so a mislabeled or truncated
		// file surfaces a clear error instead of a decoder panic.
		if _, ok, sniffErr := imgformat.SniffFile(ref.AbsolutePath); sniffErr != nil {
			err = sniffErr
		} else if !ok {
			err = fmt.Errorf("unrecognized image data in %s", ref.DisplayPath)
		} else {
			outcome.MetaRemoved = codec.CountExifTags(ref.AbsolutePath)
			err = codec.Raster(codec.RasterJob{
				SourcePath: ref.AbsolutePath,
				DestPath:   destPath,
				Format:     plan.OutputFormat,
				Quality:    plan.Quality,
				PNGLevel:   plan.PNGLevel,
				Resize:     plan.Resize,
			})
		}
	}
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outInfo, err := os.Stat(destPath)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.OutputBytes = outInfo.Size()
	return outcome
}
