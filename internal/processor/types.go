package processor

import (
	"squish/internal/codec"
	"squish/pkg/imgformat"
)

// DefaultFormat is the target format used when --format is not given.
// Preserve-format only applies while the target equals this default.
const DefaultFormat = imgformat.JPG

// Options holds one run's settings, built once from CLI input and passed
// explicitly to every stage.
type Options struct {
	TargetFormat   imgformat.Format
	Quality        int // 1-100
	Width          int // 0 = keep original
	Height         int // 0 = keep original
	Aspect         codec.FitMode
	OutputRoot     string
	PreserveFormat bool
	ShowTable      bool
}

// ImageRef is one discovered image. RelativeDir is the containing
// directory relative to the walk root, used to mirror the directory
// structure under the output root.
type ImageRef struct {
	AbsolutePath string
	DisplayPath  string // path relative to the walk root, for reporting
	RelativeDir  string
	Format       imgformat.Format
}

// TransformPlan is the concrete transform for one file, derived from the
// run options and the file's original format.
type TransformPlan struct {
	OutputFormat imgformat.Format
	Resize       *codec.ResizeSpec
	Quality      int  // jpg and webp
	PNGLevel     int  // png compression level 0-9
	Multipass    bool // svg
}

// FileOutcome records the result of processing one file.
type FileOutcome struct {
	Index         int
	SourcePath    string
	DisplayPath   string
	OriginalBytes int64
	OutputPath    string
	OutputBytes   int64
	MetaRemoved   int
	Err           error
}

// Reduction returns the size reduction percentage for a successful outcome.
func (o FileOutcome) Reduction() float64 {
	if o.OriginalBytes == 0 {
		return 0
	}
	return float64(o.OriginalBytes-o.OutputBytes) / float64(o.OriginalBytes) * 100
}

// RunTotals aggregates outcomes across one run. Failed files contribute to
// Attempted only; byte totals cover successes.
type RunTotals struct {
	Attempted     int
	Succeeded     int
	OriginalBytes int64
	OutputBytes   int64
	MetaRemoved   int
}

// Reduction returns the aggregate size reduction percentage.
func (t RunTotals) Reduction() float64 {
	if t.OriginalBytes == 0 {
		return 0
	}
	return float64(t.OriginalBytes-t.OutputBytes) / float64(t.OriginalBytes) * 100
}

// Failed returns the number of files that hit a per-file error.
func (t RunTotals) Failed() int {
	return t.Attempted - t.Succeeded
}

// ProgressUpdate is one delta event for the progress display.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ErrorDelta     int
	MetaDelta      int
	BytesInDelta   int64
	BytesOutDelta  int64
}
