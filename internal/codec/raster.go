// Package codec wraps the external image libraries: raster decode / resize /
// re-encode, SVG minification, and EXIF inspection.
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/muesli/smartcrop"
	"github.com/muesli/smartcrop/nfnt"
	_ "golang.org/x/image/webp"

	"squish/pkg/imgformat"
)

// FitMode selects how a source image is reconciled with a requested box.
type FitMode string

const (
	FitInside  FitMode = "scale"   // Fit within the box, keep aspect, never upscale.
	FitCover   FitMode = "crop"    // Fill the box exactly, crop the overflow.
	FitStretch FitMode = "stretch" // Resize to the box, ignore aspect.
)

// ResizeSpec is a requested target box. A zero Width or Height means
// "derive from the other dimension, preserving aspect ratio".
type ResizeSpec struct {
	Width  int
	Height int
	Mode   FitMode
}

// RasterJob describes one raster transform: decode SourcePath, optionally
// resize, and re-encode to DestPath in Format.
type RasterJob struct {
	SourcePath string
	DestPath   string
	Format     imgformat.Format
	Quality    int // 1-100, used for jpg and webp
	PNGLevel   int // 0-9 compression level, used for png
	Resize     *ResizeSpec
}

// Raster runs one raster transform end to end.
func Raster(job RasterJob) error {
	img, err := imaging.Open(job.SourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if job.Resize != nil {
		img = resizeImage(img, *job.Resize)
	}

	out, err := os.Create(job.DestPath)
	if err != nil {
		return err
	}

	switch job.Format {
	case imgformat.JPG:
		err = imaging.Encode(out, img, imaging.JPEG, imaging.JPEGQuality(job.Quality))
	case imgformat.WebP:
		err = webp.Encode(out, img, &webp.Options{Quality: float32(job.Quality)})
	case imgformat.PNG:
		err = encodePNG(out, img, job.PNGLevel)
	default:
		err = fmt.Errorf("unsupported raster format %q", job.Format)
	}
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", job.Format, err)
	}

	return out.Close()
}

func resizeImage(img image.Image, spec ResizeSpec) image.Image {
	w, h := spec.Width, spec.Height

	switch spec.Mode {
	case FitCover:
		if w > 0 && h > 0 {
			return coverCrop(img, w, h)
		}
	case FitStretch:
		if w > 0 && h > 0 {
			return imaging.Resize(img, w, h, imaging.Lanczos)
		}
	}

	// FitInside, or a single-dimension box for any mode: scale down
	// preserving aspect ratio, never upscaling.
	bounds := img.Bounds()
	if w > 0 && h > 0 {
		return imaging.Fit(img, w, h, imaging.Lanczos)
	}
	if w > 0 && bounds.Dx() > w {
		return imaging.Resize(img, w, 0, imaging.Lanczos)
	}
	if h > 0 && bounds.Dy() > h {
		return imaging.Resize(img, 0, h, imaging.Lanczos)
	}
	return img
}

// coverCrop fills a w×h box exactly, choosing the crop window with the
// highest local detail instead of a fixed center anchor.
func coverCrop(img image.Image, w, h int) image.Image {
	analyzer := smartcrop.NewAnalyzer(nfnt.NewDefaultResizer())
	window, err := analyzer.FindBestCrop(img, w, h)
	if err != nil {
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	}
	return imaging.Resize(imaging.Crop(img, window), w, h, imaging.Lanczos)
}

// encodePNG writes img as PNG at the given 0-9 compression level. Levels
// above zero additionally quantize to a 256-color palette for further size
// reduction; level zero keeps full color fidelity.
func encodePNG(out *os.File, img image.Image, level int) error {
	if level > 0 {
		img = quantizeImage(img)
	}
	enc := png.Encoder{CompressionLevel: pngCompression(level)}
	return enc.Encode(out, img)
}

func quantizeImage(img image.Image) image.Image {
	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(color.Palette, 0, 256), img)
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)
	return paletted
}

// pngCompression maps the 0-9 level onto the encoder's discrete settings.
func pngCompression(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.BestSpeed
	case level <= 5:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
