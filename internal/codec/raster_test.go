package codec

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"squish/pkg/imgformat"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x * y) % 256),
				A: 0xff,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func transform(t *testing.T, srcW, srcH int, format imgformat.Format, resize *ResizeSpec) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dest := filepath.Join(dir, "out."+format.Ext())
	writeTestPNG(t, src, srcW, srcH)

	err := Raster(RasterJob{
		SourcePath: src,
		DestPath:   dest,
		Format:     format,
		Quality:    80,
		PNGLevel:   1,
		Resize:     resize,
	})
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	return dest
}

func outputDims(t *testing.T, path string) (int, int) {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRasterStretchExactBox(t *testing.T) {
	dest := transform(t, 40, 20, imgformat.JPG, &ResizeSpec{Width: 10, Height: 5, Mode: FitStretch})
	if w, h := outputDims(t, dest); w != 10 || h != 5 {
		t.Errorf("dims = %dx%d, want 10x5", w, h)
	}
}

func TestRasterFitNeverUpscales(t *testing.T) {
	dest := transform(t, 40, 20, imgformat.JPG, &ResizeSpec{Width: 200, Height: 200, Mode: FitInside})
	if w, h := outputDims(t, dest); w != 40 || h != 20 {
		t.Errorf("dims = %dx%d, want original 40x20", w, h)
	}
}

func TestRasterFitInsideBox(t *testing.T) {
	dest := transform(t, 40, 20, imgformat.JPG, &ResizeSpec{Width: 20, Height: 20, Mode: FitInside})
	if w, h := outputDims(t, dest); w != 20 || h != 10 {
		t.Errorf("dims = %dx%d, want 20x10", w, h)
	}
}

func TestRasterFitSingleDimension(t *testing.T) {
	dest := transform(t, 40, 20, imgformat.JPG, &ResizeSpec{Width: 20, Mode: FitInside})
	if w, h := outputDims(t, dest); w != 20 || h != 10 {
		t.Errorf("dims = %dx%d, want 20x10", w, h)
	}
}

func TestRasterCoverFillsBox(t *testing.T) {
	dest := transform(t, 64, 32, imgformat.JPG, &ResizeSpec{Width: 16, Height: 16, Mode: FitCover})
	if w, h := outputDims(t, dest); w != 16 || h != 16 {
		t.Errorf("dims = %dx%d, want 16x16", w, h)
	}
}

func TestRasterPNGReencode(t *testing.T) {
	dest := transform(t, 32, 32, imgformat.PNG, nil)
	if w, h := outputDims(t, dest); w != 32 || h != 32 {
		t.Errorf("dims = %dx%d, want 32x32", w, h)
	}
}

func TestRasterRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	writeTestPNG(t, src, 8, 8)

	err := Raster(RasterJob{
		SourcePath: src,
		DestPath:   filepath.Join(dir, "out.gif"),
		Format:     imgformat.Format("gif"),
		Quality:    80,
	})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRasterMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	err := Raster(RasterJob{
		SourcePath: filepath.Join(dir, "absent.png"),
		DestPath:   filepath.Join(dir, "out.jpg"),
		Format:     imgformat.JPG,
		Quality:    80,
	})
	if err == nil {
		t.Fatal("expected decode error")
	}
}
