package imgformat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported image format. The string value doubles as
// the output file extension.
type Format string

const (
	JPG  Format = "jpg"
	PNG  Format = "png"
	WebP Format = "webp"
	SVG  Format = "svg"
)

func (f Format) String() string {
	return string(f)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// IsRaster reports whether the format is pixel-based (everything but SVG).
func (f Format) IsRaster() bool {
	return f != SVG
}

// FromPath classifies a filesystem entry by extension, case-insensitively.
// "jpeg" normalizes to JPG so format comparisons see a single spelling.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg", "jpeg":
		return JPG, true
	case "png":
		return PNG, true
	case "webp":
		return WebP, true
	case "svg":
		return SVG, true
	default:
		return "", false
	}
}

// ParseTarget parses a user-supplied target format. SVG is not a valid
// target; SVG inputs always pass through the vector path.
func ParseTarget(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return JPG, nil
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want jpg, png, or webp)", s)
	}
}

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
	riffSig = []byte("RIFF")
	webpTag = []byte("WEBP")
)

// DetectHeader inspects the first 12 bytes of a file for known raster
// signatures. SVG is text and is not detected here.
func DetectHeader(header []byte) (Format, bool) {
	if hasPrefix(header, jpegSig) {
		return JPG, true
	}
	if hasPrefix(header, pngSig) {
		return PNG, true
	}
	if len(header) >= 12 && hasPrefix(header, riffSig) && hasPrefix(header[8:], webpTag) {
		return WebP, true
	}
	return "", false
}

// SniffFile reads the first 12 bytes of a file and detects its raster format.
func SniffFile(path string) (Format, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	header := make([]byte, 12)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", false, err
	}
	kind, ok := DetectHeader(header[:n])
	return kind, ok, nil
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
