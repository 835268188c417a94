package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const verboseSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!-- generated by an editor with lots of cruft -->
<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">
    <!-- a red square -->
    <rect x="10.000000" y="10.000000" width="80" height="80" fill="#ff0000" />

    <circle cx="50" cy="50" r="20" fill="#00ff00"></circle>
</svg>
`

func TestOptimizeSVGShrinks(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.svg")
	dest := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(src, []byte(verboseSVG), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := OptimizeSVG(src, dest); err != nil {
		t.Fatalf("optimize: %v", err)
	}

	out, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(out) >= len(verboseSVG) {
		t.Errorf("output not smaller: %d >= %d", len(out), len(verboseSVG))
	}
	if !strings.Contains(string(out), "<svg") {
		t.Errorf("output does not look like svg: %q", out)
	}
	if strings.Contains(string(out), "cruft") {
		t.Error("comments survived minification")
	}
}

func TestOptimizeSVGConverges(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "logo.svg")
	first := filepath.Join(dir, "first.svg")
	second := filepath.Join(dir, "second.svg")
	if err := os.WriteFile(src, []byte(verboseSVG), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := OptimizeSVG(src, first); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	if err := OptimizeSVG(first, second); err != nil {
		t.Fatalf("second pass: %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if string(a) != string(b) {
		t.Error("multipass output should be stable on re-optimization")
	}
}

func TestOptimizeSVGMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := OptimizeSVG(filepath.Join(dir, "absent.svg"), filepath.Join(dir, "out.svg")); err == nil {
		t.Fatal("expected error for missing source")
	}
}
