package processor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"squish/pkg/imgformat"
)

// Discover walks root depth-first and returns every optimizable image,
// tagged with its containing directory relative to root. Entries are
// visited in sorted order so discovery and report numbering are stable
// across filesystems. An unreadable directory aborts discovery: partial
// results could silently skip images.
//
// If outputRoot resolves to a directory inside root, it is pruned from the
// walk so a second run does not re-optimize its own output.
func Discover(root, outputRoot string) ([]ImageRef, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("discover: %s is not a directory", root)
	}

	var outputAbs string
	if outputRoot != "" {
		if abs, err := filepath.Abs(outputRoot); err == nil && abs != absRoot && isWithin(abs, absRoot) {
			outputAbs = abs
		}
	}

	var refs []ImageRef
	fsys := os.DirFS(absRoot)
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if outputAbs != "" && filepath.Join(absRoot, filepath.FromSlash(path)) == outputAbs {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		format, ok := imgformat.FromPath(path)
		if !ok {
			return nil
		}

		rel := filepath.FromSlash(path)
		relDir := filepath.Dir(rel)
		if relDir == "." {
			relDir = ""
		}
		refs = append(refs, ImageRef{
			AbsolutePath: filepath.Join(absRoot, rel),
			DisplayPath:  rel,
			RelativeDir:  relDir,
			Format:       format,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	return refs, nil
}

func isWithin(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
