package capability

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

const copyPattern = "**/*"

// CopyTree copies every file under sourceDir in assets into destination,
// creating destination and any intermediate directories first. Existing
// files are overwritten, so calling it twice leaves the same file set.
func CopyTree(assets fs.FS, sourceDir, destination string) error {
	if err := os.MkdirAll(destination, 0o755); err != nil {
		return NewError(KindIO, fmt.Sprintf("creating directory %s", destination), err)
	}

	src, err := fs.Sub(assets, sourceDir)
	if err != nil {
		return NewError(KindIO, fmt.Sprintf("opening %s", sourceDir), err)
	}

	files, err := listFiles(src)
	if err != nil {
		return NewError(KindIO, fmt.Sprintf("listing %s", sourceDir), err)
	}

	slog.Debug("copying tree", "source", sourceDir, "destination", destination, "count", len(files))

	for _, file := range files {
		if err := copyFile(src, file, destination); err != nil {
			return NewError(KindIO, "an error occurred while copying the folder", err)
		}
	}

	return nil
}

func listFiles(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, copyPattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", copyPattern, err)
	}

	var result []string
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		result = append(result, m)
	}
	slices.Sort(result)
	return result, nil
}

func copyFile(src fs.FS, name, destination string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	target := filepath.Join(destination, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
