package ingest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/propscan/propscan/constants"
)

type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// ListImages walks root and returns, in lexical order, every file whose
// extension is a recognized image type. A missing or empty root yields zero
// paths and no error: a batch with no inputs is a valid batch. Per-entry walk
// errors are counted in stats and never abort the walk.
func ListImages(root string) ([]string, DirStats, error) {
	var paths []string
	var stats DirStats

	if strings.TrimSpace(root) == "" {
		return nil, stats, errors.New("image directory is required")
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, stats, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.IsImagePath(path) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, stats, err
	}
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return base != "." && strings.HasPrefix(base, ".")
}
