// Package debug persists raw OCR text for offline inspection of extraction
// misses. Sinks are diagnostic only; callers treat every write as best-effort.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSSink writes each blob to <dir>/raw_text_<key>.txt.
type FSSink struct {
	dir string
}

func NewFSSink(dir string) (*FSSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create debug dir: %w", err)
	}
	return &FSSink{dir: dir}, nil
}

func (s *FSSink) Dump(key, text string) error {
	path := filepath.Join(s.dir, "raw_text_"+key+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write debug text: %w", err)
	}
	return nil
}
