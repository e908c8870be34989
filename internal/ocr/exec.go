package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// scan separator rows ("-----", "_____") that tesseract emits for box edges
var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

// execRecognizer shells out to the tesseract binary through a Runner.
type execRecognizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func (e *execRecognizer) Recognize(ctx context.Context, path string) (string, error) {
	// tesseract <file> stdout -l <lang>
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract %s: %w (stderr: %s)", path, err, truncate(string(errb), 512))
	}

	// minor cleanup of obvious line noise
	txt := reBoxNoise.ReplaceAllString(string(out), "")
	return strings.TrimSpace(txt), nil
}
