//go:build cgo

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"
)

// gosseractRecognizer runs tesseract in-process via the gosseract binding.
// A gosseract client is not safe for concurrent use, so one is created per
// call; documents may then be recognized in parallel.
type gosseractRecognizer struct {
	cfg    Config
	logger *slog.Logger
}

func (g *gosseractRecognizer) Recognize(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	client := gosseract.NewClient()
	defer func() {
		if cerr := client.Close(); cerr != nil {
			g.logger.Warn("close gosseract client", "error", cerr)
		}
	}()

	if err := client.SetLanguage(g.cfg.Language); err != nil {
		return "", fmt.Errorf("set language %q: %w", g.cfg.Language, err)
	}
	if g.cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(g.cfg.TessdataDir); err != nil {
			return "", fmt.Errorf("set tessdata dir: %w", err)
		}
	}
	if g.cfg.PSM > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(g.cfg.PSM)); err != nil {
			return "", fmt.Errorf("set psm: %w", err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("set image %s: %w", path, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize %s: %w", path, err)
	}

	g.logger.Debug("gosseract ok",
		"path", path,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes", len(text),
	)
	return strings.TrimSpace(text), nil
}
