package ocr

import (
	"context"
	"fmt"
	"log/slog"
)

// Backend names accepted in Config.Backend.
const (
	BackendExec      = "tesseract" // shell out to the tesseract binary
	BackendGosseract = "gosseract" // in-process via the gosseract binding
)

type Config struct {
	Backend string // BackendExec (default) | BackendGosseract

	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	Language    string // default "eng"
	TessdataDir string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// Recognizer turns an image file into plain text. No layout metadata, no
// confidence: downstream consumes text only.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// NewRecognizer builds the configured OCR backend.
func NewRecognizer(cfg Config, logger *slog.Logger) (Recognizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	switch cfg.Backend {
	case "", BackendExec:
		return &execRecognizer{cfg: cfg, runner: execRunner{}, logger: logger}, nil
	case BackendGosseract:
		return &gosseractRecognizer{cfg: cfg, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown ocr backend: %q", cfg.Backend)
	}
}
