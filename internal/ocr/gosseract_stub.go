//go:build !cgo

package ocr

import (
	"context"
	"errors"
	"log/slog"
)

// ErrGosseractNotEnabled is returned when the gosseract backend is selected
// but the binary was built without cgo support.
var ErrGosseractNotEnabled = errors.New("gosseract backend not enabled; rebuild with cgo")

// gosseractRecognizer is the stub used when the binary is built without cgo;
// the in-process gosseract binding requires cgo.
type gosseractRecognizer struct {
	cfg    Config
	logger *slog.Logger
}

func (g *gosseractRecognizer) Recognize(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", ErrGosseractNotEnabled
}
