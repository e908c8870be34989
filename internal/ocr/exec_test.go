package ocr

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner records the command it was asked to run and returns canned output.
type stubRunner struct {
	name   string
	args   []string
	stdout string
	err    error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.name = name
	s.args = args
	return []byte(s.stdout), nil, s.err
}

func TestExecRecognizerArgs(t *testing.T) {
	runner := &stubRunner{stdout: "Buyer Name: Jane Doe\n"}
	rec := &execRecognizer{
		cfg:    Config{Tesseract: "tesseract", Language: "eng", TessdataDir: "/opt/tessdata", PSM: 6, OEM: 1},
		runner: runner,
		logger: slog.Default(),
	}

	text, err := rec.Recognize(context.Background(), "scan.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Buyer Name: Jane Doe", text)

	assert.Equal(t, "tesseract", runner.name)
	assert.Equal(t, []string{
		"scan.jpg", "stdout", "-l", "eng",
		"--psm", "6", "--oem", "1",
		"--tessdata-dir", "/opt/tessdata",
	}, runner.args)
}

func TestExecRecognizerStripsBoxNoise(t *testing.T) {
	runner := &stubRunner{stdout: "Buyer Name: Jane Doe\n------\nSeller Name: John Smith\n"}
	rec := &execRecognizer{cfg: Config{Tesseract: "tesseract", Language: "eng"}, runner: runner, logger: slog.Default()}

	text, err := rec.Recognize(context.Background(), "scan.jpg")
	require.NoError(t, err)
	assert.NotContains(t, text, "------")
	assert.Contains(t, text, "Seller Name: John Smith")
}

func TestExecRecognizerFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	rec := &execRecognizer{cfg: Config{Tesseract: "tesseract", Language: "eng"}, runner: runner, logger: slog.Default()}

	_, err := rec.Recognize(context.Background(), "scan.jpg")
	assert.ErrorContains(t, err, "tesseract")
}

func TestNewRecognizer(t *testing.T) {
	r, err := NewRecognizer(Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &execRecognizer{}, r)

	r, err = NewRecognizer(Config{Backend: BackendGosseract}, nil)
	require.NoError(t, err)
	assert.IsType(t, &gosseractRecognizer{}, r)

	_, err = NewRecognizer(Config{Backend: "cloud"}, nil)
	assert.ErrorContains(t, err, "unknown ocr backend")
}
