package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propscan/propscan/constants"
	"github.com/propscan/propscan/internal/extract"
)

// stubRecognizer serves canned text per file base name and fails on demand.
type stubRecognizer struct {
	texts map[string]string
}

func (s *stubRecognizer) Recognize(_ context.Context, path string) (string, error) {
	text, ok := s.texts[filepath.Base(path)]
	if !ok {
		return "", errors.New("recognition failed")
	}
	return text, nil
}

func writeImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
	return dir
}

func newTestProcessor(workers int, texts map[string]string) *Processor {
	return NewProcessor(
		Config{Workers: workers},
		&stubRecognizer{texts: texts},
		extract.NewExtractor(nil, nil, nil),
		nil,
	)
}

func TestProcessorRun(t *testing.T) {
	dir := writeImages(t, "a.jpg", "b.png")
	p := newTestProcessor(2, map[string]string{
		"a.jpg": "Buyer Name: Jane Doe\nOffer Price: $450,000",
		"b.png": "Seller Name: John Smith",
	})

	records, stats, err := p.Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// input (lexical) order survives the fan-out
	assert.Equal(t, "a.jpg", records[0].SourceFile)
	assert.Equal(t, "b.png", records[1].SourceFile)
	assert.Equal(t, "Jane Doe", records[0].BuyerName)
	assert.Equal(t, "John Smith", records[1].SellerName)
	assert.Equal(t, constants.NotFound, records[1].OfferPrice)

	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Zero(t, stats.Failed)
}

func TestProcessorIsolatesOCRFailures(t *testing.T) {
	dir := writeImages(t, "bad.jpg", "good.jpg")
	p := newTestProcessor(1, map[string]string{
		"good.jpg": "Buyer Name: Jane Doe",
	})

	records, stats, err := p.Run(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, records, 1, "failed document is excluded, batch continues")
	assert.Equal(t, "good.jpg", records[0].SourceFile)
	assert.Equal(t, uint32(1), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Failed)
}

func TestProcessorEmptyDir(t *testing.T) {
	p := newTestProcessor(2, nil)

	records, stats, err := p.Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, stats.Succeeded)
}

func TestProcessorMissingDir(t *testing.T) {
	p := newTestProcessor(2, nil)

	records, _, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProcessorManyDocumentsFewWorkers(t *testing.T) {
	names := []string{"d1.jpg", "d2.jpg", "d3.jpg", "d4.jpg", "d5.jpg", "d6.jpg", "d7.jpg"}
	texts := make(map[string]string, len(names))
	for _, n := range names {
		texts[n] = "Buyer Name: Owner Of " + n
	}
	dir := writeImages(t, names...)
	p := newTestProcessor(3, texts)

	records, stats, err := p.Run(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, n := range names {
		assert.Equal(t, n, records[i].SourceFile)
	}
	assert.Equal(t, uint32(len(names)), stats.Succeeded)
}
