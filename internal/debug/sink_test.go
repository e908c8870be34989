package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSinkDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	sink, err := NewFSSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Dump("20240115T120000", "Buyer Name: Jane Doe"))

	data, err := os.ReadFile(filepath.Join(dir, "raw_text_20240115T120000.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Buyer Name: Jane Doe", string(data))
}

func TestFSSinkDistinctKeys(t *testing.T) {
	sink, err := NewFSSink(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, sink.Dump("k1", "first"))
	require.NoError(t, sink.Dump("k2", "second"))

	entries, err := os.ReadDir(sink.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
