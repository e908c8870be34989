package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListImages(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.jpg"))
	touch(t, filepath.Join(root, "a.PNG"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "scan.tiff"))
	touch(t, filepath.Join(root, "nested", "deed.jpeg"))
	touch(t, filepath.Join(root, ".hidden", "c.jpg"))
	touch(t, filepath.Join(root, ".DS_Store"))

	paths, stats, err := ListImages(root)
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "a.PNG"),
		filepath.Join(root, "b.jpg"),
		filepath.Join(root, "nested", "deed.jpeg"),
		filepath.Join(root, "scan.tiff"),
	}
	assert.Equal(t, want, paths)
	assert.Equal(t, uint32(4), stats.Matched)
	assert.Zero(t, stats.Failed)
}

func TestListImagesMissingDir(t *testing.T) {
	paths, stats, err := ListImages(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.Zero(t, stats.Matched)
}

func TestListImagesEmptyDir(t *testing.T) {
	paths, _, err := ListImages(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestListImagesBlankRoot(t *testing.T) {
	_, _, err := ListImages("   ")
	assert.Error(t, err)
}
