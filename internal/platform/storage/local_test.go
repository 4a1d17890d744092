package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/static/uploads/")
	require.NoError(t, err)

	url, err := store.Save("cover.png", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/img_"), url)
	assert.True(t, strings.HasSuffix(url, "_cover.png"), url)

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestLocalStoreSave_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/static/uploads")
	require.NoError(t, err)

	url, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "_passwd"))
}
