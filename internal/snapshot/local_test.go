package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPut(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocal(base)
	require.NoError(t, err)

	uri, err := store.Put(context.Background(), "runs/run-1/page.html", "text/html", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.Join(base, "runs", "run-1", "page.html"), uri)

	data, err := os.ReadFile(filepath.Join(base, "runs", "run-1", "page.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestLocalPutRejectsEscape(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../outside.html", "text/html", []byte("x"))
	require.Error(t, err)
}

func TestLocalPutEmptyPath(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "  ", "text/html", []byte("x"))
	require.Error(t, err)
}

func TestNewLocalRequiresDir(t *testing.T) {
	_, err := NewLocal("")
	require.Error(t, err)
}
