package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.txt")

	set, err := OpenFileSet(path)
	require.NoError(t, err)

	assert.False(t, set.Contains("11"))
	require.NoError(t, set.Add(context.Background(), "11"))
	require.NoError(t, set.Add(context.Background(), "27"))
	require.NoError(t, set.Add(context.Background(), "11")) // duplicate, no second line
	assert.True(t, set.Contains("11"))
	assert.Equal(t, 2, set.Len())
	require.NoError(t, set.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "11\n27\n", string(data))
}

func TestFileSetReloadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.txt")
	require.NoError(t, os.WriteFile(path, []byte("11\n\n  27  \n"), 0o600))

	set, err := OpenFileSet(path)
	require.NoError(t, err)
	defer set.Close()

	assert.True(t, set.Contains("11"))
	assert.True(t, set.Contains("27"))
	assert.Equal(t, 2, set.Len())

	// New ids append after the loaded ones.
	require.NoError(t, set.Add(context.Background(), "99"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "11\n\n  27  \n99\n", string(data))
}

func TestFileSetAddCanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.txt")
	set, err := OpenFileSet(path)
	require.NoError(t, err)
	defer set.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, set.Add(ctx, "11"))
	assert.False(t, set.Contains("11"))
}

func TestOpenFileSetBadPath(t *testing.T) {
	_, err := OpenFileSet(filepath.Join(t.TempDir(), "missing", "processed.txt"))
	require.Error(t, err)
}
