package fsys

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
)

// removeQuotaFS fails every Remove after a fixed number of successes,
// simulating a removal walk interrupted partway through.
type removeQuotaFS struct {
	interfaces.FileSystem
	remaining int
}

func (f *removeQuotaFS) Remove(path string) (bool, error) {
	if f.remaining == 0 {
		return false, fmt.Errorf("injected removal failure at %q", path)
	}
	f.remaining--
	return f.FileSystem.Remove(path)
}

func newMemFS(t *testing.T) (afero.Fs, *aferoFileSystem) {
	t.Helper()
	backing := afero.NewMemMapFs()
	return backing, NewAferoFileSystem(backing).(*aferoFileSystem)
}

func TestRemoveAllCountsEveryEntity(t *testing.T) {
	backing, filesystem := newMemFS(t)

	require.NoError(t, backing.MkdirAll("/tree/sub", 0o770))
	require.NoError(t, afero.WriteFile(backing, "/tree/a.txt", []byte("a"), 0o600))
	require.NoError(t, afero.WriteFile(backing, "/tree/b.txt", []byte("b"), 0o600))
	require.NoError(t, afero.WriteFile(backing, "/tree/sub/c.txt", []byte("c"), 0o600))

	count, err := RemoveAll(filesystem, "/tree")
	require.NoError(t, err)

	// 3 files + 2 directories.
	assert.Equal(t, 5, count)

	exists, err := filesystem.Exists("/tree")
	require.NoError(t, err)
	assert.False(t, exists, "tree root should be gone")
}

func TestRemoveAllSingleFile(t *testing.T) {
	backing, filesystem := newMemFS(t)
	require.NoError(t, afero.WriteFile(backing, "/solo.txt", []byte("x"), 0o600))

	count, err := RemoveAll(filesystem, "/solo.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRemoveAllMissingPath(t *testing.T) {
	_, filesystem := newMemFS(t)

	count, err := RemoveAll(filesystem, "/no/such/path")
	assert.Equal(t, 0, count)
	assert.True(t, IsNotFound(err), "expected a not-found classification, got %v", err)
}

func TestRemoveAllInterruptedLeavesPartialTree(t *testing.T) {
	backing, filesystem := newMemFS(t)

	require.NoError(t, backing.MkdirAll("/tree/sub", 0o770))
	require.NoError(t, afero.WriteFile(backing, "/tree/a.txt", []byte("a"), 0o600))
	require.NoError(t, afero.WriteFile(backing, "/tree/b.txt", []byte("b"), 0o600))
	require.NoError(t, afero.WriteFile(backing, "/tree/sub/c.txt", []byte("c"), 0o600))

	// Directory entries come back sorted, so the walk removes a.txt and
	// b.txt before descending into sub; the third removal fails.
	quota := &removeQuotaFS{FileSystem: filesystem, remaining: 2}

	count, err := RemoveAll(quota, "/tree")
	require.Error(t, err)
	assert.Equal(t, 2, count, "exactly the successful removals are counted")

	for path, want := range map[string]bool{
		"/tree/a.txt":     false,
		"/tree/b.txt":     false,
		"/tree/sub/c.txt": true,
		"/tree/sub":       true,
		"/tree":           true,
	} {
		exists, err := filesystem.Exists(path)
		require.NoError(t, err)
		assert.Equal(t, want, exists, "existence of %s after interruption", path)
	}
}

func TestRemoveAllEmptyDirectory(t *testing.T) {
	backing, filesystem := newMemFS(t)
	require.NoError(t, backing.Mkdir("/empty", 0o770))

	count, err := RemoveAll(filesystem, "/empty")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
