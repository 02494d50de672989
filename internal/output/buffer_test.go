//go:build !windows

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/interfaces"
	"github.com/deploymenttheory/go-pathkit/internal/tempfiles"
)

// faultFS injects a bounded number of failures into the operations a
// commit depends on.
type faultFS struct {
	interfaces.FileSystem
	failResizes int
	failRenames int
}

func (f *faultFS) ResizeFile(path string, size int64) error {
	if f.failResizes > 0 {
		f.failResizes--
		return fmt.Errorf("injected resize failure for %q", path)
	}
	return f.FileSystem.ResizeFile(path, size)
}

func (f *faultFS) Rename(oldpath, newpath string) error {
	if f.failRenames > 0 {
		f.failRenames--
		return fmt.Errorf("injected rename failure for %q", newpath)
	}
	return f.FileSystem.Rename(oldpath, newpath)
}

func newBufferFixture(t *testing.T) (string, func(path string, size int64) *Buffer) {
	t.Helper()

	dir := t.TempDir()
	filesystem := fsys.NewOSFileSystem()
	allocator := tempfiles.NewAllocator(filesystem)

	return dir, func(path string, size int64) *Buffer {
		buffer, err := Create(filesystem, allocator, path, size, false)
		require.NoError(t, err)
		return buffer
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestCommitPublishesContent(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "out.bin")

	buffer := create(final, 5)
	defer buffer.Discard()

	copy(buffer.Bytes(), "hello")
	require.NoError(t, buffer.Commit(KeepSize))

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	// No stray temporary remains next to the destination.
	assert.Equal(t, []string{"out.bin"}, listDir(t, dir))
}

func TestCommitShrinks(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "short.bin")

	buffer := create(final, 16)
	defer buffer.Discard()

	copy(buffer.Bytes(), "abcdef")
	require.NoError(t, buffer.Commit(6))

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(content))
}

func TestCommitRejectsGrowth(t *testing.T) {
	dir, create := newBufferFixture(t)

	buffer := create(filepath.Join(dir, "g.bin"), 4)
	defer buffer.Discard()

	err := buffer.Commit(8)
	assert.ErrorIs(t, err, fsys.ErrInvalidArgument)
}

func TestDiscardLeavesFinalPathUntouched(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "never.bin")

	buffer := create(final, 8)
	copy(buffer.Bytes(), "discard")
	require.NoError(t, buffer.Discard())

	_, err := os.Stat(final)
	assert.True(t, os.IsNotExist(err), "discarded buffer must not create the final path")
	assert.Empty(t, listDir(t, dir), "discard must delete the temporary")
}

func TestDiscardAfterCommitIsNoOp(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "keep.bin")

	buffer := create(final, 4)
	copy(buffer.Bytes(), "keep")
	require.NoError(t, buffer.Commit(KeepSize))
	require.NoError(t, buffer.Discard())

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestDoubleCommitFails(t *testing.T) {
	dir, create := newBufferFixture(t)

	buffer := create(filepath.Join(dir, "twice.bin"), 2)
	copy(buffer.Bytes(), "ok")
	require.NoError(t, buffer.Commit(KeepSize))

	assert.ErrorIs(t, buffer.Commit(KeepSize), fsys.ErrInvalidArgument)
}

func TestFailedCommitLeavesTemporaryForDiscard(t *testing.T) {
	dir := t.TempDir()
	faulty := &faultFS{FileSystem: fsys.NewOSFileSystem(), failResizes: 1}
	allocator := tempfiles.NewAllocator(fsys.NewOSFileSystem())
	final := filepath.Join(dir, "out.bin")

	buffer, err := Create(faulty, allocator, final, 8, false)
	require.NoError(t, err)

	copy(buffer.Bytes(), "abcd")
	require.Error(t, buffer.Commit(4), "the injected resize failure must surface")

	// The temporary survives the failed commit and the final path was
	// never written.
	require.Len(t, listDir(t, dir), 1)
	_, err = os.Stat(final)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, buffer.Discard())
	assert.Empty(t, listDir(t, dir), "discard still cleans up after a failed commit")
}

func TestCommitRetryAfterRenameFailure(t *testing.T) {
	dir := t.TempDir()
	faulty := &faultFS{FileSystem: fsys.NewOSFileSystem(), failRenames: 1}
	allocator := tempfiles.NewAllocator(fsys.NewOSFileSystem())
	final := filepath.Join(dir, "retry.bin")

	buffer, err := Create(faulty, allocator, final, 5, false)
	require.NoError(t, err)
	defer buffer.Discard()

	copy(buffer.Bytes(), "hello")
	require.Error(t, buffer.Commit(KeepSize))

	// The buffer stays uncommitted, so a retry is allowed and succeeds
	// once the failure clears.
	require.NoError(t, buffer.Commit(KeepSize))

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
	assert.Equal(t, []string{"retry.bin"}, listDir(t, dir))
}

func TestEmptyBufferCommits(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "empty.bin")

	buffer := create(final, 0)
	defer buffer.Discard()

	assert.Empty(t, buffer.Bytes())
	require.NoError(t, buffer.Commit(KeepSize))

	info, err := os.Stat(final)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestCreateReplacesExistingRegularFile(t *testing.T) {
	dir, create := newBufferFixture(t)
	final := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(final, []byte("old content"), 0o644))

	buffer := create(final, 3)
	defer buffer.Discard()

	// The previous file is gone the moment the buffer exists.
	_, err := os.Stat(final)
	assert.True(t, os.IsNotExist(err))

	copy(buffer.Bytes(), "new")
	require.NoError(t, buffer.Commit(KeepSize))

	content, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCreateRefusesDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	filesystem := fsys.NewOSFileSystem()
	allocator := tempfiles.NewAllocator(filesystem)

	target := filepath.Join(dir, "adir")
	require.NoError(t, os.Mkdir(target, 0o755))

	_, err := Create(filesystem, allocator, target, 4, false)
	assert.True(t, fsys.IsPermission(err), "expected a permission classification, got %v", err)
}

func TestExecutableFlagSetsMode(t *testing.T) {
	dir := t.TempDir()
	filesystem := fsys.NewOSFileSystem()
	allocator := tempfiles.NewAllocator(filesystem)
	final := filepath.Join(dir, "tool")

	buffer, err := Create(filesystem, allocator, final, 2, true)
	require.NoError(t, err)
	defer buffer.Discard()

	copy(buffer.Bytes(), "#!")
	require.NoError(t, buffer.Commit(KeepSize))

	info, err := os.Stat(final)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "owner execute bit should be set")
}
